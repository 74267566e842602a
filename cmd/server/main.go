package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/dyndb"
	"github.com/raywall/dynamo-items-service/pkg/awsconf"
	"github.com/raywall/dynamo-items-service/pkg/config"
	"github.com/raywall/dynamo-items-service/pkg/config/injector"
	"github.com/raywall/dynamo-items-service/pkg/logger"
	"github.com/raywall/dynamo-items-service/pkg/observability"
	"github.com/raywall/dynamo-items-service/pkg/transport"
	"github.com/raywall/dynamo-items-service/pkg/web"
	"github.com/raywall/dynamo-items-service/planner"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = func(h *transport.LambdaHandler) { lambda.Start(h.Handle) }
	// newClient permite trocar o DynamoDB real nos testes
	newClient = func(cfg *config.ServiceConfig, awsCfg aws.Config) dyndb.DynamoDBClient {
		return awsconf.NewDynamoDB(awsCfg, cfg.Endpoint)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("FATAL")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, dotenvFiles ...string) error {
	// 1. Configuração: .env, ambiente e referências externas
	cfg, err := config.Load(dotenvFiles...)
	if err != nil {
		return err
	}

	l := logger.Configure(cfg.Logging)
	log.Logger = l
	zerolog.DefaultContextLogger = &l

	awsCfg, err := awsconf.Load(ctx, cfg.Region)
	if err != nil {
		return err
	}

	inj := injector.New(
		injector.WithSSM(awsconf.SSMResolver(ssm.NewFromConfig(awsCfg))),
		injector.WithSecrets(awsconf.SecretResolver(secretsmanager.NewFromConfig(awsCfg))),
	)
	if err := inj.Inject(ctx, cfg); err != nil {
		return err
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return err
	}

	// 2. Métricas e store, construídos uma vez e injetados
	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	store, err := dyndb.New(newClient(cfg, awsCfg), cfg.Table, dyndb.WithMetrics(provider))
	if err != nil {
		return err
	}
	p := planner.New(store)

	page, err := web.NewPage(store.TableName())
	if err != nil {
		return err
	}

	log.Info().
		Str("table", cfg.Table.TableName).
		Str("region", cfg.Region).
		Str("runtime", cfg.Runtime).
		Msg("serviço configurado")

	// 3. Seleciona Runtime Strategy
	opts := transport.RouterOptions{
		Page:           page,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		Metrics:        provider,
	}
	if cfg.Runtime == "lambda" {
		lambdaStarter(transport.NewLambdaHandler(p, opts))
		return nil
	}

	return serverStarter(ctx, cfg.Addr(), transport.NewRouter(p, opts))
}
