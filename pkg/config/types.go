package config

import (
	"fmt"
	"time"

	"github.com/raywall/dynamo-items-service/dyndb"
)

// ServiceConfig representa toda a configuração do serviço, lida do ambiente.
//
// Strings podem referenciar ${env.NOME}, ${ssm./caminho} ou ${secret.id};
// as referências são resolvidas pelo injector depois do Load.
type ServiceConfig struct {
	Table          dyndb.TableConfig
	Region         string        `env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	Endpoint       string        `env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	Port           int           `env:"PORT" envDefault:"5000" validate:"required_unless=Runtime lambda,gte=0,lte=65535"`
	Runtime        string        `env:"RUNTIME" envDefault:"local" validate:"required,oneof=local lambda ecs eks ec2"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
	CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" validate:"min=1,dive,required"`
	Logging        LoggingConf
	Metrics        MetricsConf
}

type LoggingConf struct {
	Enabled bool   `env:"LOG_ENABLED" envDefault:"true"`
	Level   string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf
}

type DatadogConf struct {
	Enabled   bool   `env:"DD_ENABLED"`
	Addr      string `env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `env:"DD_NAMESPACE" envDefault:"items."`
}

// Addr devolve o endereço de escuta do servidor HTTP.
func (c ServiceConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
