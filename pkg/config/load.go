package config

import (
	"fmt"

	"github.com/raywall/dynamo-items-service/envloader"
)

// Load lê o .env (se existir) e depois o ambiente do processo.
//
// Não valida: chame Validate depois de resolver as referências externas.
func Load(dotenvFiles ...string) (*ServiceConfig, error) {
	if err := envloader.LoadDotEnv(dotenvFiles...); err != nil {
		return nil, err
	}

	cfg := &ServiceConfig{}
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return cfg, nil
}
