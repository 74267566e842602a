package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *ServiceConfig) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *ServiceConfig) error {
	// Referências não resolvidas indicam que o injector não rodou ou falhou em silêncio
	for name, value := range map[string]string{
		"DYNAMODB_TABLE":      cfg.Table.TableName,
		"DYNAMODB_INDEX_NAME": cfg.Table.IndexName,
		"AWS_REGION":          cfg.Region,
	} {
		if strings.Contains(value, "${") {
			return fmt.Errorf("%s contém referência não resolvida: %q", name, value)
		}
	}

	// "*" libera qualquer origem; misturar com origens explícitas é ambíguo
	if len(cfg.CORSOrigins) > 1 {
		for _, o := range cfg.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ALLOWED_ORIGINS não pode misturar '*' com origens explícitas")
			}
		}
	}

	return nil
}
