package injector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/dynamo-items-service/pkg/config/injector"
)

type TestConfig struct {
	Table       string
	Region      string
	Description string
	Origins     []string
	Meta        map[string]interface{}
	Nested      *NestedConfig
	Plain       int
	hidden      string
}

type NestedConfig struct {
	URL string
}

func TestInjector_Inject_Environment(t *testing.T) {
	t.Setenv("TABLE_NAME", "orders")
	t.Setenv("REGION", "sa-east-1")
	t.Setenv("ORIGIN", "https://app.example")

	inj := injector.New()

	target := &TestConfig{
		Table:       "${env.TABLE_NAME}",
		Region:      "us-east-1",
		Description: "Service running in ${env.REGION}",
		Origins:     []string{"${env.ORIGIN}", "https://static.example"},
		Meta: map[string]interface{}{
			"host":    "${env.REGION}.internal",
			"timeout": 5000,
			"sub":     map[string]interface{}{"table": "${env.TABLE_NAME}"},
		},
		Nested: &NestedConfig{
			URL: "https://${env.REGION}.api.com",
		},
		Plain:  7,
		hidden: "${env.REGION}",
	}

	err := inj.Inject(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, "orders", target.Table)
	assert.Equal(t, "us-east-1", target.Region, "valor literal não deve mudar")
	assert.Equal(t, "Service running in sa-east-1", target.Description)
	assert.Equal(t, []string{"https://app.example", "https://static.example"}, target.Origins)
	assert.Equal(t, "sa-east-1.internal", target.Meta["host"])
	assert.Equal(t, 5000, target.Meta["timeout"])
	assert.Equal(t, "orders", target.Meta["sub"].(map[string]interface{})["table"])
	assert.Equal(t, "https://sa-east-1.api.com", target.Nested.URL)
	assert.Equal(t, 7, target.Plain)
	assert.Equal(t, "${env.REGION}", target.hidden)
}

func TestInjector_Inject_ExternalSources(t *testing.T) {
	var ssmKeys, secretKeys []string
	inj := injector.New(
		injector.WithSSM(func(_ context.Context, key string) (string, error) {
			ssmKeys = append(ssmKeys, key)
			return "table-from-ssm", nil
		}),
		injector.WithSecrets(func(_ context.Context, key string) (string, error) {
			secretKeys = append(secretKeys, key)
			return "idx-from-secret", nil
		}),
	)

	target := &TestConfig{
		Table:  "${ssm./app/items/table}",
		Region: "${secret.items#index}",
	}

	require.NoError(t, inj.Inject(context.Background(), target))
	assert.Equal(t, "table-from-ssm", target.Table)
	assert.Equal(t, "idx-from-secret", target.Region)
	assert.Equal(t, []string{"/app/items/table"}, ssmKeys)
	assert.Equal(t, []string{"items#index"}, secretKeys)
}

func TestInjector_Inject_Errors(t *testing.T) {
	t.Run("Fonte não configurada", func(t *testing.T) {
		target := &TestConfig{Table: "${ssm./app/table}"}

		err := injector.New().Inject(context.Background(), target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "não configurada")
		assert.Equal(t, "${ssm./app/table}", target.Table)
	})

	t.Run("Falha do resolver", func(t *testing.T) {
		boom := errors.New("AWS down")
		inj := injector.New(injector.WithSSM(func(context.Context, string) (string, error) {
			return "", boom
		}))

		err := inj.Inject(context.Background(), &TestConfig{Table: "${ssm./app/table}"})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Table")
	})

	t.Run("Target inválido", func(t *testing.T) {
		assert.Error(t, injector.New().Inject(context.Background(), TestConfig{}))
		var nilTarget *TestConfig
		assert.Error(t, injector.New().Inject(context.Background(), nilTarget))
	})
}
