package awsconf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Interfaces para abstrair o SDK da AWS (Permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// secretFieldSep separa o id do segredo do campo JSON: "items#table".
const secretFieldSep = "#"

// SSMResolver resolve um parâmetro do Parameter Store, sempre com decrypt.
func SSMResolver(client SSMClient) func(ctx context.Context, path string) (string, error) {
	return func(ctx context.Context, path string) (string, error) {
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(path),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return "", fmt.Errorf("erro no SSM GetParameter: %w", err)
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			return "", fmt.Errorf("parâmetro %s sem valor", path)
		}
		return *out.Parameter.Value, nil
	}
}

// SecretResolver resolve um segredo do Secrets Manager.
//
// "id" devolve o SecretString bruto; "id#campo" decodifica o segredo como
// objeto JSON e devolve o campo.
func SecretResolver(client SecretsClient) func(ctx context.Context, ref string) (string, error) {
	return func(ctx context.Context, ref string) (string, error) {
		secretID, field, hasField := strings.Cut(ref, secretFieldSep)

		out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretID),
		})
		if err != nil {
			return "", fmt.Errorf("erro no SecretsManager: %w", err)
		}
		if out.SecretString == nil {
			return "", fmt.Errorf("segredo %s sem SecretString", secretID)
		}
		if !hasField {
			return *out.SecretString, nil
		}

		var data map[string]interface{}
		if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
			return "", fmt.Errorf("segredo %s não é um objeto JSON: %w", secretID, err)
		}
		val, ok := data[field]
		if !ok {
			return "", fmt.Errorf("campo %q ausente no segredo %s", field, secretID)
		}
		return fmt.Sprintf("%v", val), nil
	}
}
