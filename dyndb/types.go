// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrMissingTable é retornado quando o store é usado sem nome de tabela.
var ErrMissingTable = errors.New("dyndb: table name is required")

// DynamoDBClient interface para abstrair o cliente DynamoDB.
//
// Apenas leitura: o serviço nunca escreve na tabela.
type DynamoDBClient interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Record é um item da tabela sem schema fixo.
type Record = map[string]any

// TableConfig é a configuração da tabela
type TableConfig struct {
	TableName string `env:"DYNAMODB_TABLE" envDefault:"my-sample-table" validate:"required"`
	// IndexName opcional; quando definido as buscas por chave usam o índice.
	IndexName string `env:"DYNAMODB_INDEX_NAME"`
}

// Page é o resultado de uma única chamada paginada.
//
// LastKey é o LastEvaluatedKey bruto devolvido pelo DynamoDB e só vive
// durante o loop de acumulação; nunca é exposto ao chamador do serviço.
type Page struct {
	Items   []Record
	LastKey map[string]types.AttributeValue
}

// More indica se o DynamoDB sinalizou mais páginas.
func (p Page) More() bool {
	return len(p.LastKey) > 0
}
