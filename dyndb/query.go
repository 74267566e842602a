// dyndb/query.go
package dyndb

import (
	"context"
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryBuilder é o builder fluente de uma única página.
//
// Sem condição de chave executa um Scan; com condição, um Query.
type QueryBuilder struct {
	store      *ItemStore
	keyCond    *expression.KeyConditionBuilder
	filterCond *expression.ConditionBuilder
	limit      *int32
	lastKey    map[string]types.AttributeValue
	isScan     bool
}

// Query inicia uma Query
func (s *ItemStore) Query() *QueryBuilder {
	return &QueryBuilder{store: s}
}

// Scan inicia um Scan; condições de chave são ignoradas
func (s *ItemStore) Scan() *QueryBuilder {
	return &QueryBuilder{store: s, isScan: true}
}

// === MÉTODOS FLUENTES ===

func (qb *QueryBuilder) KeyEqual(key string, value any) *QueryBuilder {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder) FilterEqual(field string, value any) *QueryBuilder {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

// Limit define o Limit nativo do DynamoDB. n <= 0 não limita; valores acima
// de math.MaxInt32 são limitados a ele, já que o campo é int32.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	if n <= 0 {
		qb.limit = nil
		return qb
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	v := int32(n)
	qb.limit = &v
	return qb
}

// StartKey continua a partir do LastEvaluatedKey de uma página anterior.
func (qb *QueryBuilder) StartKey(key map[string]types.AttributeValue) *QueryBuilder {
	qb.lastKey = key
	return qb
}

// Page executa a consulta e devolve uma única página
func (qb *QueryBuilder) Page(ctx context.Context) (Page, error) {
	scan := qb.isScan || qb.keyCond == nil
	if scan && qb.filterCond == nil {
		return qb.execScan(ctx, nil)
	}

	builder := expression.NewBuilder()
	if !scan {
		builder = builder.WithKeyCondition(*qb.keyCond)
	}
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return Page{}, fmt.Errorf("dyndb: build expression: %w", err)
	}

	if scan {
		return qb.execScan(ctx, &expr)
	}
	return qb.execQuery(ctx, expr)
}

func (qb *QueryBuilder) execQuery(ctx context.Context, expr expression.Expression) (Page, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ExclusiveStartKey:         qb.lastKey,
	}
	if qb.store.cfg.IndexName != "" {
		input.IndexName = aws.String(qb.store.cfg.IndexName)
	}

	out, err := qb.store.client.Query(ctx, input)
	if err != nil {
		return Page{}, err
	}
	return toPage(out.Items, out.LastEvaluatedKey)
}

func (qb *QueryBuilder) execScan(ctx context.Context, expr *expression.Expression) (Page, error) {
	input := &dynamodb.ScanInput{
		TableName:         aws.String(qb.store.cfg.TableName),
		Limit:             qb.limit,
		ExclusiveStartKey: qb.lastKey,
	}
	if expr != nil {
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := qb.store.client.Scan(ctx, input)
	if err != nil {
		return Page{}, err
	}
	return toPage(out.Items, out.LastEvaluatedKey)
}

func toPage(items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue) (Page, error) {
	records, err := toRecords(items)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: records, LastKey: lastKey}, nil
}
