// dyndb/store.go
package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/pkg/metrics"
)

const (
	opScan         = "scan"
	opFilteredScan = "filtered_scan"
	opQuery        = "query"
)

// ItemStore é o adaptador de leitura sobre uma tabela DynamoDB.
//
// É seguro para uso concorrente: não guarda estado entre chamadas além do
// cliente, que o SDK já garante ser seguro.
type ItemStore struct {
	client  DynamoDBClient
	cfg     TableConfig
	metrics metrics.Provider
}

// Option personaliza o ItemStore.
type Option func(*ItemStore)

// WithMetrics registra páginas lidas e fallbacks no provider informado.
func WithMetrics(p metrics.Provider) Option {
	return func(s *ItemStore) {
		if p != nil {
			s.metrics = p
		}
	}
}

// New cria um store reutilizável
func New(client DynamoDBClient, cfg TableConfig, opts ...Option) (*ItemStore, error) {
	if cfg.TableName == "" {
		return nil, ErrMissingTable
	}

	s := &ItemStore{
		client:  client,
		cfg:     cfg,
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TableName devolve a tabela configurada.
func (s *ItemStore) TableName() string {
	return s.cfg.TableName
}

// FetchAll lê a tabela inteira página a página.
//
// limit <= 0 significa sem limite. Com limite, a leitura para assim que o
// total acumulado atinge limit e o resultado é truncado exatamente nele.
//
// O ctx é verificado entre páginas: se for cancelado (cliente desconectou ou
// REQUEST_TIMEOUT expirou) a leitura para e devolve ctx.Err(), em vez de ir
// até a última página.
func (s *ItemStore) FetchAll(ctx context.Context, limit int) ([]Record, error) {
	items, err := s.collect(ctx, opScan, limit, func(start map[string]types.AttributeValue, remaining int) (Page, error) {
		return s.Scan().Limit(remaining).StartKey(start).Page(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: scan failed: %w", err)
	}
	return items, nil
}

// FetchFiltered funciona como FetchAll, mas cada página carrega o filtro
// attribute = value. O DynamoDB não lembra o filtro entre páginas, então
// ele é reenviado em toda requisição.
func (s *ItemStore) FetchFiltered(ctx context.Context, attribute, value string, limit int) ([]Record, error) {
	items, err := s.collect(ctx, opFilteredScan, limit, func(start map[string]types.AttributeValue, remaining int) (Page, error) {
		return s.Scan().FilterEqual(attribute, value).Limit(remaining).StartKey(start).Page(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: filtered scan on %q failed: %w", attribute, err)
	}
	return items, nil
}

// KeyLookup executa um único Query attribute = value e classifica o resultado.
//
// Não pagina: devolve apenas a primeira página do DynamoDB.
func (s *ItemStore) KeyLookup(ctx context.Context, attribute, value string, limit int) LookupResult {
	page, err := s.Query().KeyEqual(attribute, value).Limit(limit).Page(ctx)
	if status := classifyLookupError(err); status != LookupOK {
		return LookupResult{Status: status, Err: err}
	}
	s.observePage(ctx, opQuery, page)

	items := page.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return LookupResult{Status: LookupOK, Items: items}
}

// FetchByKey prefere o Query indexado e cai para FetchFiltered quando o
// DynamoDB rejeita o atributo como chave. Qualquer outra falha é propagada.
func (s *ItemStore) FetchByKey(ctx context.Context, attribute, value string, limit int) ([]Record, error) {
	res := s.KeyLookup(ctx, attribute, value, limit)

	switch res.Status {
	case LookupOK:
		return res.Items, nil
	case LookupValidationRejected:
		log.Ctx(ctx).Warn().
			Str("table", s.cfg.TableName).
			Str("attribute", attribute).
			Err(res.Err).
			Msg("atributo não é chave, usando scan com filtro")
		_ = s.metrics.Count("dyndb.fallback", 1, []string{"table:" + s.cfg.TableName})
		return s.FetchFiltered(ctx, attribute, value, limit)
	default:
		return nil, fmt.Errorf("dyndb: query on %q failed: %w", attribute, res.Err)
	}
}

// pageFn busca uma página a partir de start; remaining <= 0 não limita.
type pageFn func(start map[string]types.AttributeValue, remaining int) (Page, error)

// collect acumula páginas enquanto houver LastEvaluatedKey e o limite não
// tiver sido atingido.
func (s *ItemStore) collect(ctx context.Context, op string, limit int, next pageFn) ([]Record, error) {
	items := make([]Record, 0)
	var start map[string]types.AttributeValue

	for {
		remaining := 0
		if limit > 0 {
			remaining = limit - len(items)
		}

		page, err := next(start, remaining)
		if err != nil {
			return nil, err
		}
		s.observePage(ctx, op, page)
		items = append(items, page.Items...)

		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}
		if !page.More() {
			return items, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start = page.LastKey
	}
}

func (s *ItemStore) observePage(ctx context.Context, op string, page Page) {
	tags := []string{"table:" + s.cfg.TableName, "op:" + op}
	_ = s.metrics.Count("dyndb.pages", 1, tags)
	_ = s.metrics.Histogram("dyndb.records", float64(len(page.Items)), tags)

	log.Ctx(ctx).Debug().
		Str("table", s.cfg.TableName).
		Str("op", op).
		Int("items", len(page.Items)).
		Bool("more", page.More()).
		Msg("página lida")
}
