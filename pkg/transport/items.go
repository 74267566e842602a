package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/dyndb"
	"github.com/raywall/dynamo-items-service/planner"
)

// ItemsPlanner é o que o endpoint precisa do planner.
type ItemsPlanner interface {
	Plan(ctx context.Context, f planner.Filter) ([]dyndb.Record, error)
}

// ItemsResponse é o corpo de sucesso de /api/items.
type ItemsResponse struct {
	Items []dyndb.Record `json:"items"`
}

// ErrorResponse é o corpo de qualquer falha.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ItemsEndpoint traduz uma query string em um Filter e o resultado em resposta.
// Compartilhado entre o servidor HTTP e o handler Lambda.
type ItemsEndpoint struct {
	planner ItemsPlanner
	timeout time.Duration
}

// NewItemsEndpoint cria o endpoint. timeout <= 0 não impõe prazo próprio.
func NewItemsEndpoint(p ItemsPlanner, timeout time.Duration) *ItemsEndpoint {
	return &ItemsEndpoint{planner: p, timeout: timeout}
}

// List executa a consulta e devolve status e corpo.
//
// Toda falha vira 500 com o texto do erro; não há distinção entre falhas
// transitórias e definitivas.
func (e *ItemsEndpoint) List(ctx context.Context, q url.Values) (int, any) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	filter := planner.FilterFromQuery(q)
	items, err := e.planner.Plan(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("key", filter.Attribute).
			Int("limit", filter.Limit).
			Msg("falha ao listar itens")
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	}

	if items == nil {
		items = []dyndb.Record{}
	}
	return http.StatusOK, ItemsResponse{Items: items}
}
