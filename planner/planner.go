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
package planner

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/dyndb"
)

// Strategy é o caminho escolhido para atender um Filter.
type Strategy string

const (
	StrategyKeyLookup Strategy = "key_lookup"
	StrategyScanAll   Strategy = "scan_all"
)

// Fetcher é o subconjunto do dyndb.ItemStore usado pelo planner.
type Fetcher interface {
	FetchAll(ctx context.Context, limit int) ([]dyndb.Record, error)
	FetchByKey(ctx context.Context, attribute, value string, limit int) ([]dyndb.Record, error)
}

// Filter é o pedido derivado dos parâmetros da requisição.
//
// Limit <= 0 significa sem limite.
type Filter struct {
	Attribute string
	Value     string
	Limit     int
}

// FilterFromQuery lê limit, key e value da query string.
//
// Um limit que não é inteiro é ignorado, como se não tivesse sido enviado.
func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Attribute: q.Get("key"),
		Value:     q.Get("value"),
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.Limit = n
		}
	}
	return f
}

// Strategy decide entre busca por chave e leitura completa.
//
// Se só um entre atributo e valor vier preenchido, ambos são ignorados.
func (f Filter) Strategy() Strategy {
	if f.Attribute != "" && f.Value != "" {
		return StrategyKeyLookup
	}
	return StrategyScanAll
}

// Planner despacha cada Filter para o Fetcher. Não guarda estado.
type Planner struct {
	fetcher Fetcher
}

// New cria um Planner sobre o fetcher informado.
func New(fetcher Fetcher) *Planner {
	return &Planner{fetcher: fetcher}
}

// Plan executa o Filter e devolve os registros.
func (p *Planner) Plan(ctx context.Context, f Filter) ([]dyndb.Record, error) {
	strategy := f.Strategy()
	log.Ctx(ctx).Debug().
		Str("strategy", string(strategy)).
		Int("limit", f.Limit).
		Msg("planejando consulta")

	if strategy == StrategyKeyLookup {
		return p.fetcher.FetchByKey(ctx, f.Attribute, f.Value, f.Limit)
	}
	return p.fetcher.FetchAll(ctx, f.Limit)
}
