package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/pkg/metrics"
	"github.com/raywall/dynamo-items-service/pkg/web"
)

// LambdaHandler adapta eventos do API Gateway para o mesmo ItemsEndpoint do servidor HTTP
type LambdaHandler struct {
	items   *ItemsEndpoint
	page    *web.Page
	origins []string
	metrics metrics.Provider
}

// NewLambdaHandler cria uma nova instância do adaptador com as mesmas opções
// do roteador HTTP. opts.Page pode ser nil.
func NewLambdaHandler(p ItemsPlanner, opts RouterOptions) *LambdaHandler {
	if opts.Metrics == nil {
		opts.Metrics = metrics.Noop{}
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	return &LambdaHandler{
		items:   NewItemsEndpoint(p, opts.RequestTimeout),
		page:    opts.Page,
		origins: opts.CORSOrigins,
		metrics: opts.Metrics,
	}
}

// Handle processa a requisição Lambda
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	// O API Gateway pode ou não normalizar o header para minúsculas
	corrID := headerValue(req.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

	var response events.APIGatewayProxyResponse
	route := req.Path
	switch {
	case req.HTTPMethod != http.MethodGet:
		response = jsonResponse(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	case strings.HasSuffix(req.Path, "/api/items"):
		route = "/api/items"
		response = jsonResponse(h.items.List(ctx, queryValues(req)))
	case (req.Path == "/" || req.Path == "") && h.page != nil:
		route = "/"
		response = events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
			Body:       string(h.page.HTML()),
		}
	default:
		response = jsonResponse(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	duration := time.Since(start).Milliseconds()
	tags := []string{"route:" + route, "method:" + req.HTTPMethod, "status:" + strconv.Itoa(response.StatusCode)}
	_ = h.metrics.Count("http.requests", 1, tags)
	_ = h.metrics.Histogram("http.latency_ms", float64(duration), tags)

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", response.StatusCode).
		Int64("latency_ms", duration).
		Msg("lambda request completed")

	response.Headers[HeaderCorrelationID] = corrID
	h.applyCORS(response.Headers, headerValue(req.Headers, "Origin"))
	return response, nil
}

// applyCORS replica o que gorilla/handlers faz no servidor HTTP: sem Origin
// ou com origem não permitida, nenhum header é enviado.
func (h *LambdaHandler) applyCORS(headers map[string]string, origin string) {
	if origin == "" {
		return
	}
	for _, allowed := range h.origins {
		switch allowed {
		case "*":
			headers["Access-Control-Allow-Origin"] = "*"
		case origin:
			headers["Access-Control-Allow-Origin"] = origin
			headers["Vary"] = "Origin"
		default:
			continue
		}
		headers["Access-Control-Expose-Headers"] = HeaderCorrelationID + ", " + HeaderLatency
		return
	}
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		raw, _ = json.Marshal(ErrorResponse{Error: err.Error()})
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(raw),
	}
}

// queryValues junta os parâmetros simples e multi-valor do evento.
func queryValues(req events.APIGatewayProxyRequest) url.Values {
	q := url.Values{}
	for k, vs := range req.MultiValueQueryStringParameters {
		q[k] = append([]string(nil), vs...)
	}
	for k, v := range req.QueryStringParameters {
		if _, ok := q[k]; !ok {
			q.Set(k, v)
		}
	}
	return q
}

func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
