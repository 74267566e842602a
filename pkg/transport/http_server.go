package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/dynamo-items-service/pkg/metrics"
	"github.com/raywall/dynamo-items-service/pkg/web"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"
)

type ctxKey string

// ContextKeyCorrID guarda o correlation id da requisição no contexto.
const ContextKeyCorrID ctxKey = "correlation_id"

// CorrelationID devolve o id propagado pelo middleware, ou "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyCorrID).(string)
	return id
}

const shutdownTimeout = 10 * time.Second

// RouterOptions agrupa o que o roteador precisa além do planner.
type RouterOptions struct {
	Page           *web.Page
	RequestTimeout time.Duration
	CORSOrigins    []string
	Metrics        metrics.Provider
}

// NewRouter monta as rotas GET /, /static/ e /api/items.
func NewRouter(p ItemsPlanner, opts RouterOptions) http.Handler {
	if opts.Metrics == nil {
		opts.Metrics = metrics.Noop{}
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	items := NewItemsEndpoint(p, opts.RequestTimeout)

	r := mux.NewRouter()
	r.Use(NewObservabilityMiddleware(opts.Metrics))

	if opts.Page != nil {
		r.Handle("/", opts.Page).Methods(http.MethodGet)
	}
	r.PathPrefix(web.StaticPrefix).Handler(web.StaticHandler()).Methods(http.MethodGet)
	r.HandleFunc("/api/items", func(w http.ResponseWriter, req *http.Request) {
		status, body := items.List(req.Context(), req.URL.Query())
		sendResponse(w, status, body)
	}).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", HeaderCorrelationID}),
		handlers.ExposedHeaders([]string{HeaderCorrelationID, HeaderLatency}),
	)
	return cors(r)
}

// StartHTTPServer escuta em addr até ctx ser cancelado e então faz shutdown
// gracioso, esperando as requisições em andamento.
func StartHTTPServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Servidor HTTP ouvindo em %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Encerrando servidor HTTP")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func sendResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("Erro ao encode response")
		}
	}
}

// --- MIDDLEWARE DE OBSERVABILIDADE ---
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	duration := time.Since(rw.startTime)
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", duration.Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// NewObservabilityMiddleware propaga o correlation id, loga cada requisição e
// registra métricas por rota.
func NewObservabilityMiddleware(p metrics.Provider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			corrID := r.Header.Get(HeaderCorrelationID)
			if corrID == "" {
				corrID = uuid.NewString()
			}
			w.Header().Set(HeaderCorrelationID, corrID)

			logger := log.With().Str("correlation_id", corrID).Logger()
			ctx := logger.WithContext(r.Context())
			ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

			wrapper := &responseWriterWrapper{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				startTime:      start,
			}

			next.ServeHTTP(wrapper, r.WithContext(ctx))

			latency := time.Since(start)
			route := routeName(r)
			tags := []string{
				"route:" + route,
				"method:" + r.Method,
				"status:" + strconv.Itoa(wrapper.statusCode),
			}
			_ = p.Count("http.requests", 1, tags)
			_ = p.Histogram("http.latency_ms", float64(latency.Milliseconds()), tags)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int64("latency_ms", latency.Milliseconds()).
				Msg("request completed")
		})
	}
}

// routeName usa o template da rota para não explodir a cardinalidade das tags.
func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
