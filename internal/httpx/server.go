package httpx

import (
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/auth"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, traceRequest, middleware.RealIP, RequestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Handlers groups the resource handlers mounted by Register.
type Handlers struct {
	Users  *UsersHandler
	Items  *ItemsHandler
	Cart   *CartHandler
	Orders *OrdersHandler
}

// Register mounts every route. With tokens set, everything except user creation
// and login requires a Bearer token; with tokens nil the API is open and /login is absent.
func (h Handlers) Register(r chi.Router, tokens *auth.Tokens, log *zap.Logger) {
	r.Post("/user/create", h.Users.create)
	if tokens != nil {
		r.Post("/login", h.Users.login)
	}

	r.Group(func(r chi.Router) {
		if tokens != nil {
			r.Use(auth.Require(tokens, log))
		}
		h.Users.Register(r)
		h.Items.Register(r)
		h.Cart.Register(r)
		h.Orders.Register(r)
	})
}

// traceRequest hands the request id to the domain layer as the event trace id.
func traceRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shop.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger writes one access log line per request.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
