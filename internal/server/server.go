package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/handler"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/progress"
	"github.com/osse101/Ycine_Go/internal/referral"
	"github.com/osse101/Ycine_Go/internal/reward"
	"github.com/osse101/Ycine_Go/internal/withdrawal"
)

// Config holds the transport settings
type Config struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	StaticDir         string
}

// Services are the ledger operations exposed over HTTP
type Services struct {
	Store      handler.Pinger
	Catalog    catalog.Service
	Progress   progress.Service
	Rewards    reward.Service
	Referrals  referral.Service
	Withdrawal withdrawal.Service
	CardLinks  cardlink.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(cfg Config, svc Services) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	accounts := handler.NewAccountHandlers(svc.Referrals)
	cards := handler.NewCardLinkHandlers(svc.CardLinks)
	admin := handler.NewAdminHandlers(svc.Referrals, svc.Withdrawal, svc.CardLinks, svc.Catalog)

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", accounts.HandleSignup())
		r.Post("/login", accounts.HandleLogin())
		r.Get("/invite/{code}", accounts.HandleInviteInfo())
		r.Get("/account/{id}", accounts.HandleGetAccount())

		r.Get("/videos", handler.HandleListVideos(svc.Catalog))
		r.Post("/progress", handler.HandleRecordProgress(svc.Progress))
		r.Post("/claim", handler.HandleClaim(svc.Rewards))
		r.Post("/withdraw", handler.HandleWithdraw(svc.Withdrawal))

		r.Route("/link-card", func(r chi.Router) {
			r.Post("/", cards.HandleInitiate())
			r.Post("/callback", cards.HandleCallback())
			r.Get("/callback", cards.HandleDemoCallback())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

			r.Get("/users", admin.HandleListUsers())
			r.Get("/users/{id}/payment-links", admin.HandleListPaymentLinks())
			r.Get("/withdrawals", admin.HandleListWithdrawals())
			r.Get("/cache/stats", admin.HandleGetCacheStats())
			r.Post("/cache/invalidate", admin.HandleInvalidateCache())
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	mountStatic(r, cfg.StaticDir)

	return r
}

// mountStatic serves the web client. Page routes map to their html files.
func mountStatic(r chi.Router, dir string) {
	if dir == "" {
		slog.Default().Info(LogMsgStaticDisabled)
		return
	}

	fs := http.FileServer(http.Dir(dir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	for route, file := range map[string]string{
		"/dashboard": "dashboard.html",
		"/withdraw":  "withdraw.html",
	} {
		path := filepath.Join(dir, file)
		r.Get(route, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, path)
		})
	}

	r.Handle("/*", fs)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if slices.ContainsFunc(redactedHeaders, func(name string) bool { return strings.EqualFold(k, name) }) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
