package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Dreadlight_Go/internal/handler"
	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/metrics"
)

// Options configures the inspector HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	MaxRequests    int
	RateWindow     time.Duration
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router over game. Routes for the world and the
// naming admin are only mounted when game carries them.
func NewServer(opts Options, game *handler.Game) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	guard := NewGuard(GuardConfig{
		APIKey:         opts.APIKey,
		TrustedProxies: opts.TrustedProxies,
		MaxRequests:    opts.MaxRequests,
		Window:         opts.RateWindow,
	})

	r := chi.NewRouter()

	// Outermost first
	r.Use(SecurityHeadersMiddleware)
	r.Use(loggingMiddleware)
	r.Use(guard.RateLimit)
	r.Use(guard.Auth)
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(game.Loop))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(game))
			r.Post("/add", handler.HandleAddItem(game))
			r.Post("/remove", handler.HandleRemoveItem(game))
			r.Post("/use", handler.HandleUseItem(game))
			r.Post("/swap", handler.HandleSwapInventory(game))
			r.Post("/clear", handler.HandleClearInventory(game))
		})

		r.Route("/quickbar", func(r chi.Router) {
			r.Post("/assign", handler.HandleAssignQuickbar(game))
			r.Post("/remove", handler.HandleRemoveQuickbar(game))
			r.Post("/swap", handler.HandleSwapQuickbar(game))
			r.Post("/equip", handler.HandleEquip(game))
			r.Post("/from-inventory", handler.HandleMoveToQuickbar(game))
			r.Post("/to-inventory", handler.HandleMoveToInventory(game))
		})

		r.Route("/equipped", func(r chi.Router) {
			r.Post("/use", handler.HandleUseEquipped(game))
			r.Post("/drop", handler.HandleDropEquipped(game))
			r.Post("/unequip", handler.HandleUnequip(game))
		})

		if game.World != nil {
			r.Route("/world", func(r chi.Router) {
				r.Get("/pickups", handler.HandleListPickups(game))
				r.Post("/pickups/{pickupID}/collect", handler.HandleCollectPickup(game))
			})
		}

		if game.Names != nil {
			r.Post("/admin/reload-aliases", handler.HandleReloadAliases(game.Names))
		}
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

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

// Start serves until Stop. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
