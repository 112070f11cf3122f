package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/m-mizutani/buildhook/pkg/domain/interfaces"
)

// DefaultMaxBodyBytes matches the largest payload GitHub delivers (25 MiB)
const DefaultMaxBodyBytes int64 = 25 << 20

// config holds internal HTTP server configuration
type config struct {
	addr         string
	maxBodyBytes int64
	sentry       bool
	writeTimeout time.Duration
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithMaxBodyBytes caps the size of webhook payloads
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		c.maxBodyBytes = n
	}
}

// WithSentry enables the Sentry hub middleware. sentry.Init must be called
// beforehand.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// WithWriteTimeout bounds the time spent handling one request, including the
// build start call
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	webhookUC interfaces.WebhookUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:         "localhost:8080",
		maxBodyBytes: DefaultMaxBodyBytes,
		writeTimeout: 30 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	// Inside Recoverer so that panics reach Sentry before they are recovered
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	// Health check
	router.Get("/health", handleHealth)

	// Webhook endpoints: /build is the API Gateway resource path
	webhookHandler := NewWebhookHandler(webhookUC, cfg.maxBodyBytes)
	router.Post("/build", webhookHandler.Handle)
	router.Post("/hooks/github", webhookHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			WriteTimeout:      cfg.writeTimeout,
		},
	}

	return server, nil
}
