// Package server exposes the calculator over a small JSON API so that
// settings UIs can preview a schedule before saving it.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/netresearch/go-cronnext"
)

// DefaultMaxCount caps the number of runs a single request may ask for.
const DefaultMaxCount = 50

// Options holds configuration for the API server.
type Options struct {
	Calculator *cronnext.Calculator
	Addr       string
	MaxCount   int
	Logger     *zerolog.Logger // nil disables request logging
	Out        io.Writer

	// RatePerSec and Burst configure a token bucket shared by all clients.
	// A zero RatePerSec disables limiting.
	RatePerSec float64
	Burst      int

	// Updates replaces the calculator used by the handlers, for example
	// after a config reload. Only Start reads it.
	Updates <-chan *cronnext.Calculator
}

// Start launches the HTTP server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts Options) error {
	if opts.Calculator == nil {
		return fmt.Errorf("server: calculator is required")
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	h := newHandlers(opts.Calculator, opts.MaxCount)
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           newRouter(opts, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if opts.Updates != nil {
		go h.follow(ctx, opts.Updates)
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "cronnext API listening on %s\n", opts.Addr)
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(opts Options) *gin.Engine {
	return newRouter(opts, newHandlers(opts.Calculator, opts.MaxCount))
}

func newRouter(opts Options, h *handlers) *gin.Engine {
	if h.maxCount <= 0 {
		h.maxCount = DefaultMaxCount
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	router.Use(requestLogger(logger))

	router.GET("/healthz", h.health)

	api := router.Group("/api/cron")
	if opts.RatePerSec > 0 {
		api.Use(rateLimit(opts.RatePerSec, opts.Burst))
	}
	{
		api.GET("/next", h.next)
		api.POST("/validate", h.validate)
		api.GET("/aliases", h.aliases)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "resource not found",
		})
	})
	return router
}

// requestLogger logs one line per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = logger.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
