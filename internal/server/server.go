// Package server exposes code generation over HTTP for the browser builder.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/export"
	"github.com/alexisbeaulieu97/forgeui/internal/logger"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 5 << 20

// DefaultOrigins are the local development servers allowed by CORS when no
// origin is configured.
var DefaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// Options configures a Server.
type Options struct {
	Origins []string
	Log     *logger.Logger
}

// Server serves the forgeui HTTP API.
type Server struct {
	exporter *export.Service
	catalog  *catalog.Catalog
	log      *logger.Logger
	engine   *gin.Engine
}

// New builds the gin engine and its routes.
func New(exporter *export.Service, cat *catalog.Catalog, opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	origins := opts.Origins
	if len(origins) == 0 {
		origins = DefaultOrigins
	}

	s := &Server{exporter: exporter, catalog: cat, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Disposition", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(limitBody(maxBodyBytes))

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/themes", s.themes)
	api.GET("/frameworks", s.frameworks)
	api.GET("/templates", s.templates)
	api.POST("/generate", s.generate)
	api.POST("/export", s.export)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": addr}).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
