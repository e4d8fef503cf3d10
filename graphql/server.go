package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rediwo/tweenlog/logger"
)

// ServerConfig contains configuration for the inspector server
type ServerConfig struct {
	Addr       string
	CORS       bool
	Playground bool
}

// Server exposes a Debugger over HTTP: /graphql, /metrics and /health
type Server struct {
	handler *Handler
	config  ServerConfig
	logger  logger.Logger
	http    *http.Server
}

// NewServer creates a server for src
func NewServer(src Source, config ServerConfig, log logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.NewNullLogger()
	}
	schema, err := NewSchema(src)
	if err != nil {
		return nil, err
	}

	h := NewHandler(schema).SetLogger(log)
	if config.Playground {
		h.EnableGraphiQL()
	}

	s := &Server{
		handler: h,
		config:  config,
		logger:  log,
	}
	s.http = &http.Server{
		Addr:              config.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Routes returns the HTTP routes
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/graphql", s.corsMiddleware(s.handler))
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			fmt.Fprintf(w, "tweenlog inspector\n\nEndpoints:\n- /graphql - GraphQL API\n- /metrics - Prometheus metrics\n- /health - Health check\n")
			return
		}
		http.NotFound(w, r)
	})

	return Chain(mux, Logging(s.logger))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("GraphQL inspector ready at http://%s/graphql", s.config.Addr)
		errCh <- s.http.ListenAndServe()
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
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

// Handler returns the GraphQL handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// corsMiddleware adds CORS headers if enabled
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.CORS {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
