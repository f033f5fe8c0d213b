// Package server provides the HTTP API for kaimono.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/kaimono/internal/config"
	"github.com/hyperjump/kaimono/internal/search"
	"github.com/hyperjump/kaimono/internal/storage"
	"github.com/hyperjump/kaimono/internal/suggest"
)

// Server is the HTTP server for the kaimono API.
type Server struct {
	engine      *search.Engine
	suggester   *suggest.Generator
	store       storage.Store
	config      *config.ServerConfig
	historySize int
	logger      *zap.Logger
	server      *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	engine *search.Engine,
	suggester *suggest.Generator,
	store storage.Store,
	cfg *config.ServerConfig,
	historySize int,
	logger *zap.Logger,
) *Server {
	if historySize <= 0 {
		historySize = 50
	}
	return &Server{
		engine:      engine,
		suggester:   suggester,
		store:       store,
		config:      cfg,
		historySize: historySize,
		logger:      logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/suggest", s.handleSuggest)
	r.Post("/api/v1/products", s.handleUpsertProduct)
	r.Get("/api/v1/products", s.handleListProducts)
	r.Get("/api/v1/products/{id}", s.handleGetProduct)
	r.Delete("/api/v1/products/{id}", s.handleDeleteProduct)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
