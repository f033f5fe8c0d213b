package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/kaimono/internal/catalog"
	"github.com/hyperjump/kaimono/internal/models"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("query", req.Query),
		zap.String("sort", req.Sort),
		zap.Int("limit", req.Limit),
	)

	products, err := s.store.ListProducts(r.Context())
	if err != nil {
		s.logger.Error("catalog load failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response, err := s.engine.Search(r.Context(), products, &req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// The engine only reads history; recording searches is the
	// application's job.
	if err := s.store.RecordSearch(r.Context(), req.Query); err != nil {
		s.logger.Warn("record search failed", zap.Error(err))
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := s.store.ListProducts(r.Context())
	if err != nil {
		s.logger.Error("catalog load failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	history, err := s.store.RecentSearches(r.Context(), s.historySize)
	if err != nil {
		s.logger.Warn("search history load failed", zap.Error(err))
		history = nil
	}
	s.respondJSON(w, http.StatusOK, &models.SuggestResponse{
		Query:       query,
		Suggestions: s.suggester.Suggest(query, products, history),
	})
}

func (s *Server) handleUpsertProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Name == "" {
		s.respondError(w, http.StatusBadRequest, "product name is required")
		return
	}
	p := catalog.Normalize(&input)
	if err := s.store.UpsertProduct(r.Context(), p); err != nil {
		s.logger.Error("product upsert failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.ListProducts(r.Context())
	if err != nil {
		s.logger.Error("catalog load failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.GetProduct(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "product not found")
		return
	}
	s.respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete product request", zap.String("id", id))
	if err := s.store.DeleteProduct(r.Context(), id); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountProducts(r.Context())
	if err != nil {
		s.logger.Error("status: count products failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"products": count,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
