// Package search composes scoring, filtering, and ordering into the product
// search pipeline.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hyperjump/kaimono/internal/filter"
	"github.com/hyperjump/kaimono/internal/models"
	"github.com/hyperjump/kaimono/internal/ranking"
)

// parallelThreshold is the catalog size above which per-product scoring is
// spread over the worker pool. Scoring one product never depends on
// another's score, so the split is safe; the subsequent sort is a single
// deterministic pass.
const parallelThreshold = 2048

// Options configures an Engine.
type Options struct {
	// Scoring overrides the default point values. Nil uses the contract
	// defaults.
	Scoring *ranking.ScoringConfig
	// Synonyms overrides the built-in bilingual keyword table.
	Synonyms *ranking.SynonymTable
	// EnableTextScoring defaults to true. When false, relevance ordering
	// degenerates to the popularity heuristic regardless of query.
	EnableTextScoring *bool
	// Workers sets the scoring pool size. Values below 2 keep scoring
	// sequential.
	Workers int
}

// Engine ranks and filters catalog snapshots. It holds no per-call state
// and never mutates its inputs, so one Engine may serve concurrent callers
// on different snapshots without coordination.
type Engine struct {
	scorer      *ranking.Scorer
	textScoring bool
	workers     int
	pool        *ants.Pool
}

// NewEngine creates an Engine from options.
func NewEngine(opts Options) (*Engine, error) {
	textScoring := true
	if opts.EnableTextScoring != nil {
		textScoring = *opts.EnableTextScoring
	}
	e := &Engine{
		scorer:      ranking.NewScorer(opts.Scoring, opts.Synonyms),
		textScoring: textScoring,
		workers:     opts.Workers,
	}
	if opts.Workers > 1 {
		pool, err := ants.NewPool(opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("create scoring pool: %w", err)
		}
		e.pool = pool
	}
	return e, nil
}

// Close releases the scoring pool, if any.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Scorer exposes the engine's scorer, e.g. for score breakdown endpoints.
func (e *Engine) Scorer() *ranking.Scorer {
	return e.scorer
}

// Search ranks a catalog snapshot against the request and returns the
// ordered page. The catalog is read-only; scores ride on transient
// ScoredProduct pairs. Repeated calls with identical inputs produce
// identical output ordering.
func (e *Engine) Search(ctx context.Context, catalog []*models.Product, req *models.SearchRequest) (*models.SearchResponse, error) {
	start := time.Now()
	if req == nil {
		req = &models.SearchRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	key := models.SortKey(req.Sort)

	textual := e.textScoring && strings.TrimSpace(req.Query) != ""
	scores := e.scoreAll(catalog, req.Query, textual)

	results := make([]*models.ScoredProduct, 0, len(catalog))
	for i, p := range catalog {
		if p == nil {
			continue
		}
		// Score > 0 is the inclusion gate for text search; pure filtering
		// never gates on score.
		if textual && scores[i] == 0 {
			continue
		}
		if !filter.Match(p, req.Filter) {
			continue
		}
		results = append(results, &models.ScoredProduct{Product: p, Score: scores[i]})
	}

	if key == models.SortRelevance && !textual {
		for _, r := range results {
			r.Score = e.scorer.PopularityScore(r.Product)
		}
	}
	SortScored(results, key)

	total := len(results)
	page := paginate(results, req.Offset, req.Limit)
	for i, r := range page {
		r.Rank = req.Offset + i + 1
	}

	return &models.SearchResponse{
		Results:   page,
		Total:     total,
		Query:     req.Query,
		Sort:      req.Sort,
		QueryTime: time.Since(start).Milliseconds(),
	}, nil
}

// scoreAll computes the text score for every catalog entry. Large catalogs
// are scored on the worker pool when one is configured.
func (e *Engine) scoreAll(catalog []*models.Product, query string, textual bool) []int {
	scores := make([]int, len(catalog))
	if !textual {
		return scores
	}
	if e.pool == nil || len(catalog) < parallelThreshold {
		for i, p := range catalog {
			scores[i] = e.scorer.Score(p, query)
		}
		return scores
	}

	var wg sync.WaitGroup
	chunk := (len(catalog) + e.workers - 1) / e.workers
	for lo := 0; lo < len(catalog); lo += chunk {
		hi := lo + chunk
		if hi > len(catalog) {
			hi = len(catalog)
		}
		lo, hi := lo, hi
		wg.Add(1)
		task := func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				scores[i] = e.scorer.Score(catalog[i], query)
			}
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool saturated or released: score the chunk inline.
			task()
		}
	}
	wg.Wait()
	return scores
}

func paginate(results []*models.ScoredProduct, offset, limit int) []*models.ScoredProduct {
	if offset >= len(results) {
		return []*models.ScoredProduct{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
