// Package suggest produces auxiliary query suggestions from the catalog
// and the caller-owned search history. Suggestions are advisory only; they
// never feed back into relevance scoring.
package suggest

import (
	"strings"

	"github.com/hyperjump/kaimono/internal/models"
	"github.com/hyperjump/kaimono/internal/ranking"
)

// Caps bounds how many suggestions each origin may contribute.
type Caps struct {
	Recent       int `yaml:"recent"`        // default: 3
	Trending     int `yaml:"trending"`      // default: 4
	AutoComplete int `yaml:"auto_complete"` // default: 2
}

// DefaultCaps returns the default per-origin limits.
func DefaultCaps() Caps {
	return Caps{Recent: 3, Trending: 4, AutoComplete: 2}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Caps) ApplyDefaults() {
	defaults := DefaultCaps()
	if c.Recent == 0 {
		c.Recent = defaults.Recent
	}
	if c.Trending == 0 {
		c.Trending = defaults.Trending
	}
	if c.AutoComplete == 0 {
		c.AutoComplete = defaults.AutoComplete
	}
}

// defaultSuffixes are the domain words appended to a query to form
// deterministic auto-completions.
var defaultSuffixes = []string{"gift", "set", "custom", "premium"}

// Generator builds suggestion lists. It is stateless per call; the recent
// history it reads is owned and mutated by the caller only.
type Generator struct {
	caps     Caps
	suffixes []string
}

// NewGenerator creates a Generator. Zero caps and a nil suffix list fall
// back to the defaults.
func NewGenerator(caps Caps, suffixes []string) *Generator {
	caps.ApplyDefaults()
	if len(suffixes) == 0 {
		suffixes = defaultSuffixes
	}
	return &Generator{caps: caps, suffixes: suffixes}
}

// Suggest composes suggestions in fixed priority order: recent history
// entries containing the query, then trending catalog matches carrying the
// product stock as count, then deterministic auto-completions. No scoring
// is applied; within each origin, input order is preserved. Calling twice
// with unchanged inputs returns the same sequence.
func (g *Generator) Suggest(query string, catalog []*models.Product, history []string) []models.Suggestion {
	q := ranking.Normalize(query)
	suggestions := make([]models.Suggestion, 0, g.caps.Recent+g.caps.Trending+g.caps.AutoComplete)

	recent := 0
	for _, h := range history {
		if recent >= g.caps.Recent {
			break
		}
		text := strings.TrimSpace(h)
		if text == "" || !strings.Contains(ranking.Normalize(text), q) {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			Text:   text,
			Origin: models.SuggestionRecent,
		})
		recent++
	}

	trending := 0
	for _, p := range catalog {
		if trending >= g.caps.Trending {
			break
		}
		if p == nil || strings.TrimSpace(p.Name) == "" {
			continue
		}
		if q != "" && !ranking.ContainsNormalized(p.Name, q) && !ranking.ContainsNormalized(p.Category, q) {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			Text:   p.Name,
			Origin: models.SuggestionTrending,
			Count:  p.Stock,
		})
		trending++
	}

	for i, suffix := range g.suffixes {
		if i >= g.caps.AutoComplete {
			break
		}
		text := strings.TrimSpace(q + " " + suffix)
		suggestions = append(suggestions, models.Suggestion{
			Text:   text,
			Origin: models.SuggestionAutoComplete,
		})
	}

	return suggestions
}
