package ranking

import (
	"strings"

	"github.com/hyperjump/kaimono/internal/models"
)

// Scorer computes the relevance score for one product against a query.
type Scorer struct {
	config   *ScoringConfig
	synonyms *SynonymTable
}

// NewScorer creates a Scorer. A nil config uses the default scoring
// contract; a nil table uses the built-in bilingual keyword groups.
func NewScorer(config *ScoringConfig, synonyms *SynonymTable) *Scorer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()
	if synonyms == nil {
		synonyms = DefaultSynonymTable()
	}
	return &Scorer{config: config, synonyms: synonyms}
}

// Config returns the scoring configuration.
func (s *Scorer) Config() *ScoringConfig {
	return s.config
}

// Score returns the additive relevance score for a product. An empty query
// scores 0 for every product. Flag and price-band bonuses only apply on top
// of at least one text signal; without a text match the product stays at 0
// and is excluded from text-search results.
func (s *Scorer) Score(p *models.Product, query string) int {
	if p == nil {
		return 0
	}
	q := Normalize(query)
	if q == "" {
		return 0
	}

	score := 0
	name := Normalize(p.Name)
	if name != "" && name == q {
		score += s.config.ExactNameScore
	}

	match := MatchFields(p, q)
	if match.Name {
		score += s.config.NameContainsScore
	}
	if match.Description {
		score += s.config.DescriptionContainsScore
	}
	if match.Category {
		score += s.config.CategoryContainsScore
	}
	score += s.synonymGroupScore(q, name)

	if score == 0 {
		return 0
	}

	if p.Featured {
		score += s.config.FeaturedBonus
	}
	if p.Latest {
		score += s.config.LatestBonus
	}
	if p.BestSelling {
		score += s.config.BestSellingBonus
	}
	if p.Price >= s.config.PriceBandMin && p.Price <= s.config.PriceBandMax {
		score += s.config.PriceBandBonus
	}
	return score
}

// synonymGroupScore awards the keyword-group bonus once per configured
// group whose sides bridge the query and the product name: the query
// contains one term of the group and the name contains a different term of
// the same group. A name that literally contains the query is already
// covered by the containment signals.
func (s *Scorer) synonymGroupScore(query, name string) int {
	if name == "" {
		return 0
	}
	total := 0
	for _, group := range s.synonyms.Groups() {
		if groupBridges(group, query, name) {
			total += s.config.SynonymGroupScore
		}
	}
	return total
}

func groupBridges(group []string, query, name string) bool {
	for _, qt := range group {
		if !strings.Contains(query, qt) {
			continue
		}
		for _, nt := range group {
			if nt != qt && strings.Contains(name, nt) {
				return true
			}
		}
	}
	return false
}

// PopularityScore is the composite heuristic used when relevance ordering
// is requested without a text query.
func (s *Scorer) PopularityScore(p *models.Product) int {
	if p == nil {
		return 0
	}
	score := 0
	if p.Featured {
		score += s.config.PopularityFeaturedWeight
	}
	if p.Latest {
		score += s.config.PopularityLatestWeight
	}
	if p.BestSelling {
		score += s.config.PopularityBestSellingWeight
	}
	return score
}

// ScoreBreakdown itemizes one product's score for debugging and UI badges.
type ScoreBreakdown struct {
	Total        int  `json:"total"`
	ExactName    int  `json:"exact_name"`
	Name         int  `json:"name"`
	Description  int  `json:"description"`
	Category     int  `json:"category"`
	SynonymGroup int  `json:"synonym_group"`
	Flags        int  `json:"flags"`
	PriceBand    int  `json:"price_band"`
	TextMatched  bool `json:"text_matched"`
}

// ScoreWithBreakdown returns the score together with its per-signal parts.
func (s *Scorer) ScoreWithBreakdown(p *models.Product, query string) *ScoreBreakdown {
	b := &ScoreBreakdown{}
	if p == nil {
		return b
	}
	q := Normalize(query)
	if q == "" {
		return b
	}

	name := Normalize(p.Name)
	if name != "" && name == q {
		b.ExactName = s.config.ExactNameScore
	}
	match := MatchFields(p, q)
	if match.Name {
		b.Name = s.config.NameContainsScore
	}
	if match.Description {
		b.Description = s.config.DescriptionContainsScore
	}
	if match.Category {
		b.Category = s.config.CategoryContainsScore
	}
	b.SynonymGroup = s.synonymGroupScore(q, name)

	text := b.ExactName + b.Name + b.Description + b.Category + b.SynonymGroup
	if text == 0 {
		return b
	}
	b.TextMatched = true

	if p.Featured {
		b.Flags += s.config.FeaturedBonus
	}
	if p.Latest {
		b.Flags += s.config.LatestBonus
	}
	if p.BestSelling {
		b.Flags += s.config.BestSellingBonus
	}
	if p.Price >= s.config.PriceBandMin && p.Price <= s.config.PriceBandMax {
		b.PriceBand = s.config.PriceBandBonus
	}
	b.Total = text + b.Flags + b.PriceBand
	return b
}
