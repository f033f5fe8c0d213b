package ranking

// ScoringConfig holds the point values for every relevance signal. The
// defaults are the documented scoring contract; operators may tune them via
// the config file, but tests assert on the defaults.
type ScoringConfig struct {
	// Text signals
	ExactNameScore           int `yaml:"exact_name_score"`           // default: 100
	NameContainsScore        int `yaml:"name_contains_score"`        // default: 50
	DescriptionContainsScore int `yaml:"description_contains_score"` // default: 20
	CategoryContainsScore    int `yaml:"category_contains_score"`    // default: 30
	SynonymGroupScore        int `yaml:"synonym_group_score"`        // default: 40

	// Flag bonuses (applied only when a text signal matched)
	FeaturedBonus    int `yaml:"featured_bonus"`     // default: 15
	LatestBonus      int `yaml:"latest_bonus"`       // default: 10
	BestSellingBonus int `yaml:"best_selling_bonus"` // default: 12

	// Preferred mid-range price band, inclusive
	PriceBandBonus int     `yaml:"price_band_bonus"` // default: 5
	PriceBandMin   float64 `yaml:"price_band_min"`   // default: 300
	PriceBandMax   float64 `yaml:"price_band_max"`   // default: 2000

	// Popularity heuristic weights, used when relevance ordering is
	// requested without a text query
	PopularityFeaturedWeight    int `yaml:"popularity_featured_weight"`     // default: 3
	PopularityLatestWeight      int `yaml:"popularity_latest_weight"`       // default: 2
	PopularityBestSellingWeight int `yaml:"popularity_best_selling_weight"` // default: 2
}

// DefaultScoringConfig returns the default scoring contract.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		ExactNameScore:           100,
		NameContainsScore:        50,
		DescriptionContainsScore: 20,
		CategoryContainsScore:    30,
		SynonymGroupScore:        40,

		FeaturedBonus:    15,
		LatestBonus:      10,
		BestSellingBonus: 12,

		PriceBandBonus: 5,
		PriceBandMin:   300,
		PriceBandMax:   2000,

		PopularityFeaturedWeight:    3,
		PopularityLatestWeight:      2,
		PopularityBestSellingWeight: 2,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.ExactNameScore == 0 {
		c.ExactNameScore = defaults.ExactNameScore
	}
	if c.NameContainsScore == 0 {
		c.NameContainsScore = defaults.NameContainsScore
	}
	if c.DescriptionContainsScore == 0 {
		c.DescriptionContainsScore = defaults.DescriptionContainsScore
	}
	if c.CategoryContainsScore == 0 {
		c.CategoryContainsScore = defaults.CategoryContainsScore
	}
	if c.SynonymGroupScore == 0 {
		c.SynonymGroupScore = defaults.SynonymGroupScore
	}
	if c.FeaturedBonus == 0 {
		c.FeaturedBonus = defaults.FeaturedBonus
	}
	if c.LatestBonus == 0 {
		c.LatestBonus = defaults.LatestBonus
	}
	if c.BestSellingBonus == 0 {
		c.BestSellingBonus = defaults.BestSellingBonus
	}
	if c.PriceBandBonus == 0 {
		c.PriceBandBonus = defaults.PriceBandBonus
	}
	if c.PriceBandMin == 0 {
		c.PriceBandMin = defaults.PriceBandMin
	}
	if c.PriceBandMax == 0 {
		c.PriceBandMax = defaults.PriceBandMax
	}
	if c.PopularityFeaturedWeight == 0 {
		c.PopularityFeaturedWeight = defaults.PopularityFeaturedWeight
	}
	if c.PopularityLatestWeight == 0 {
		c.PopularityLatestWeight = defaults.PopularityLatestWeight
	}
	if c.PopularityBestSellingWeight == 0 {
		c.PopularityBestSellingWeight = defaults.PopularityBestSellingWeight
	}
}
