package ranking

import "testing"

func TestDefaultScoringConfig(t *testing.T) {
	c := DefaultScoringConfig()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"ExactNameScore", c.ExactNameScore, 100},
		{"NameContainsScore", c.NameContainsScore, 50},
		{"DescriptionContainsScore", c.DescriptionContainsScore, 20},
		{"CategoryContainsScore", c.CategoryContainsScore, 30},
		{"SynonymGroupScore", c.SynonymGroupScore, 40},
		{"FeaturedBonus", c.FeaturedBonus, 15},
		{"LatestBonus", c.LatestBonus, 10},
		{"BestSellingBonus", c.BestSellingBonus, 12},
		{"PriceBandBonus", c.PriceBandBonus, 5},
		{"PopularityFeaturedWeight", c.PopularityFeaturedWeight, 3},
		{"PopularityLatestWeight", c.PopularityLatestWeight, 2},
		{"PopularityBestSellingWeight", c.PopularityBestSellingWeight, 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if c.PriceBandMin != 300 || c.PriceBandMax != 2000 {
		t.Errorf("price band = [%v, %v], want [300, 2000]", c.PriceBandMin, c.PriceBandMax)
	}
}

func TestScoringConfig_ApplyDefaults(t *testing.T) {
	c := &ScoringConfig{ExactNameScore: 200, PriceBandMin: 100}
	c.ApplyDefaults()

	if c.ExactNameScore != 200 {
		t.Errorf("ExactNameScore = %d, want 200 (explicit value kept)", c.ExactNameScore)
	}
	if c.PriceBandMin != 100 {
		t.Errorf("PriceBandMin = %v, want 100 (explicit value kept)", c.PriceBandMin)
	}
	if c.NameContainsScore != 50 {
		t.Errorf("NameContainsScore = %d, want default 50", c.NameContainsScore)
	}
	if c.PriceBandMax != 2000 {
		t.Errorf("PriceBandMax = %v, want default 2000", c.PriceBandMax)
	}
}
