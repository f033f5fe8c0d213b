package ranking

import "sort"

// SynonymTable maps a small set of storefront keywords to their equivalent
// forms in other scripts and languages. The table is static configuration,
// not learned: it is injected into the Scorer so new languages or domains
// can be added without touching scoring logic.
type SynonymTable struct {
	groups [][]string
	byTerm map[string][]string
}

// NewSynonymTable builds a table from canonical-term -> group mappings. The
// canonical term is included in its own group. Group iteration order is
// fixed (sorted by canonical term) so scoring stays deterministic.
func NewSynonymTable(mapping map[string][]string) *SynonymTable {
	canonicals := make([]string, 0, len(mapping))
	for canonical := range mapping {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	t := &SynonymTable{byTerm: make(map[string][]string)}
	for _, canonical := range canonicals {
		group := make([]string, 0, len(mapping[canonical])+1)
		seen := make(map[string]bool)
		for _, term := range append([]string{canonical}, mapping[canonical]...) {
			n := Normalize(term)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			group = append(group, n)
		}
		if len(group) == 0 {
			continue
		}
		t.groups = append(t.groups, group)
		for _, term := range group {
			t.byTerm[term] = group
		}
	}
	return t
}

// DefaultSynonymTable returns the built-in English/Japanese keyword groups
// for the storefront domain.
func DefaultSynonymTable() *SynonymTable {
	return NewSynonymTable(map[string][]string{
		"gift":    {"ギフト", "プレゼント", "贈り物"},
		"mug":     {"マグカップ", "マグ"},
		"shirt":   {"シャツ", "tシャツ"},
		"frame":   {"フレーム", "額縁"},
		"custom":  {"カスタム", "オーダーメイド"},
		"sticker": {"ステッカー", "シール"},
	})
}

// Expand returns the keyword group for a term. A term with no table entry
// expands to the singleton set containing (the normalized form of) itself.
func (t *SynonymTable) Expand(term string) []string {
	n := Normalize(term)
	if n == "" {
		return nil
	}
	if group, ok := t.byTerm[n]; ok {
		return append([]string(nil), group...)
	}
	return []string{n}
}

// Groups returns all keyword groups in deterministic order.
func (t *SynonymTable) Groups() [][]string {
	return t.groups
}

// Len returns the number of configured groups.
func (t *SynonymTable) Len() int {
	return len(t.groups)
}
