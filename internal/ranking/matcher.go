package ranking

import "github.com/hyperjump/kaimono/internal/models"

// MatchedField identifies which searchable product field matched a term.
type MatchedField int

const (
	// FieldName is the product display name, the primary match field.
	FieldName MatchedField = iota
	// FieldDescription is the optional long text, the secondary match field.
	FieldDescription
	// FieldCategory is the optional short category text.
	FieldCategory
)

// String returns a string representation of the matched field.
func (f MatchedField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDescription:
		return "description"
	case FieldCategory:
		return "category"
	default:
		return "unknown"
	}
}

// FieldMatch reports which of a product's searchable fields contained a
// term. A product with no matching field is not disqualified from
// filter-only queries; it merely contributes zero to scoring.
type FieldMatch struct {
	Name        bool
	Description bool
	Category    bool
}

// Any reports whether at least one field matched.
func (m FieldMatch) Any() bool {
	return m.Name || m.Description || m.Category
}

// Fields returns the matched fields as a set.
func (m FieldMatch) Fields() []MatchedField {
	var fields []MatchedField
	if m.Name {
		fields = append(fields, FieldName)
	}
	if m.Description {
		fields = append(fields, FieldDescription)
	}
	if m.Category {
		fields = append(fields, FieldCategory)
	}
	return fields
}

// MatchFields tests a term against each searchable field using normalized
// substring containment.
func MatchFields(p *models.Product, term string) FieldMatch {
	if p == nil || Normalize(term) == "" {
		return FieldMatch{}
	}
	return FieldMatch{
		Name:        ContainsNormalized(p.Name, term),
		Description: ContainsNormalized(p.Description, term),
		Category:    ContainsNormalized(p.Category, term),
	}
}
