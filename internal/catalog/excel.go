package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/kaimono/internal/models"
)

// LoadExcel reads a catalog snapshot from an XLSX workbook. The first row
// of the first sheet is a header; recognized columns are matched by
// normalized name and unknown columns are ignored.
func LoadExcel(path string) ([]*models.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	columns := headerIndex(rows[0])
	inputs := make([]*models.ProductInput, 0, len(rows)-1)
	for _, row := range rows[1:] {
		in := &models.ProductInput{
			ID:          cell(row, columns, "id"),
			Name:        cell(row, columns, "name"),
			Description: cell(row, columns, "description"),
			Category:    cell(row, columns, "category"),
			CreatedAt:   cell(row, columns, "created_at"),
		}
		if price := cell(row, columns, "price"); price != "" {
			in.Price = price
		}
		if stock := cell(row, columns, "stock"); stock != "" {
			in.Stock = stock
		}
		in.Featured = coerceBool(cell(row, columns, "featured"))
		in.Latest = coerceBool(cell(row, columns, "latest"))
		in.BestSelling = coerceBool(cell(row, columns, "best_selling"))
		inputs = append(inputs, in)
	}
	return NormalizeAll(inputs), nil
}

// headerIndex maps normalized header names to column positions. Spaces and
// hyphens fold to underscores so "Best Selling" and "best_selling" both
// resolve.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		name = strings.ReplaceAll(name, "-", "_")
		if name != "" {
			columns[name] = i
		}
	}
	return columns
}

// cell returns the trimmed cell under the named column, or "" when the
// column is absent from the header or the row is short.
func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
