package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/kaimono/internal/models"
)

// Load reads a catalog snapshot file, dispatching on extension. JSON and
// XLSX drops are supported.
func Load(path string) ([]*models.Product, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".xlsx":
		return LoadExcel(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}

// LoadJSON reads a catalog snapshot from a JSON file: either a top-level
// array of records or an object with a "products" array.
func LoadJSON(path string) ([]*models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var inputs []*models.ProductInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		var wrapper struct {
			Products []*models.ProductInput `json:"products"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		inputs = wrapper.Products
	}
	return NormalizeAll(inputs), nil
}
