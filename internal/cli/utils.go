// Package cli provides CLI output utilities for kaimono.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/kaimono/internal/models"
	"github.com/hyperjump/kaimono/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}
	writeSearchResultsText(w, response)
	return nil
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms (sort: %s)\n\n",
		response.Total, response.QueryTime, response.Sort)
	for _, result := range response.Results {
		writeOneResult(w, result)
	}
}

func writeOneResult(w io.Writer, result *models.ScoredProduct) {
	p := result.Product
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | Score: %d\n", result.Rank, result.Score)
	fmt.Fprintf(w, "ID: %s\n", p.ID)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	if p.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", p.Category)
	}
	fmt.Fprintf(w, "Price: %.2f | Stock: %d\n", p.Price, p.Stock)
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", utils.Truncate(p.Description, 200))
	}
	fmt.Fprintln(w)
}

// WriteSuggestions writes a suggestion list to w in the given format.
func WriteSuggestions(w io.Writer, response *models.SuggestResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}
	fmt.Fprintf(w, "\nSuggestions for %q:\n", response.Query)
	for _, s := range response.Suggestions {
		if s.Origin == models.SuggestionTrending {
			fmt.Fprintf(w, "  [%s] %s (stock: %d)\n", s.Origin, s.Text, s.Count)
			continue
		}
		fmt.Fprintf(w, "  [%s] %s\n", s.Origin, s.Text)
	}
	return nil
}
