// Package tickers loads the curated stock list into a read-only catalog that
// is built once at startup and passed to request handlers, instead of living
// as ambient global state.
package tickers

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one curated stock list row.
type Entry struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// Catalog is an immutable snapshot of the curated stock list.
type Catalog struct {
	entries []Entry
}

// Load reads the stock list from a JSON file. A missing file yields an empty
// catalog, not an error; a malformed file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stock list: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse stock list: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// Entries returns a copy of the catalog rows.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Symbols returns the catalog's ticker symbols in list order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Symbol
	}
	return out
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int { return len(c.entries) }
