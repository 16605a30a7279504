package source

import (
	"io"
	"strings"

	"github.com/collate-dev/collate/internal/model"
)

// Result is the outcome of parsing one export file.
type Result struct {
	Rows    int // data rows seen, excluding the header
	Skipped int // malformed lines dropped outright
	Records []model.Record
}

// Parser converts one source's export file into canonical records.
//
// Contract: a single bad row never fails the file. A row whose amount or
// date cannot be parsed still yields a Record with the field absent.
type Parser interface {
	Parse(r io.Reader) (Result, error)
	Name() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate name.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Name())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser name: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for name, or nil.
func (r *Registry) Get(name string) Parser {
	return r.parsers[strings.ToLower(name)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&AmazonParser{})
	r.Register(&PayPalParser{})
	r.Register(&BankParser{})
	r.Register(&GmailParser{})
	return r
}

// columnIndex maps header names to positions for header-driven lookup, so
// extra or reordered columns in an export pass through harmlessly.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// field returns the named column's value for a row, or "" when the column
// is missing from the file or the row is short.
func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
