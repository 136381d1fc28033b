// Package jsonl reads bibliographic records from JSON Lines input, one
// record per line:
//
//	{"id": "doi/123", "title": "A Study", "authors": [["SMITH", "J"]],
//	 "date": 2000, "citations": ["DOLE RJ 1952 CELL"],
//	 "tokens": {"cell": 3, "gene": 1}}
//
// Every field except title/authors is optional; unknown keys are ignored.
// The reader only parses — identity assignment and indexing belong to the
// corpus.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.Reader = (*Reader)(nil)

// Reader parses JSON Lines bibliographic records.
type Reader struct{}

// New creates a new JSONL reader.
func New() *Reader {
	return &Reader{}
}

// record is the wire shape of one line.
type record struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Authors   [][]string         `json:"authors"`
	Date      *int               `json:"date"`
	Citations []string           `json:"citations"`
	Tokens    map[string]float64 `json:"tokens"`
}

// Read parses all records from src, preserving input order. Blank lines
// are skipped; a malformed line fails the whole read with its line number.
func (r *Reader) Read(ctx context.Context, src io.Reader) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := uuid.New().String()
	logger.Section("Read JSONL")
	logger.Debug("Batch %s", batch)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var docs []domain.Document
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, domain.ErrInvalidInput, err)
		}
		docs = append(docs, rec.document())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", batch, err)
	}

	logger.Debug("Batch %s: %d records", batch, len(docs))
	return docs, nil
}

// document converts a wire record into a domain document.
func (r record) document() domain.Document {
	doc := domain.Document{
		Title:  r.Title,
		Fields: make(map[string]domain.FieldValue),
	}

	for _, name := range r.Authors {
		author := domain.Author{}
		if len(name) > 0 {
			author.Surname = name[0]
		}
		if len(name) > 1 {
			author.Given = name[1]
		}
		doc.Authors = append(doc.Authors, author)
	}

	if r.ID != "" {
		doc.Fields["id"] = domain.String(r.ID)
	}
	if r.Date != nil {
		doc.Fields[domain.FieldDate] = domain.Int(*r.Date)
	}
	if len(r.Citations) > 0 {
		cites := make(domain.List, len(r.Citations))
		for i, c := range r.Citations {
			cites[i] = domain.String(c)
		}
		doc.Fields["citations"] = cites
	}
	if len(r.Tokens) > 0 {
		doc.Fields["tokens"] = tokenList(r.Tokens)
	}

	return doc
}

// tokenList renders a token frequency map as a weighted token sequence in
// a stable order.
func tokenList(freq map[string]float64) domain.List {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Strings(words)

	tokens := make(domain.List, len(words))
	for i, w := range words {
		tokens[i] = domain.Token{Value: domain.String(w), Weight: freq[w]}
	}
	return tokens
}
