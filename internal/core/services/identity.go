package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// Resolver assigns a stable identity key to each document. It prefers a
// designated field and falls back to a content hash over the title and
// author names. Resolution is deterministic and depends only on field
// values, never on the corpus a document happens to be in, so two corpora
// built from the same documents assign identical keys.
type Resolver struct {
	preferred string
	cache     map[string]string
}

// NewResolver creates a resolver. preferred names the field whose value
// identifies a document (e.g. "doi" or "id"); empty means hash-only.
func NewResolver(preferred string) *Resolver {
	return &Resolver{
		preferred: preferred,
		cache:     make(map[string]string),
	}
}

// Resolve returns the identity key for a document. When the preferred
// field carries a non-empty value, that value coerced to a string is the
// key. Otherwise the key is the hex digest of a hash over the title and
// each (surname, given name) pair. Documents with neither fail with
// domain.ErrNoIdentity.
func (r *Resolver) Resolve(doc *domain.Document) (string, error) {
	if r.preferred != "" {
		if v, ok := doc.Get(r.preferred); ok {
			keys := domain.NormalizeField(v)
			if len(keys) > 0 && keys[0].String() != "" {
				return keys[0].String(), nil
			}
		}
	}

	if doc.Title == "" || len(doc.Authors) == 0 {
		return "", fmt.Errorf("document %q: %w", doc.Title, domain.ErrNoIdentity)
	}

	fp := fingerprint(doc)
	if key, ok := r.cache[fp]; ok {
		return key, nil
	}

	sum := sha256.Sum256([]byte(fp))
	key := hex.EncodeToString(sum[:])
	r.cache[fp] = key
	return key, nil
}

// fingerprint builds the hashed representation of a document's identity:
// the title followed by each surname+given pair, joined with spaces.
func fingerprint(doc *domain.Document) string {
	parts := make([]string, 0, len(doc.Authors)+1)
	parts = append(parts, doc.Title)
	for _, a := range doc.Authors {
		parts = append(parts, a.Surname+a.Given)
	}
	return strings.Join(parts, " ")
}
