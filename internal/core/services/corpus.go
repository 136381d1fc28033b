package services

import (
	"fmt"

	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/logger"
)

// Default fields indexed and featurized when Options leaves them nil.
var (
	DefaultIndexFields   = []string{domain.FieldAuthors, "citations"}
	DefaultIndexFeatures = []string{domain.FieldAuthors, "citations"}
)

// Options configures corpus construction.
type Options struct {
	// IndexBy names the field whose value identifies a document. Empty
	// means identity is hashed from title and authors.
	IndexBy string

	// IndexFields are the attributes indexed eagerly at construction.
	// nil means DefaultIndexFields; an empty slice means none.
	IndexFields []string

	// IndexFeatures are the attributes wrapped into feature stores at
	// construction. nil means DefaultIndexFeatures; an empty slice means
	// none.
	IndexFeatures []string

	// Features constructs empty feature stores. Defaults to the
	// in-memory FeatureSet.
	Features driven.FeatureStoreFactory
}

// Corpus is the indexed, queryable set of documents for one analysis
// session. It owns an insertion-ordered document sequence, inverted
// indices per attribute, and named feature stores. All state is built at
// construction (or on demand for the date index) and read-only afterward.
type Corpus struct {
	resolver *Resolver
	indexBy  string
	newStore driven.FeatureStoreFactory

	order    []string
	docs     map[string]domain.Document
	indices  map[string]map[domain.Key][]string
	features map[string]driven.FeatureStore
}

// NewCorpus builds a corpus from a document list. Every document must
// resolve to a distinct identity key: a document with no identity source
// fails with domain.ErrNoIdentity, and two documents resolving to the same
// key fail with domain.ErrDuplicateIdentity rather than silently
// overwriting one another.
func NewCorpus(docs []domain.Document, opts Options) (*Corpus, error) {
	if opts.Features == nil {
		opts.Features = func() driven.FeatureStore { return memory.NewFeatureSet() }
	}
	if opts.IndexFields == nil {
		opts.IndexFields = DefaultIndexFields
	}
	if opts.IndexFeatures == nil {
		opts.IndexFeatures = DefaultIndexFeatures
	}

	c := &Corpus{
		resolver: NewResolver(opts.IndexBy),
		indexBy:  opts.IndexBy,
		newStore: opts.Features,
		order:    make([]string, 0, len(docs)),
		docs:     make(map[string]domain.Document, len(docs)),
		indices:  make(map[string]map[domain.Key][]string),
		features: make(map[string]driven.FeatureStore),
	}

	for _, doc := range docs {
		id, err := c.resolver.Resolve(&doc)
		if err != nil {
			return nil, err
		}
		if _, exists := c.docs[id]; exists {
			return nil, fmt.Errorf("key %q: %w", id, domain.ErrDuplicateIdentity)
		}
		c.order = append(c.order, id)
		c.docs[id] = doc
	}
	logger.Debug("Corpus built: %d documents", len(c.order))

	for _, name := range opts.IndexFeatures {
		c.IndexFeature(name)
	}
	for _, name := range opts.IndexFields {
		c.Index(name)
	}

	return c, nil
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.order)
}

// Keys returns the document identity keys in insertion order.
func (c *Corpus) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Documents returns all documents in insertion order.
func (c *Corpus) Documents() []domain.Document {
	docs := make([]domain.Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	return docs
}

// Get returns the document held under an identity key.
func (c *Corpus) Get(id string) (domain.Document, bool) {
	doc, ok := c.docs[id]
	return doc, ok
}

// IndexedFields returns the names of the fields carrying an index.
func (c *Corpus) IndexedFields() []string {
	fields := make([]string, 0, len(c.indices))
	for name := range c.indices {
		fields = append(fields, name)
	}
	return fields
}

// FeatureSets returns the names of the held feature stores.
func (c *Corpus) FeatureSets() []string {
	names := make([]string, 0, len(c.features))
	for name := range c.features {
		names = append(names, name)
	}
	return names
}

// Features returns the named feature store.
func (c *Corpus) Features(name string) (driven.FeatureStore, bool) {
	store, ok := c.features[name]
	return store, ok
}

// IndexKeys returns the normalized keys present under a field's index.
func (c *Corpus) IndexKeys(field string) ([]domain.Key, error) {
	idx, ok := c.indices[field]
	if !ok {
		return nil, fmt.Errorf("field %q: %w", field, domain.ErrFieldNotIndexed)
	}
	keys := make([]domain.Key, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	return keys, nil
}

// HasIndexValue reports whether a field index holds the given key. Callers
// that want no-match selection semantics check here first.
func (c *Corpus) HasIndexValue(field string, value domain.Key) bool {
	idx, ok := c.indices[field]
	if !ok {
		return false
	}
	_, ok = idx[value]
	return ok
}

// Index builds (or rebuilds) the inverted index for a field. Each
// document's key is appended under every normalized value of its field, in
// document insertion order; documents lacking the field are absent.
func (c *Corpus) Index(field string) {
	idx := make(map[domain.Key][]string)
	for _, id := range c.order {
		doc := c.docs[id]
		v, ok := doc.Get(field)
		if !ok {
			continue
		}
		for _, key := range domain.NormalizeField(v) {
			idx[key] = append(idx[key], id)
		}
	}
	c.indices[field] = idx
	logger.Debug("Indexed field %q: %d distinct values", field, len(idx))
}

// IndexFeature wraps the raw values of a field into a named feature store.
// Documents lacking the field are simply absent from the store.
func (c *Corpus) IndexFeature(field string) {
	store := c.newStore()
	for _, id := range c.order {
		doc := c.docs[id]
		v, ok := doc.Get(field)
		if !ok {
			continue
		}
		store.Add(id, domain.FeatureFromValue(v))
	}
	c.features[field] = store
	logger.Debug("Featurized field %q: %d documents", field, store.Len())
}

// Select retrieves documents matching a selector. Field selections walk
// the inverted indices; a field with no index fails with
// domain.ErrFieldNotIndexed, and a value absent from an index fails with
// domain.ErrValueNotIndexed. Key and position selections resolve against
// the insertion-ordered document sequence.
func (c *Corpus) Select(sel domain.Selector) ([]domain.Document, error) {
	switch s := sel.(type) {
	case domain.FieldSelector:
		return c.selectField(s)
	case domain.KeySelector:
		return c.selectKeys(s)
	case domain.PositionSelector:
		return c.selectPositions(s)
	default:
		return nil, fmt.Errorf("selector %T: %w", sel, domain.ErrInvalidSelector)
	}
}

// At returns the document at a zero-based insertion position.
func (c *Corpus) At(position int) (domain.Document, error) {
	if position < 0 || position >= len(c.order) {
		return domain.Document{}, fmt.Errorf("position %d: %w", position, domain.ErrInvalidSelector)
	}
	return c.docs[c.order[position]], nil
}

func (c *Corpus) selectField(s domain.FieldSelector) ([]domain.Document, error) {
	idx, ok := c.indices[s.Name]
	if !ok {
		return nil, fmt.Errorf("field %q: %w", s.Name, domain.ErrFieldNotIndexed)
	}

	var docs []domain.Document
	for _, value := range s.Values {
		ids, ok := idx[value]
		if !ok {
			return nil, fmt.Errorf("field %q value %q: %w", s.Name, value.String(), domain.ErrValueNotIndexed)
		}
		for _, id := range ids {
			docs = append(docs, c.docs[id])
		}
	}
	return docs, nil
}

func (c *Corpus) selectKeys(s domain.KeySelector) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(s))
	for _, id := range s {
		doc, ok := c.docs[id]
		if !ok {
			return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (c *Corpus) selectPositions(s domain.PositionSelector) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(s))
	for _, position := range s {
		doc, err := c.At(position)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Subcorpus builds a new corpus from the documents matching a selector.
// Identity keys re-derive to their parent values, the parent's indices are
// rebuilt over the member set, and every named feature store is filtered
// by membership rather than recomputed, so feature statistics stay
// relative to the full original collection.
func (c *Corpus) Subcorpus(sel domain.Selector) (*Corpus, error) {
	selected, err := c.Select(sel)
	if err != nil {
		return nil, err
	}

	// A multi-value selection can return the same document more than
	// once; membership is what matters here.
	sub, err := NewCorpus(dedupe(selected, c.resolver), Options{
		IndexBy:       c.indexBy,
		IndexFields:   c.IndexedFields(),
		IndexFeatures: []string{}, // transferred below, never recomputed
		Features:      c.newStore,
	})
	if err != nil {
		return nil, err
	}

	for name, store := range c.features {
		filtered := c.newStore()
		for _, entry := range store.Items() {
			if _, member := sub.docs[entry.DocID]; member {
				filtered.Add(entry.DocID, entry.Feature)
			}
		}
		sub.features[name] = filtered
	}
	return sub, nil
}

// dedupe drops repeated documents from a selection, keeping first
// occurrences. Keys were already resolved once, so this cannot fail.
func dedupe(docs []domain.Document, r *Resolver) []domain.Document {
	seen := make(map[string]struct{}, len(docs))
	unique := docs[:0:0]
	for _, doc := range docs {
		id, err := r.Resolve(&doc)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, doc)
	}
	return unique
}
