package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoIdentity indicates a document carries no usable identity
	// source: no preferred field value, and no title/author pair to hash.
	// The document cannot be admitted to a corpus.
	ErrNoIdentity = errors.New("no usable identity source")

	// ErrDuplicateIdentity indicates two distinct documents resolved to
	// the same identity key. Construction rejects the corpus rather than
	// letting the later document overwrite the earlier one.
	ErrDuplicateIdentity = errors.New("duplicate document identity")

	// ErrFieldNotIndexed indicates a selection referenced a field with no
	// index. Selection never treats this as an empty result.
	ErrFieldNotIndexed = errors.New("field not indexed")

	// ErrValueNotIndexed indicates a selection referenced a value absent
	// from an existing index. Callers wanting no-match semantics must
	// check membership first.
	ErrValueNotIndexed = errors.New("value not indexed")

	// ErrNoDateIndex indicates slicing was requested but no document
	// carries an integer date field.
	ErrNoDateIndex = errors.New("no dated documents")

	// ErrInvalidSelector indicates a selector shape or position the
	// corpus cannot resolve.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
