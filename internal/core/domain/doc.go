// Package domain contains the core types of the corpus engine: documents
// with open, heterogeneously shaped attribute sets, the normalization of
// those attributes into comparable index keys, per-document features, and
// the selector forms understood by corpus queries.
//
// Domain types carry no I/O and no external dependencies. Readers produce
// them, services index and query them.
package domain
