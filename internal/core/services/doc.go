// Package services implements the corpus engine: identity resolution,
// inverted indexing, selection, sub-corpus construction, time slicing,
// and feature aggregation. Services orchestrate calls to driven ports
// (the feature store) and own the insertion-ordered document state.
//
// Corpora are built once and read-only afterward; no locking is needed
// because nothing mutates them concurrently.
package services
