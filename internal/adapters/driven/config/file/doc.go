// Package file provides a TOML-backed config store holding per-user
// defaults for corpus construction: the identity field, eagerly indexed
// fields, and featurized fields.
package file
