// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
// # Interfaces
//
//   - FeatureStore: named per-document feature collections with counting
//     and ranking. The default adapter is the in-memory FeatureSet.
//   - Reader: parses a bibliographic source into domain documents.
//   - ConfigStore: default corpus settings.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or reader package
package driven
