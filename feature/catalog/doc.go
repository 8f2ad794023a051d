// Package catalog wires the full pipeline together: fetch the variant
// listing from the storefront, screen it, and converge the accounting
// store. The Service exposes the three operations (validate, sync, list
// archived runs) to both the CLI commands and the HTTP feature.
//
// Subpackages hold the stages: models (shared shapes), naming (derived
// display names), parse (flattening and normalization), validate (the
// batch screen), and sync (the reconciliation engine).
package catalog
