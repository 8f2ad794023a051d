// Package models defines the data shapes shared across the catalog
// feature: the parsed ProductVariant the validator screens and the
// NormalizedProduct the reconciliation engine applies.
package models
