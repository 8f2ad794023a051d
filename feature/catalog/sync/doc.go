// Package sync holds the product reconciliation engine: given a normalized
// product and lookup/mutation capabilities over the accounting store, it
// decides create vs. update vs. no-op, resolving category and ledger
// account references along the way.
//
// The engine's trickiest behavior is the name-collision guard. Item names
// are unique in the accounting store, so an item already holding the
// incoming product's name under a different SKU must be moved aside first:
// it is renamed to "_" + its own SKU and deactivated (never deleted),
// freeing the name. That side effect is applied unconditionally before the
// rest of the pass, which is why processing is strictly sequential and
// non-transactional: a later failure leaves the rename in place.
package sync
