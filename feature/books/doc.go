// Package books models the accounting side of the sync: inventory items,
// item categories, and the three fixed ledger accounts (income, expense,
// asset) new items are wired to.
//
// The Store interface is the capability surface the reconciliation engine
// consumes, one method per remote operation, so tests substitute the
// testify mock in books/mocks and deployments pick an implementation
// (gormstore runs against the company database).
//
// Two wrappers compose over any Store:
//   - CachedStore: TTL cache with singleflight stampede protection over
//     category and ledger account lookups.
//   - DryRunStore: counts writes instead of performing them.
package books
