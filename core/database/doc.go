// Package database manages the connection to the company database that
// backs the accounting store.
//
// It supports two drivers:
//   - mysql: production deployments, with connection pooling and explicit
//     connect/read/write timeouts encoded in the DSN.
//   - sqlite: local runs and tests (":memory:" databases).
//
// The package also provides a lightweight schema inspector used to verify
// that the inventory item table carries the columns the reconciliation
// engine writes before a sync run mutates anything.
package database
