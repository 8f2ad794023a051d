// Package storage provides the object-storage client used to archive sync
// runs (raw variant snapshots and validation reports) for audit.
//
// The Client interface wraps the Minio SDK with only the operations the
// application needs, so tests can substitute the testify mock in
// storage/mocks. NewClient builds a client with strict transport timeouts;
// all operations are additionally bounded by their context.
package storage
