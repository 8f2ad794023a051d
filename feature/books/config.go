package books

// Config holds configuration for the accounting store.
type Config struct {
	// CacheTTLSeconds is the time-to-live for cached category and ledger
	// account lookups. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
