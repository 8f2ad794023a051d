// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and .env files, with defaults declared on the partial config structs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: company database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the run-archive bucket
//   - Log: logging level and format
//   - Storefront: storefront variant API (shop domain, token, page size)
//   - Books: accounting store settings (lookup cache TTL)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storefront.Domain)
package config
