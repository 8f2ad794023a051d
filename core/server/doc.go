// Package server holds the configuration for the HTTP surface of the
// catalog-sync service (listen port and the API key protecting it).
package server
