package storefront

// Config holds configuration for the storefront variant API.
type Config struct {
	// Domain is the shop domain (e.g., "example.myshopify.com").
	Domain string `mapstructure:"domain" default:""`
	// AccessToken is the admin API access token.
	AccessToken string `mapstructure:"access_token" default:""`
	// ApiVersion is the admin API version to pin requests to.
	ApiVersion string `mapstructure:"api_version" default:"2024-07"`
	// PageSize is the number of variants requested per page.
	PageSize int `mapstructure:"page_size" default:"50"`
	// TimeoutSeconds is the HTTP request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
