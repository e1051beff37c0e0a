package apiclient

import "time"

// Config holds backend API client configuration.
type Config struct {
	// BaseURL is the root of the backend REST API, e.g. "https://api.kibraconnect.app/".
	BaseURL string `env:"API_BASE_URL,required"`
	// Timeout bounds each request end to end. The transport's own timeout is
	// the only one the core relies on; there is no per-operation deadline.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}
