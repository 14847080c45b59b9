package openrouter

import "time"

const (
	// DefaultModel lets OpenRouter route to an available model.
	DefaultModel = "openrouter/auto"

	// DefaultAPIURL is the OpenRouter API base URL.
	DefaultAPIURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)
