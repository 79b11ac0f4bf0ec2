package llm

import "fmt"

// NotConfiguredError indicates the provider credential is absent or still set
// to a placeholder value.
type NotConfiguredError struct {
	Provider string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s provider is not configured", e.Provider)
}

// HTTPError indicates the provider returned a non-2xx status.
type HTTPError struct {
	Provider string
	Status   int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s API error: HTTP %d", e.Provider, e.Status)
}

// ProviderError wraps network failures, timeouts, and malformed responses.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
