package pipeline

import "fmt"

// NoProviderError indicates an operation with no static fallback tier could
// not be served because every eligible provider failed or was unconfigured.
type NoProviderError struct {
	Operation string
	Cause     error
}

func (e *NoProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: no AI provider available: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: no AI provider available", e.Operation)
}

func (e *NoProviderError) Unwrap() error {
	return e.Cause
}
