// File: internal/services/reply/errors.go
package reply

import "fmt"

type ErrorType string

const (
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeNetwork  ErrorType = "NETWORK"
	ErrTypeProvider ErrorType = "PROVIDER"
)

type ProviderError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reply %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("reply %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

func NewProviderError(operation, msg string, cause error) *ProviderError {
	return &ProviderError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}
