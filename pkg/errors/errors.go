package errors

import "fmt"

// ErrNotFound indicates a resource was not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates a failed authentication attempt
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrProviderUnavailable indicates the tracking provider rejected or failed
// a filter request. The working set is left unchanged when this is returned.
type ErrProviderUnavailable struct {
	Status  int
	Message string
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("tracking provider unavailable: status %d: %s", e.Status, e.Message)
}
