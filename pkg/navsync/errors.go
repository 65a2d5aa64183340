package navsync

import "fmt"

// Category classifies a navigation failure.
type Category string

const (
	// CategoryNavigation covers unresolved targets and rejected
	// transitions surfaced by the engine.
	CategoryNavigation Category = "navigation"

	// CategoryRefresh covers failures of a handler's refresh
	// capability. These are never returned from navigation calls;
	// the stale state is retained and the failure is logged.
	CategoryRefresh Category = "refresh"
)

// NavError wraps a failure with its category. The cause is reachable
// through errors.Is/As.
type NavError struct {
	Category Category
	Target   string
	Err      error
}

// Error implements the error interface.
func (e *NavError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %q: %v", e.Category, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *NavError) Unwrap() error {
	return e.Err
}
