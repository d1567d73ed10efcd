package agent

import "fmt"

// AuthorizationError aborts a run immediately. Every other tool failure is
// recorded in the run result and execution continues.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Message)
}
