// Package rewriting renders a voice signature into rewrite instructions and
// executes the constrained rewrite against the generative model.
package rewriting

import "fmt"

// RewriteError indicates the rewrite could not be completed: the model call
// failed or timed out, or the response was empty after trimming. Both surface
// as the same failure kind; callers retry the whole operation.
type RewriteError struct {
	Message string
	Cause   error
}

func (e *RewriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rewrite failed: %s", e.Message)
}

func (e *RewriteError) Unwrap() error {
	return e.Cause
}
