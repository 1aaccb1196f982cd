// Package profiling builds the qualitative half of a voice signature by
// delegating to a generative model, and merges it with structural metrics
// into the canonical signature.
package profiling

import "fmt"

// StyleAnalysisError indicates the style profiler could not produce a valid
// qualitative profile: the model call failed or timed out, the response was
// empty or unparseable, or an enumerated field was outside its domain. All of
// these surface as the same failure kind; callers retry the whole build.
type StyleAnalysisError struct {
	Message string
	Cause   error
}

func (e *StyleAnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("style analysis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("style analysis failed: %s", e.Message)
}

func (e *StyleAnalysisError) Unwrap() error {
	return e.Cause
}
