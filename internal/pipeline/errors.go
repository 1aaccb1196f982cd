// Package pipeline orchestrates the voice-profile build and constrained
// rewrite operations over the analysis, profiling, and rewriting components.
package pipeline

import "fmt"

// InsufficientSamplesError indicates too few samples to build a profile.
type InsufficientSamplesError struct {
	Found    int
	Required int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("at least %d samples are required (found %d)", e.Required, e.Found)
}

// InsufficientWordCountError indicates too few total words to build a profile.
type InsufficientWordCountError struct {
	Found    int
	Required int
}

func (e *InsufficientWordCountError) Error() string {
	return fmt.Sprintf("total word count must be at least %d (found %d)", e.Required, e.Found)
}

// SampleTooShortError indicates a submitted sample is under the word minimum.
type SampleTooShortError struct {
	WordCount int
	Required  int
}

func (e *SampleTooShortError) Error() string {
	return fmt.Sprintf("sample must be at least %d words (found %d)", e.Required, e.WordCount)
}

// SampleLimitError indicates the profile already holds the maximum samples.
type SampleLimitError struct {
	Limit int
}

func (e *SampleLimitError) Error() string {
	return fmt.Sprintf("maximum %d samples allowed", e.Limit)
}

// TextTooLongError indicates rewrite input over the token budget.
type TextTooLongError struct {
	EstimatedTokens int
	MaxTokens       int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("text exceeds maximum length (~%d tokens, estimated %d)", e.MaxTokens, e.EstimatedTokens)
}

// ProfileNotFoundError indicates the user has no voice profile record.
type ProfileNotFoundError struct{}

func (e *ProfileNotFoundError) Error() string {
	return "voice profile not found"
}

// ProfileNotReadyError indicates the profile exists but has not been built.
type ProfileNotReadyError struct{}

func (e *ProfileNotReadyError) Error() string {
	return "voice profile not built; submit samples and build the profile first"
}
