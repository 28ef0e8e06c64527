package insight

import "fmt"

// Pipeline error taxonomy. Embedding, retrieval, and synthesis failures are
// fatal to the request. Normalization, classification, and expansion recover
// locally with documented defaults and never surface here.

// ValidationError rejects a request before any external call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// EmbeddingError is fatal: no retrieval is possible without a query vector.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding stage failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// RetrievalError is fatal: there is no evidence to reason over.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval stage failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// SynthesisError is fatal: there is no fallback answer for the final call.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis stage failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }
