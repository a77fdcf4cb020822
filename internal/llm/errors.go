package llm

import "fmt"

// ServiceError reports a failed model API call: transport errors, timeouts,
// and non-success statuses all surface through it with a human-readable cause.
type ServiceError struct {
	Op     string // "completion", "completion stream", "image generation"
	Status int    // HTTP status, 0 for transport errors
	Cause  string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("model %s failed with status %d: %s", e.Op, e.Status, e.Cause)
	}
	return fmt.Sprintf("model %s failed: %s", e.Op, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Err }
