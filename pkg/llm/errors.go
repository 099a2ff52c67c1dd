package llm

import "errors"

// Providers decide once, at the boundary, whether a failure is worth
// retrying (timeouts, rate limits, 5xx, malformed output) or fatal
// (bad credentials, unknown model, invalid request). Callers use
// IsRetryable / IsFatal instead of matching on error strings.

type classifiedError struct {
	err       error
	retryable bool
}

func (e *classifiedError) Error() string {
	return e.err.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.err
}

// Retryable marks err as a transient failure.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &classifiedError{err: err, retryable: true}
}

// Fatal marks err as non-retryable.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &classifiedError{err: err, retryable: false}
}

// IsFatal reports whether err was explicitly marked non-retryable.
func IsFatal(err error) bool {
	var ce *classifiedError
	if errors.As(err, &ce) {
		return !ce.retryable
	}
	return false
}

// IsRetryable reports whether err may be retried. Unclassified errors
// (plain transport failures, context deadlines) default to retryable:
// the processor's attempt budget bounds the damage either way.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !IsFatal(err)
}
