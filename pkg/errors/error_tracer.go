package errors

import "github.com/pkg/errors"

// StackTracer is satisfied by errors carrying a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer attaches a code and message to an underlying error and makes
// sure a stack trace is captured exactly once along the chain.
type ErrorTracer struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewTracer creates a tracer with a free-form message and no code.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// NewCode creates a tracer for a known error code. The code doubles as the
// message so log entries stay greppable by code.
func NewCode(code ErrorCode) *ErrorTracer {
	return &ErrorTracer{
		Code:    code,
		Message: string(code),
	}
}

// TracerFromError wraps an existing error, capturing a stack trace if the
// error does not already carry one.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches the underlying error, adding a stack trace when it has none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	if _, ok := err.(StackTracer); ok {
		e.Err = err
		return e
	}
	e.Err = errors.WithStack(err)
	return e
}

// StackTrace exposes the underlying error's stack trace when present.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if tracer, ok := e.Unwrap().(StackTracer); ok {
		return tracer.StackTrace()
	}
	return nil
}
