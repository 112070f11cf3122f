package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrTagInvalid marks failures caused by the delivery itself, e.g. a
	// signature mismatch or a malformed payload. Surfaced as 403.
	ErrTagInvalid = goerr.NewTag("invalid")

	// ErrTagDownstream marks failures of the build-execution service.
	// Surfaced as 500.
	ErrTagDownstream = goerr.NewTag("error")
)

// ErrorClass is the externally visible kind of a handler failure
type ErrorClass string

const (
	ErrorClassInvalid    ErrorClass = "invalid"
	ErrorClassDownstream ErrorClass = "error"
)

// Prefix returns the message prefix gateways match on ("invalid: ", "error: ")
func (c ErrorClass) Prefix() string {
	return string(c) + ": "
}

// Classify returns the class of err. Errors without the invalid tag are
// treated as downstream failures.
func Classify(err error) ErrorClass {
	if goerr.HasTag(err, ErrTagInvalid) {
		return ErrorClassInvalid
	}
	return ErrorClassDownstream
}

// Message returns the error message guaranteed to start with its class prefix
func Message(err error) string {
	class := Classify(err)
	msg := err.Error()
	if strings.HasPrefix(msg, class.Prefix()) {
		return msg
	}
	return class.Prefix() + msg
}
