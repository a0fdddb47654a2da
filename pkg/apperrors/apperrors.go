// Package apperrors provides chainable application errors that carry an
// HTTP status code. A derived error matches its ancestors with errors.Is.
package apperrors

import (
	"errors"
	"strings"
)

// Error is an application error that can be specialised with Msg, wrapped
// around underlying causes with Err, and mapped to an HTTP status.
type Error interface {
	error
	// Msg derives a new error with the given message whose parent is this error.
	Msg(msg string) Error
	// MsgErr derives a new error with the given message and causes.
	MsgErr(msg string, err ...error) Error
	// Err keeps this error's message and attaches the given causes.
	Err(err ...error) Error
	// SetStatusCode returns a copy of the error with the given status code.
	SetStatusCode(code int) Error
	// SetExpandError returns a copy that includes causes in ErrorAll.
	SetExpandError(expand bool) Error
	// StatusCode returns the status code of the error or its nearest ancestor.
	StatusCode() int
	// ErrorAll returns the message, followed by the causes if expansion is on.
	ErrorAll() string
	Unwrap() []error
}

type appError struct {
	msg        string
	parent     *appError
	causes     []error
	statusCode int
	expand     bool
}

var _ Error = (*appError)(nil)

// New creates a root error.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	return append(errs, e.causes...)
}

func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		parent:     e,
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	d := e.Msg(msg).(*appError)
	d.causes = nonNil(err)
	return d
}

func (e *appError) Err(err ...error) Error {
	d := e.Msg(e.msg).(*appError)
	d.causes = nonNil(err)
	return d
}

func (e *appError) SetStatusCode(code int) Error {
	c := *e
	c.statusCode = code
	return &c
}

func (e *appError) SetExpandError(expand bool) Error {
	c := *e
	c.expand = expand
	return &c
}

func (e *appError) StatusCode() int {
	return e.statusCode
}

func (e *appError) ErrorAll() string {
	if !e.expand || len(e.causes) == 0 {
		return e.msg
	}
	var sb strings.Builder
	sb.WriteString(e.msg)
	for _, c := range e.causes {
		sb.WriteString(": ")
		sb.WriteString(c.Error())
	}
	return sb.String()
}

func nonNil(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

// As returns err as an Error if anything in its chain is one.
func As(err error) (Error, bool) {
	var ae Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
