// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is an error with a status code and an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// With constructs an error from the given values.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat constructs an error from the given format and arguments. If the
// format wraps an error with %w, the wrapped error is recorded as the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Wrap wraps the given error with the status. Wrap returns nil if the error
// is nil, and returns the error unchanged if it is already an *Error and the
// receiver would not add a known status.
func (s Status) Wrap(err error) error {
	if err == nil {
		// The return type must be `error` - otherwise this return statement
		// can cause strange errors
		return nil
	}
	if !s.IsKnownError() {
		if _, ok := err.(*Error); ok {
			return err
		}
	}
	return &Error{Code: s, Cause: err}
}

// WithCauseAndFormat constructs an error with an explicit cause.
func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	if e.Message == "" {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

func (e *Error) Format(f fmt.State, verb rune) {
	if f.Flag('+') && e.Cause != nil {
		fmt.Fprintf(f, "%s: %+v", e.Error(), e.Cause)
		return
	}
	f.Write([]byte(e.Error()))
}

// Is returns true if the target is a Status or *Error with the same code.
func (e *Error) Is(target error) bool {
	switch f := target.(type) {
	case *Error:
		if e.Code == f.Code {
			return true
		}
	case Status:
		if e.Code == f {
			return true
		}
	}
	return false
}

// Is calls [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As calls [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Code returns the status code of the error, or UnknownError if the error
// carries no status.
func Code(err error) Status {
	for ; err != nil; err = errors.Unwrap(err) {
		switch e := err.(type) {
		case *Error:
			if e.Code.IsKnownError() {
				return e.Code
			}
		case Status:
			return e
		}
	}
	return UnknownError
}
