/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphson

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"
)

// Op describes an operation, usually as the package and method, such as "graphson.Mapper.Marshal".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther             ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindUnregisteredType                 // A value to encode has no serializer while tags are required.
	ErrKindTypeMismatch                     // A decoded value is incompatible with the requested type.
	ErrKindMalformedEnvelope                // A type envelope or a tagged payload has an unexpected structure.
	ErrKindUnknownTypeTag                   // A decoded tag is not registered. Only reported through diagnostics.
	ErrKindVersionConstraint                // The requested version cannot be combined with the typing policy.
	ErrKindRegistration                     // Conflicting type registrations.
	ErrKindConfiguration                    // Invalid Mapper configuration.
	ErrKindSyntax                           // The input is not well-formed JSON.
	ErrKindIO                               // Reading input or writing output failed.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindUnregisteredType:
		return "unregistered type"
	case ErrKindTypeMismatch:
		return "type mismatch"
	case ErrKindMalformedEnvelope:
		return "malformed envelope"
	case ErrKindUnknownTypeTag:
		return "unknown type tag"
	case ErrKindVersionConstraint:
		return "version constraint violation"
	case ErrKindRegistration:
		return "registration error"
	case ErrKindConfiguration:
		return "configuration error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindIO:
		return "I/O error"
	}
	return "unknown error kind"
}

// An Error describes a failure of a Mapper operation. Op and Kind are shown when printing the error
// value which makes it helpful for programmers; Tag and Type identify the wire type and the Go type
// involved, if any.
//
// Errors can wrap other errors. Information that is not given to NewError (kind, tag and type) is
// pulled from the wrapped Error.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Tag is the wire type tag involved in the error
	Tag Tag

	// Type is the Go type involved in the error
	Type reflect.Type

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Arguments are sorted out by their types: an Op, an
// ErrKind, a Tag, a reflect.Type and an underlying error. Inspired by the design of upspin.io/errors
// [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case Tag:
			e.Tag = arg

		case reflect.Type:
			e.Type = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		case error:
			e.Err = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	if prev, ok := e.Err.(*Error); ok {
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
		if len(e.Tag) == 0 {
			e.Tag = prev.Tag
		}
		if e.Type == nil {
			e.Type = prev.Type
		}
	}

	return e
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours, suppress duplications so the message won't contain
	// the same kind, tag or type twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if len(e.Tag) > 0 {
		if nextErr == nil || nextErr.Tag != e.Tag {
			pad(" ")
			fmt.Fprintf(b, "(tag %q)", string(e.Tag))
		}
	}

	if e.Type != nil {
		if nextErr == nil || nextErr.Type != e.Type {
			pad(" ")
			fmt.Fprintf(b, "(type %s)", e.Type)
		}
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// IsKind reports whether err is an Error (or wraps one) of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
