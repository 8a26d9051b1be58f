// Package errors provides structured error reporting for the ytplayer
// component. Nothing reported here is fatal: malformed input from the
// embedded page or the native layer is logged and absorbed, never
// propagated as a panic to the host application.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates an event or message parsing failure.
	KindParsing
	// KindResource indicates a missing or unreadable bundled resource.
	KindResource
	// KindSerialize indicates a configuration serialization failure.
	KindSerialize
	// KindScript indicates a JavaScript evaluation failure.
	KindScript
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindResource:
		return "resource"
	case KindSerialize:
		return "serialize"
	case KindScript:
		return "script"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PlayerError represents a structured error in the ytplayer component.
type PlayerError struct {
	// Op is the operation that failed (e.g., "youtube.loadPlayer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PlayerError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse data received from the native
// layer or the embedded page.
type ParseError struct {
	// Channel is the platform channel that received the data.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the component.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PlayerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
