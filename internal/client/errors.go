package client

import (
	"fmt"
	"strings"
)

// NotFoundError means the service no longer knows the window, usually
// because it closed between focus lookup and dispatch
type NotFoundError struct {
	WindowID uint32
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("window %d not found", e.WindowID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransportError means the call never produced a usable reply: the bus was
// unreachable, the call timed out, or the service raised an error
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("window service %s failed: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify maps a raw call failure onto the client error taxonomy
func classify(method string, windowID uint32, err error) error {
	if windowID != 0 && isNotFound(err) {
		return &NotFoundError{WindowID: windowID, Err: err}
	}
	return &TransportError{Method: method, Err: err}
}

// The Window Calls extension answers unknown ids with a JS Error('Not found').
// Only the remote error text counts; local failures such as a missing
// dbus-launch binary are transport errors even if they mention "not found".
func isNotFound(err error) bool {
	msg, ok := busErrorMessage(err)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(msg), "not found")
}
