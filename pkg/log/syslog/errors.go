package syslog

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSDName = errors.New("syslog: invalid structured data name")
	ErrTransport     = errors.New("syslog: transport")
	ErrBufferFull    = errors.New("syslog: buffer full")
	ErrSenderClosed  = errors.New("syslog: sender closed")
	ErrInvalidFormat = errors.New("syslog: invalid header format")
	ErrNoEndpoint    = errors.New("syslog: no endpoint configured")
)

// ValidationError is returned by the RFC 5424 encoder when a structured data ID or parameter name does not
// consist of printable US-ASCII characters without '=', ' ', ']' and '"'. It matches `ErrInvalidSDName`.
type ValidationError struct {
	// ID is the ID of the structured data element which failed validation
	ID string
	// Param is the offending parameter name. It is empty if the ID itself is invalid.
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: param name %q in element %q", ErrInvalidSDName, e.Param, e.ID)
	}
	return fmt.Sprintf("%s: element id %q", ErrInvalidSDName, e.ID)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSDName
}

// TransportError is returned by all senders when sending a message fails. It matches `ErrTransport` and unwraps
// to the underlying network error.
type TransportError struct {
	Network string
	Addr    string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrTransport, e.Network, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

func transportError(network, addr string, err error) error {
	return &TransportError{Network: network, Addr: addr, Err: err}
}
