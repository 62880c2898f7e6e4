package syslog

import "time"

// Event is a single log event as it is submitted by the host logging framework. It is only read by this package.
type Event struct {
	// ID is the numeric event ID. It is sent as MSGID in RFC 5424 messages.
	ID int
	// Category is the name of the logger which emitted the event
	Category string
	Level    Level
	// Payload is opaque and only passed through to structured data providers
	Payload any
	// Err is an optional error which is attached to the event
	Err error
	// Time is the time of the event. If it is the zero time, the logger clock is used.
	Time time.Time
}

// Formatter renders the message text of an event. An empty message means there is nothing to log.
type Formatter func(payload any, err error) (string, error)

// Text returns a formatter which always returns `msg`
func Text(msg string) Formatter {
	return func(any, error) (string, error) {
		return msg, nil
	}
}
