package syslog

import (
	"fmt"
	"strings"
	"time"
)

// Message holds all inputs of the wire encoders. Empty optional fields are sent as NIL value in RFC 5424.
type Message struct {
	Priority  Priority
	Timestamp time.Time
	Hostname  string
	AppName   string
	ProcID    string
	MsgID     string
	// StructuredData is ignored by the RFC 3164 encoder
	StructuredData []SDElement
	Text           string
}

// Encoder encodes a message into its wire format
type Encoder interface {
	Encode(m *Message) ([]byte, error)
}

// Format selects the syslog header format
type Format int

const (
	FormatRFC5424 Format = iota
	FormatRFC3164
)

func (f Format) String() string {
	switch f {
	case FormatRFC5424:
		return "rfc5424"
	case FormatRFC3164:
		return "rfc3164"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Encoder returns the wire encoder for the format
func (f Format) Encoder() (Encoder, error) {
	switch f {
	case FormatRFC5424:
		return RFC5424Encoder{}, nil
	case FormatRFC3164:
		return RFC3164Encoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
}

// Set implements flag.Value
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "rfc5424", "5424":
		*f = FormatRFC5424
	case "rfc3164", "3164":
		*f = FormatRFC3164
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, s)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Format) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
