package syslog

import (
	"context"
	"fmt"
	"strings"
)

// Sender transmits one encoded syslog message. Implementations must be safe for concurrent use. Every call is an
// independent attempt, there are no retries. A failing send returns a `*TransportError`.
//
//go:generate mockgen -destination ../../../test/mock/mocksyslog/sender_mock.go -package mocksyslog go.githedgehog.com/syslogger/pkg/log/syslog Sender
type Sender interface {
	Send(ctx context.Context, msg []byte) error
}

// SenderFunc adapts an ordinary function to a Sender
type SenderFunc func(ctx context.Context, msg []byte) error

var _ Sender = SenderFunc(nil)

// Send implements Sender
func (f SenderFunc) Send(ctx context.Context, msg []byte) error {
	return f(ctx, msg)
}

// Transport selects one of the built-in senders
type Transport int

const (
	TransportUDP Transport = iota
	TransportUnix
)

func (t Transport) String() string {
	switch t {
	case TransportUDP:
		return "udp"
	case TransportUnix:
		return "unix"
	default:
		return fmt.Sprintf("Transport(%d)", int(t))
	}
}

// Set implements flag.Value
func (t *Transport) Set(s string) error {
	switch strings.ToLower(s) {
	case "udp":
		*t = TransportUDP
	case "unix", "local":
		*t = TransportUnix
	default:
		return fmt.Errorf("invalid syslog transport: %s", s)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Transport) UnmarshalText(text []byte) error {
	return t.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler
func (t Transport) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
