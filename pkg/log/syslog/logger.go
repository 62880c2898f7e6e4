// Copyright 2023 Hedgehog
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syslog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Settings is the configuration of a `*Logger`. It is read once by `New`.
type Settings struct {
	// Facility is one of the LOG_KERN..LOG_LOCAL7 constants
	Facility Priority

	// Format selects RFC 5424 (default) or RFC 3164 messages
	Format Format

	// Transport selects the built-in sender. It is ignored if `Sender` is set.
	Transport Transport

	// Server and Port are the endpoint of the UDP transport. A port in Server wins over Port, and a zero Port means 514.
	Server string
	Port   int

	// Path is the socket path of the Unix domain socket transport
	Path string

	// SenderOptions are passed to the built-in sender
	SenderOptions []SenderOption

	// Sender replaces the built-in transport selection completely if it is set
	Sender Sender

	// StructuredData is sent with every RFC 5424 message. All providers can override elements of it by ID.
	StructuredData []SDElement

	// Providers are called in order for every RFC 5424 message. Later providers win over earlier ones.
	Providers []Provider

	// UseUTC sends all timestamps in UTC instead of local time
	UseUTC bool

	// AppName defaults to the name of the running binary
	AppName string

	// Hostname defaults to the host name of the system
	Hostname string

	// MinLevel is the lowest level which gets sent
	MinLevel Level
}

// Validate checks the settings for errors which would otherwise only show up when logging
func (s *Settings) Validate() error {
	if s.Facility&severityMask != 0 || s.Facility < LOG_KERN || s.Facility > LOG_LOCAL7 {
		return fmt.Errorf("invalid syslog facility: %d", int(s.Facility))
	}
	if _, err := s.Format.Encoder(); err != nil {
		return err
	}
	for i := range s.StructuredData {
		if err := s.StructuredData[i].Validate(); err != nil {
			return err
		}
	}
	if s.Sender != nil {
		return nil
	}
	switch s.Transport {
	case TransportUDP:
		if s.Server == "" {
			return fmt.Errorf("%w: udp transport needs a server", ErrNoEndpoint)
		}
	case TransportUnix:
		if s.Path == "" {
			return fmt.Errorf("%w: unix transport needs a path", ErrNoEndpoint)
		}
	default:
		return fmt.Errorf("invalid syslog transport: %s", s.Transport)
	}
	return nil
}

// NewSender returns the sender for the settings: either `Sender` if it is set, or one of the built-in senders
func (s *Settings) NewSender() Sender {
	if s.Sender != nil {
		return s.Sender
	}
	if s.Transport == TransportUnix {
		return NewUnixSender(s.Path, s.SenderOptions...)
	}
	return NewUDPSender(s.Server, s.Port, s.SenderOptions...)
}

// processID is the PID of the running process. It is looked up once and is 0 if it cannot be determined.
var processID = sync.OnceValue(func() int {
	pid := os.Getpid()
	if pid < 0 {
		return 0
	}
	return pid
})

// Logger turns log events into syslog messages and sends them. It holds no mutable state and is safe for
// concurrent use.
type Logger struct {
	facility  Priority
	minLevel  Level
	format    Format
	encoder   Encoder
	sender    Sender
	providers []Provider
	useUTC    bool
	hostname  string
	appName   string
	now       func() time.Time
}

// New creates a logger from `settings`
func New(settings *Settings) (*Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	enc, err := settings.Format.Encoder()
	if err != nil {
		return nil, err
	}

	// hostname will be NIL if we cannot resolve our hostname
	hostname := settings.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}

	// app will be set to the name of the calling binary
	// NOTE: as this is not resolving symlinks, this is perfect to do justice
	// even for busybox-style executables
	app := settings.AppName
	if app == "" {
		app = filepath.Base(os.Args[0])
	}

	// the static structured data always goes first so that every provider can override it
	providers := make([]Provider, 0, len(settings.Providers)+1)
	if len(settings.StructuredData) > 0 {
		providers = append(providers, StaticProvider(settings.StructuredData))
	}
	providers = append(providers, settings.Providers...)

	return &Logger{
		facility:  settings.Facility,
		minLevel:  settings.MinLevel,
		format:    settings.Format,
		encoder:   enc,
		sender:    settings.NewSender(),
		providers: providers,
		useUTC:    settings.UseUTC,
		hostname:  hostname,
		appName:   app,
		now:       time.Now,
	}, nil
}

// Enabled reports if events at `level` are being sent
func (l *Logger) Enabled(level Level) bool {
	return level != LevelNone && level >= l.minLevel
}

// Log formats, encodes and sends `ev` on the calling goroutine. Nothing is sent if the level is disabled or if
// the formatted message is empty. Errors from the formatter, the encoder and the sender are returned unchanged.
func (l *Logger) Log(ctx context.Context, ev Event, format Formatter) error {
	if !l.Enabled(ev.Level) || format == nil {
		return nil
	}
	text, err := format(ev.Payload, ev.Err)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	m := &Message{
		Priority:  MakePriority(l.facility, Severity(ev.Level)),
		Timestamp: l.timestamp(ev.Time),
		Hostname:  l.hostname,
		AppName:   l.appName,
		Text:      text,
	}
	if l.format == FormatRFC5424 {
		if pid := processID(); pid > 0 {
			m.ProcID = strconv.Itoa(pid)
		}
		m.MsgID = strconv.Itoa(ev.ID)
		m.StructuredData = Compose(newProviderContext(ev), l.providers...)
	}

	b, err := l.encoder.Encode(m)
	if err != nil {
		return err
	}
	return l.sender.Send(ctx, b)
}

// Print logs `msg` at `level` in the "default" category
func (l *Logger) Print(ctx context.Context, level Level, msg string) error {
	return l.Log(ctx, Event{Category: "default", Level: level}, Text(msg))
}

// Logf logs a message formatted like fmt.Sprintf at `level` in the "default" category
func (l *Logger) Logf(ctx context.Context, level Level, template string, args ...interface{}) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.Print(ctx, level, fmt.Sprintf(template, args...))
}

func (l *Logger) timestamp(t time.Time) time.Time {
	if t.IsZero() {
		t = l.now()
	}
	if l.useUTC {
		return t.UTC()
	}
	return t.Local()
}
