package syslog_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.githedgehog.com/syslogger/pkg/log/syslog"
	"go.githedgehog.com/syslogger/test/mock/mocksyslog"
)

var (
	testCtx  = context.Background()
	testTime = time.Date(2024, time.January, 5, 3, 4, 5, 0, time.UTC)
)

func discardSender() syslog.Sender {
	return syslog.SenderFunc(func(context.Context, []byte) error { return nil })
}

func newTestLogger(t *testing.T, format syslog.Format, sender syslog.Sender, providers ...syslog.Provider) *syslog.Logger {
	t.Helper()
	l, err := syslog.New(&syslog.Settings{
		Facility:  syslog.LOG_LOCAL0,
		Format:    format,
		Hostname:  "h",
		AppName:   "svc",
		UseUTC:    true,
		MinLevel:  syslog.LevelTrace,
		Sender:    sender,
		Providers: providers,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l
}

func TestLogger_Log(t *testing.T) {
	formatErr := errors.New("format error")
	sendErr := errors.New("send error")
	pid := os.Getpid()
	tests := []struct {
		name        string
		format      syslog.Format
		providers   []syslog.Provider
		event       syslog.Event
		formatter   syslog.Formatter
		pre         func(t *testing.T, sender *mocksyslog.MockSender)
		wantErr     bool
		wantErrToBe error
	}{
		{
			name:      "rfc3164",
			format:    syslog.FormatRFC3164,
			event:     syslog.Event{Level: syslog.LevelInformation, Time: testTime},
			formatter: syslog.Text("disk ok"),
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Eq([]byte("<134>Jan 05 03:04:05 h svc disk ok"))).Times(1)
			},
		},
		{
			name:      "rfc5424",
			format:    syslog.FormatRFC5424,
			event:     syslog.Event{ID: 42, Level: syslog.LevelError, Time: testTime},
			formatter: syslog.Text("disk failed"),
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				want := fmt.Sprintf("<131>1 2024-01-05T03:04:05.000000Z h svc %d 42 - disk failed", pid)
				sender.EXPECT().Send(gomock.Any(), gomock.Eq([]byte(want))).Times(1)
			},
		},
		{
			name:   "rfc5424 with structured data",
			format: syslog.FormatRFC5424,
			providers: []syslog.Provider{
				syslog.StaticProvider{elem("origin", "software", "syslogger")},
				nil,
				&syslog.FieldsProvider{ID: "fields@32473"},
			},
			event:     syslog.Event{Level: syslog.LevelWarning, Time: testTime, Payload: map[string]any{"path": `C:\`}},
			formatter: syslog.Text("m"),
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				want := fmt.Sprintf(`<132>1 2024-01-05T03:04:05.000000Z h svc %d 0 [origin software="syslogger"][fields@32473 path="C:\\"] m`, pid)
				sender.EXPECT().Send(gomock.Any(), gomock.Eq([]byte(want))).Times(1)
			},
		},
		{
			name:      "formatter gets payload and error",
			format:    syslog.FormatRFC3164,
			event:     syslog.Event{Level: syslog.LevelCritical, Time: testTime, Payload: 3, Err: sendErr},
			formatter: func(payload any, err error) (string, error) { return fmt.Sprintf("%v %v", payload, err), nil },
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Eq([]byte("<130>Jan 05 03:04:05 h svc 3 send error"))).Times(1)
			},
		},
		{
			name:      "level none is never sent",
			format:    syslog.FormatRFC5424,
			event:     syslog.Event{Level: syslog.LevelNone},
			formatter: syslog.Text("m"),
		},
		{
			name:   "empty message is not sent",
			format: syslog.FormatRFC5424,
			event:  syslog.Event{Level: syslog.LevelInformation},
			formatter: syslog.Text(""),
		},
		{
			name:   "nil formatter is not sent",
			format: syslog.FormatRFC5424,
			event:  syslog.Event{Level: syslog.LevelInformation},
		},
		{
			name:      "formatter error",
			format:    syslog.FormatRFC5424,
			event:     syslog.Event{Level: syslog.LevelInformation},
			formatter: func(any, error) (string, error) { return "", formatErr },
			wantErr:     true,
			wantErrToBe: formatErr,
		},
		{
			name:   "invalid structured data is never sent",
			format: syslog.FormatRFC5424,
			providers: []syslog.Provider{
				syslog.StaticProvider{elem("bad id", "k", "v")},
			},
			event:       syslog.Event{Level: syslog.LevelInformation},
			formatter:   syslog.Text("m"),
			wantErr:     true,
			wantErrToBe: syslog.ErrInvalidSDName,
		},
		{
			name:   "invalid structured data is ignored by rfc3164",
			format: syslog.FormatRFC3164,
			providers: []syslog.Provider{
				syslog.StaticProvider{elem("bad id", "k", "v")},
			},
			event:     syslog.Event{Level: syslog.LevelDebug, Time: testTime},
			formatter: syslog.Text("m"),
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Eq([]byte("<135>Jan 05 03:04:05 h svc m"))).Times(1)
			},
		},
		{
			name:      "send error",
			format:    syslog.FormatRFC3164,
			event:     syslog.Event{Level: syslog.LevelInformation},
			formatter: syslog.Text("m"),
			pre: func(t *testing.T, sender *mocksyslog.MockSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(1).Return(sendErr)
			},
			wantErr:     true,
			wantErrToBe: sendErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sender := mocksyslog.NewMockSender(ctrl)
			if tt.pre != nil {
				tt.pre(t, sender)
			}
			l := newTestLogger(t, tt.format, sender, tt.providers...)
			err := l.Log(testCtx, tt.event, tt.formatter)
			if (err != nil) != tt.wantErr {
				t.Errorf("Logger.Log() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErrToBe != nil && !errors.Is(err, tt.wantErrToBe) {
				t.Errorf("Logger.Log() error = %v, wantErrToBe %v", err, tt.wantErrToBe)
			}
		})
	}
}

func TestLogger_LogConcurrent(t *testing.T) {
	const (
		goroutines = 16
		events     = 200
	)
	var sent atomic.Int64
	sender := syslog.SenderFunc(func(_ context.Context, msg []byte) error {
		if !bytes.Contains(msg, []byte(`[origin software="syslogger"][fields@32473 `)) {
			t.Errorf("Logger.Log() sent %q without structured data", msg)
		}
		sent.Add(1)
		return nil
	})
	l, err := syslog.New(&syslog.Settings{
		Facility:       syslog.LOG_LOCAL0,
		Hostname:       "h",
		AppName:        "svc",
		MinLevel:       syslog.LevelTrace,
		Sender:         sender,
		StructuredData: []syslog.SDElement{elem("origin", "software", "syslogger")},
		Providers:      []syslog.Provider{&syslog.FieldsProvider{ID: "fields@32473"}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < events; i++ {
				ev := syslog.Event{
					ID:      i,
					Level:   syslog.LevelInformation,
					Payload: map[string]any{"goroutine": g, "i": i},
				}
				if err := l.Log(testCtx, ev, syslog.Text("m")); err != nil {
					t.Errorf("Logger.Log() error = %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	if got := sent.Load(); got != goroutines*events {
		t.Errorf("Logger.Log() sent %d messages, want %d", got, goroutines*events)
	}
}

func TestLogger_MinLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mocksyslog.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2)

	l, err := syslog.New(&syslog.Settings{
		Facility: syslog.LOG_USER,
		Hostname: "h",
		MinLevel: syslog.LevelWarning,
		Sender:   sender,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, level := range []syslog.Level{syslog.LevelTrace, syslog.LevelDebug, syslog.LevelInformation, syslog.LevelWarning, syslog.LevelError, syslog.LevelNone} {
		if err := l.Print(testCtx, level, "m"); err != nil {
			t.Errorf("Logger.Print(%s) error = %v", level, err)
		}
	}
	if l.Enabled(syslog.LevelInformation) || !l.Enabled(syslog.LevelCritical) {
		t.Errorf("Logger.Enabled() does not honor the minimum level")
	}
}

func TestLogger_Logf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mocksyslog.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(func(_ context.Context, msg []byte) error {
		want := " h svc disk sda is 93% full"
		if got := string(msg); len(got) < len(want) || got[len(got)-len(want):] != want {
			t.Errorf("Logger.Logf() sent %q, want suffix %q", got, want)
		}
		return nil
	})
	l := newTestLogger(t, syslog.FormatRFC3164, sender)
	if err := l.Logf(testCtx, syslog.LevelWarning, "disk %s is %d%% full", "sda", 93); err != nil {
		t.Errorf("Logger.Logf() error = %v", err)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name        string
		settings    syslog.Settings
		wantErr     bool
		wantErrToBe error
	}{
		{
			name:     "udp",
			settings: syslog.Settings{Facility: syslog.LOG_LOCAL7, Server: "192.168.42.1"},
		},
		{
			name:     "unix",
			settings: syslog.Settings{Facility: syslog.LOG_DAEMON, Transport: syslog.TransportUnix, Path: "/dev/log"},
		},
		{
			name:     "custom sender needs no endpoint",
			settings: syslog.Settings{Sender: discardSender()},
		},
		{
			name:        "udp without server",
			settings:    syslog.Settings{Facility: syslog.LOG_USER},
			wantErr:     true,
			wantErrToBe: syslog.ErrNoEndpoint,
		},
		{
			name:        "unix without path",
			settings:    syslog.Settings{Facility: syslog.LOG_USER, Transport: syslog.TransportUnix},
			wantErr:     true,
			wantErrToBe: syslog.ErrNoEndpoint,
		},
		{
			name:     "facility with severity bits",
			settings: syslog.Settings{Facility: syslog.LOG_USER | syslog.LOG_ERR, Server: "192.168.42.1"},
			wantErr:  true,
		},
		{
			name:     "facility out of range",
			settings: syslog.Settings{Facility: syslog.LOG_LOCAL7 + 8, Server: "192.168.42.1"},
			wantErr:  true,
		},
		{
			name:        "invalid format",
			settings:    syslog.Settings{Format: syslog.Format(42), Server: "192.168.42.1"},
			wantErr:     true,
			wantErrToBe: syslog.ErrInvalidFormat,
		},
		{
			name: "invalid static structured data",
			settings: syslog.Settings{
				Server:         "192.168.42.1",
				StructuredData: []syslog.SDElement{elem("origin", "soft=ware", "x")},
			},
			wantErr:     true,
			wantErrToBe: syslog.ErrInvalidSDName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Settings.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErrToBe != nil && !errors.Is(err, tt.wantErrToBe) {
				t.Errorf("Settings.Validate() error = %v, wantErrToBe %v", err, tt.wantErrToBe)
			}
			if _, err := syslog.New(&tt.settings); (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
