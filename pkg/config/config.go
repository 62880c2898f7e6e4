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

// Package config holds the YAML configuration of the syslog logging back-end and translates it into
// `syslog.Settings`.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.githedgehog.com/syslogger/pkg/log/syslog"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrNoSyslogConfig = errors.New("config: syslog section missing")

// Config is the top level configuration file structure
type Config struct {
	// Syslog holds all settings for sending syslog messages
	Syslog *Syslog `json:"syslog" yaml:"syslog"`
}

type Syslog struct {
	// Transport is either "udp" or "unix". It defaults to "udp".
	Transport syslog.Transport `json:"transport" yaml:"transport"`

	// Server is the IP address or host name of the syslog server for the UDP transport. It can carry a port.
	Server string `json:"server,omitempty" yaml:"server,omitempty"`

	// Port is the UDP port of the syslog server. It is ignored if Server carries a port, and 514 is used if it is 0.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Path is the socket path for the unix transport
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Datagram switches the unix transport from a stream socket to a datagram socket (like /dev/log)
	Datagram bool `json:"datagram,omitempty" yaml:"datagram,omitempty"`

	// Format is either "rfc5424" or "rfc3164". It defaults to "rfc5424".
	Format syslog.Format `json:"format" yaml:"format"`

	// Facility is a facility name like "local0". It defaults to "user".
	Facility *syslog.Priority `json:"facility,omitempty" yaml:"facility,omitempty"`

	// MinLevel is the lowest level which gets sent. It defaults to "info".
	MinLevel *syslog.Level `json:"min_level,omitempty" yaml:"min_level,omitempty"`

	// AppName defaults to the name of the running binary
	AppName string `json:"app_name,omitempty" yaml:"app_name,omitempty"`

	// Hostname defaults to the host name of the system
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// UseUTC sends timestamps in UTC instead of local time
	UseUTC bool `json:"use_utc,omitempty" yaml:"use_utc,omitempty"`

	// StructuredData is sent with every RFC 5424 message
	StructuredData []syslog.SDElement `json:"structured_data,omitempty" yaml:"structured_data,omitempty"`

	// FieldsElementID enables sending all log fields in one structured data element with this ID
	FieldsElementID string `json:"fields_element_id,omitempty" yaml:"fields_element_id,omitempty"`

	// ConnectionTimeout and WriteTimeout are disabled when zero
	ConnectionTimeout time.Duration `json:"connection_timeout,omitempty" yaml:"connection_timeout,omitempty"`
	WriteTimeout      time.Duration `json:"write_timeout,omitempty" yaml:"write_timeout,omitempty"`

	// Async queues messages and sends them in the background. Send errors are then only logged internally.
	Async *Async `json:"async,omitempty" yaml:"async,omitempty"`
}

type Async struct {
	// BufferMsgs is the number of messages that can be queued. It defaults to 100.
	BufferMsgs int `json:"buffer_msgs" yaml:"buffer_msgs"`
}

// ReferenceConfig will be displayed when requested through the CLI
var ReferenceConfig = Config{
	Syslog: &Syslog{
		Transport: syslog.TransportUDP,
		Server:    "192.168.42.1",
		Port:      514,
		Format:    syslog.FormatRFC5424,
		Facility:  ptr(syslog.LOG_LOCAL0),
		MinLevel:  ptr(syslog.LevelInformation),
		AppName:   "syslog-send",
		UseUTC:    true,
		StructuredData: []syslog.SDElement{
			{
				ID: "origin",
				Params: []syslog.SDParam{
					{Name: "software", Value: "syslogger"},
				},
			},
		},
		FieldsElementID:   "fields@32473",
		ConnectionTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
	},
}

func ptr[T any](v T) *T {
	return &v
}

// Load reads the configuration file at `path`
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open '%s': %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML configuration from `r`
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config yaml decode: %w", err)
	}
	return &cfg, nil
}

// Marshal returns the YAML representation of the configuration
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Settings translates the configuration into settings for `syslog.New`. The internal logger receives diagnostics
// of the senders. If `metrics` is not nil, the sender is instrumented. The context is only used for the background
// processor of an async sender.
func (c *Config) Settings(ctx context.Context, internalLogger *zap.Logger, metrics *syslog.SenderMetrics) (*syslog.Settings, error) {
	if c.Syslog == nil {
		return nil, ErrNoSyslogConfig
	}
	cfg := c.Syslog
	if internalLogger == nil {
		internalLogger = zap.NewNop()
	}

	s := &syslog.Settings{
		Facility:       syslog.LOG_USER,
		Format:         cfg.Format,
		Transport:      cfg.Transport,
		Server:         cfg.Server,
		Port:           cfg.Port,
		Path:           cfg.Path,
		StructuredData: cfg.StructuredData,
		UseUTC:         cfg.UseUTC,
		AppName:        cfg.AppName,
		Hostname:       cfg.Hostname,
		MinLevel:       syslog.LevelInformation,
		SenderOptions: []syslog.SenderOption{
			syslog.InternalLogger(internalLogger),
			syslog.ConnectionTimeout(cfg.ConnectionTimeout),
			syslog.WriteTimeout(cfg.WriteTimeout),
		},
	}
	if cfg.Facility != nil {
		s.Facility = *cfg.Facility
	}
	if cfg.MinLevel != nil {
		s.MinLevel = *cfg.MinLevel
	}
	if cfg.Datagram {
		s.SenderOptions = append(s.SenderOptions, syslog.Network("unixgram"))
	}
	if cfg.FieldsElementID != "" {
		if !syslog.ValidSDName(cfg.FieldsElementID) {
			return nil, &syslog.ValidationError{ID: cfg.FieldsElementID}
		}
		s.Providers = append(s.Providers, &syslog.FieldsProvider{ID: cfg.FieldsElementID})
	}

	// validate before we build any sender, as the async sender starts a goroutine
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sender := s.NewSender()
	if metrics != nil {
		sender = metrics.Instrument(s.Transport.String(), sender)
	}
	if cfg.Async != nil {
		sender = syslog.NewAsyncSender(ctx, sender,
			syslog.BufferMsgs(cfg.Async.BufferMsgs),
			syslog.AsyncInternalLogger(internalLogger),
		)
	}
	s.Sender = sender

	return s, nil
}
