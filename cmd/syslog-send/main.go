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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.githedgehog.com/syslogger/pkg/config"
	"go.githedgehog.com/syslogger/pkg/log"
	"go.githedgehog.com/syslogger/pkg/log/syslog"
	"go.githedgehog.com/syslogger/pkg/version"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogLevel  = zapcore.InfoLevel
	defaultFacility  = syslog.LOG_USER
	defaultFormat    = syslog.FormatRFC5424
	defaultTransport = syslog.TransportUDP
	defaultMsgLevel  = syslog.LevelInformation
)

var description = `
Sends syslog messages in RFC 5424 or RFC 3164 format to a syslog server over
UDP or to a Unix domain socket.

The message is taken from the arguments. Without arguments every line from
stdin is sent as a separate message. With --generate-messages the tool keeps
generating messages through a zap logger which writes to the serial console
and to syslog, which is useful to test a syslog receiver.

All syslog settings can be loaded from a YAML configuration file instead of
the command line. Use --reference-config to print an example.
`

func main() {
	app := &cli.App{
		Name:                 "syslog-send",
		Usage:                "send syslog messages",
		UsageText:            "syslog-send --syslog-server 192.168.42.1 --syslog-facility local0 disk ok",
		Description:          description[1 : len(description)-1],
		Version:              version.Version,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:  "log-level",
				Usage: "minimum log level to log at (only affects serial console)",
				Value: &defaultLogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format to use: json or console (only affects serial console)",
				Value: "console",
			},
			&cli.BoolFlag{
				Name:  "log-development",
				Usage: "enables development log settings",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "reference-config",
				Usage: "prints a reference config to stdout and exits",
			},
			&cli.PathFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load syslog settings from `FILE` instead of the command-line flags",
			},
			&cli.GenericFlag{
				Name:  "syslog-transport",
				Usage: "transport to use: udp or unix",
				Value: &defaultTransport,
			},
			&cli.StringFlag{
				Name:  "syslog-server",
				Usage: "syslog server IP address or hostname or FQDN for the udp transport",
			},
			&cli.IntFlag{
				Name:  "syslog-port",
				Usage: "syslog server port for the udp transport",
				Value: syslog.DefaultPort,
			},
			&cli.PathFlag{
				Name:  "syslog-path",
				Usage: "socket path for the unix transport",
				Value: "/dev/log",
			},
			&cli.BoolFlag{
				Name:  "syslog-datagram",
				Usage: "use a datagram socket for the unix transport",
			},
			&cli.GenericFlag{
				Name:  "syslog-format",
				Usage: "header format: rfc5424 or rfc3164",
				Value: &defaultFormat,
			},
			&cli.GenericFlag{
				Name:  "syslog-facility",
				Usage: "syslog facility to use within syslog messages",
				Value: &defaultFacility,
			},
			&cli.StringFlag{
				Name:  "app-name",
				Usage: "application name (RFC 5424 APP-NAME, RFC 3164 tag)",
				Value: "syslog-send",
			},
			&cli.BoolFlag{
				Name:  "utc",
				Usage: "send timestamps in UTC",
			},
			&cli.GenericFlag{
				Name:  "level",
				Usage: "level of the sent messages",
				Value: &defaultMsgLevel,
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "category of the sent messages",
				Value: "syslog-send",
			},
			&cli.IntFlag{
				Name:  "event-id",
				Usage: "event ID of the sent messages (RFC 5424 MSGID)",
			},
			&cli.UintFlag{
				Name:  "generate-messages",
				Usage: "number of messages to generate",
			},
			&cli.DurationFlag{
				Name:  "generate-sleep",
				Usage: "duration to sleep between generated messages",
				Value: time.Second,
			},
			&cli.BoolFlag{
				Name:  "print-metrics",
				Usage: "logs the sender metrics at exit",
			},
		},
		Action: func(ctx *cli.Context) error {
			// display reference config if requested
			if ctx.Bool("reference-config") {
				b, err := config.ReferenceConfig.Marshal()
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(b)
				return err
			}
			return run(ctx)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to run syslog-send: %s\n", err)
		os.Exit(1)
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if path := ctx.Path("config"); path != "" {
		return config.Load(path)
	}
	msgLevel := *ctx.Generic("level").(*syslog.Level)
	facility := *ctx.Generic("syslog-facility").(*syslog.Priority)
	return &config.Config{
		Syslog: &config.Syslog{
			Transport: *ctx.Generic("syslog-transport").(*syslog.Transport),
			Server:    ctx.String("syslog-server"),
			Port:      ctx.Int("syslog-port"),
			Path:      ctx.Path("syslog-path"),
			Datagram:  ctx.Bool("syslog-datagram"),
			Format:    *ctx.Generic("syslog-format").(*syslog.Format),
			Facility:  &facility,
			MinLevel:  &msgLevel,
			AppName:   ctx.String("app-name"),
			UseUTC:    ctx.Bool("utc"),
		},
	}, nil
}

func run(ctx *cli.Context) error {
	l, err := log.NewSerialConsole(
		*ctx.Generic("log-level").(*zapcore.Level),
		ctx.String("log-format"),
		ctx.Bool("log-development"),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize serial logger: %w", err)
	}
	defer func() {
		if err := l.Sync(); err != nil {
			l.Debug("Flushing logger failed", zap.Error(err))
		}
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	settings, err := cfg.Settings(ctx.Context, l, syslog.NewSenderMetrics(reg))
	if err != nil {
		return err
	}
	l.Debug("Loaded syslog settings", zap.Reflect("config", cfg))
	if ctx.Bool("print-metrics") {
		defer printMetrics(l, reg)
	}

	category := ctx.String("category")
	if n := ctx.Uint("generate-messages"); n > 0 {
		return generate(ctx, settings, l, category, n)
	}

	logger, err := syslog.New(settings)
	if err != nil {
		return err
	}
	ev := syslog.Event{
		ID:       ctx.Int("event-id"),
		Category: category,
		Level:    *ctx.Generic("level").(*syslog.Level),
	}

	if ctx.NArg() > 0 {
		return logger.Log(ctx.Context, ev, syslog.Text(strings.Join(ctx.Args().Slice(), " ")))
	}

	// one message per line from stdin
	s := bufio.NewScanner(os.Stdin)
	for s.Scan() {
		if err := logger.Log(ctx.Context, ev, syslog.Text(s.Text())); err != nil {
			return err
		}
	}
	return s.Err()
}

func generate(ctx *cli.Context, settings *syslog.Settings, l *zap.Logger, category string, n uint) error {
	logger, err := log.NewTee(l, settings)
	if err != nil {
		return err
	}
	registry := log.NewRegistry(logger.With(zap.Int(syslog.EventIDKey, ctx.Int("event-id"))))
	defer registry.Sync() //nolint: errcheck

	generateSleep := ctx.Duration("generate-sleep")
	for i := uint(0); i < n; i++ {
		registry.Logger(category).Info("generated log message", zap.Uint("i", i))
		time.Sleep(generateSleep)
	}
	return nil
}

func printMetrics(l *zap.Logger, reg *prometheus.Registry) {
	mfs, err := reg.Gather()
	if err != nil {
		l.Warn("gathering metrics failed", zap.Error(err))
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			l.Info(mf.GetName(), zap.Strings("labels", labels), zap.Float64("value", m.GetCounter().GetValue()))
		}
	}
}
