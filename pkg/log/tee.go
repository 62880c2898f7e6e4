package log

import (
	"fmt"

	"go.githedgehog.com/syslogger/pkg/log/syslog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTee returns a logger which writes every entry to the serial console logger and to all syslog destinations.
// Send failures of any syslog destination are reported on the serial console.
func NewTee(serialLogger *zap.Logger, destinations ...*syslog.Settings) (*zap.Logger, error) {
	cores := []zapcore.Core{serialLogger.Core()}
	for i, settings := range destinations {
		syslogLogger, err := NewSyslog(settings, serialLogger)
		if err != nil {
			return nil, fmt.Errorf("syslog destination %d: %w", i, err)
		}
		serialLogger.Debug("Initialized syslog logger", zap.Int("destination", i), zap.Stringer("transport", settings.Transport), zap.Stringer("format", settings.Format))
		cores = append(cores, syslogLogger.Core())
	}

	// the error output of the syslog cores is lost with their loggers, so send it to the serial console again
	return zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(zapcore.AddSync(&errorOutputWriter{l: serialLogger}))), nil
}
