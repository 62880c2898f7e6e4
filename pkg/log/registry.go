package log

import (
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
)

// Registry caches one named logger per category. Lookups of existing categories never block, while concurrent
// first-time creations of the same category are serialized so that exactly one logger is created for it.
type Registry struct {
	base    *zap.Logger
	loggers *xsync.Map[string, *zap.Logger]
}

// NewRegistry returns a registry which derives all category loggers from `base`
func NewRegistry(base *zap.Logger) *Registry {
	return &Registry{
		base:    base,
		loggers: xsync.NewMap[string, *zap.Logger](),
	}
}

// Logger returns the logger for `category`, creating it on first use
func (r *Registry) Logger(category string) *zap.Logger {
	l, _ := r.loggers.LoadOrCompute(category, func() (*zap.Logger, bool) {
		return r.base.Named(category), false
	})
	return l
}

// Len returns the number of categories which have a logger
func (r *Registry) Len() int {
	return r.loggers.Size()
}

// Sync flushes the base logger
func (r *Registry) Sync() error {
	return r.base.Sync()
}
