package inplacevector

import (
	"go.uber.org/zap"

	"github.com/wippyai/inplace-vector/internal/layout"
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	return layout.Logger()
}

// SetLogger configures the library's logger. When set, storage variant
// selection is logged at debug level once per vector instantiation.
// This must be called before any vector operations.
func SetLogger(l *zap.Logger) {
	layout.SetLogger(l)
}
