// Package logging builds the leveled logger spectrum writes its diagnostics
// with. Diagnostics always go to stderr so that stdout carries nothing but
// the grid.
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/dkoosis/spectrum/internal/config"
)

// New returns a logger writing format ("logfmt" or "json") to w. Debug lines
// are dropped unless debug is set.
func New(w io.Writer, format string, debug bool) log.Logger {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	if format == config.LogFormatJSON {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}

	allow := level.AllowInfo()
	if debug {
		allow = level.AllowDebug()
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// Nop returns a logger that discards everything.
func Nop() log.Logger {
	return log.NewNopLogger()
}
