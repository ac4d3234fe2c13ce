// Package logging wraps github.com/op/go-logging into a single
// package-level Logger, mirroring frankkopp/FrankyGo's own
// internal/logging package.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

// Logger is the module-wide logger. Components log through this value
// instead of constructing their own backend.
var Logger = logging.MustGetLogger("othello-horizon")

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// SetLevel reparses level (one of "debug", "info", "notice", "warning",
// "error", "critical", case-insensitive) and applies it to the module-wide
// backend. Invalid levels are silently ignored, leaving the current level
// in place.
func SetLevel(level string) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return
	}
	logging.SetLevel(lvl, "")
}
