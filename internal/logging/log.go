// Package logging wires up the engine's diagnostic logger. All output goes
// to stderr, never stdout, since stdout carries the UCI protocol stream and
// must not be polluted with log lines.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

// Get returns a named logger backed by a stderr backend formatted with
// timestamp, source location, and level.
func Get(name string) *Logger {
	log := MustGetLogger(name)
	backend := NewLogBackend(os.Stderr, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backendFormatter := NewBackendFormatter(backend, format)
	leveled := AddModuleLevel(backendFormatter)
	leveled.SetLevel(INFO, "")
	SetBackend(leveled)
	return log
}
