// Package logger writes the shell's structured application log.
//
// Events are newline delimited JSON so they can be grepped or fed to
// jq without any tooling.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger records notable shell events.
type Logger struct {
	log zerolog.Logger
}

// New creates a Logger that appends JSON events to w.
func New(w io.Writer) *Logger {
	return &Logger{
		log: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{log: zerolog.Nop()}
}

// SessionStart records the beginning of a shell session.
func (l *Logger) SessionStart(pid int, interactive bool) {
	l.log.Info().
		Str("event", "session_start").
		Int("pid", pid).
		Bool("interactive", interactive).
		Send()
}

// SessionEnd records the end of a shell session and its exit status.
func (l *Logger) SessionEnd(status int) {
	l.log.Info().
		Str("event", "session_end").
		Int("status", status).
		Send()
}

// CommandRun records an external command invocation.
func (l *Logger) CommandRun(argv []string, status int) {
	l.log.Info().
		Str("event", "command_run").
		Strs("argv", argv).
		Int("status", status).
		Send()
}

// BuiltinRun records a builtin invocation.
func (l *Logger) BuiltinRun(argv []string, status int) {
	l.log.Info().
		Str("event", "builtin_run").
		Strs("argv", argv).
		Int("status", status).
		Send()
}

// UnknownCommand records a command that couldn't be resolved on PATH.
func (l *Logger) UnknownCommand(argv []string) {
	l.log.Warn().
		Str("event", "unknown_command").
		Strs("argv", argv).
		Send()
}

// InvalidInvocation records input the shell couldn't make sense of.
func (l *Logger) InvalidInvocation(line string, err error) {
	l.log.Warn().
		Str("event", "invalid_invocation").
		Str("line", line).
		Err(err).
		Send()
}
