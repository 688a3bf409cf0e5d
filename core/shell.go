// Package core implements the interactive shell: the read-eval loop,
// builtins, history and terminal handling.
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/readline"
	"github.com/dylangresham/simple-shell/core/config"
	"github.com/dylangresham/simple-shell/core/logger"
	"github.com/dylangresham/simple-shell/core/ttylog"
)

const (
	EnvHome     = "HOME"
	EnvPWD      = "PWD"
	EnvOldPWD   = "OLDPWD"
	EnvUser     = "USER"
	EnvHostname = "HOSTNAME"
)

type listCloser []io.Closer

func (l listCloser) Close() error {
	var lastErr error
	for _, c := range l {
		if err := c.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance
	Log      *logger.Logger
	History  *History
	Term     *Terminal

	streams   ttylog.Streams
	recording bool
	toClose   listCloser

	lastRet    int
	quit       bool
	exitStatus int
}

// NewShell builds a shell attached to the process' standard streams.
// When session recording is enabled all terminal I/O is copied to an
// asciicast file in the configured session directory.
func NewShell(cfg *config.Configuration, appLog *logger.Logger) (*Shell, error) {
	term := SetupTerminal()

	streams := ttylog.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	shell := &Shell{
		Config:  cfg,
		Log:     appLog,
		History: NewHistory(cfg.History.Limit),
		Term:    term,
	}

	if cfg.Sessions.Record {
		name := fmt.Sprintf("%d.%s", time.Now().Unix(), ttylog.AsciicastFileExt)
		fd, err := cfg.CreateSessionLog(name)
		if err != nil {
			return nil, err
		}
		shell.toClose = append(shell.toClose, fd)
		streams = ttylog.NewRecorder(streams, ttylog.NewAsciicastLogSink(fd)).Streams
		shell.recording = true
	}
	shell.streams = streams

	rlConfig := &readline.Config{
		Stdin:          readline.NewCancelableStdin(streams.Stdin),
		Stdout:         streams.Stdout,
		Stderr:         streams.Stderr,
		HistoryLimit:   cfg.History.Limit,
		FuncGetWidth:   term.Width,
		FuncIsTerminal: term.IsInteractive,
	}
	if err := rlConfig.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}
	shell.Readline = rl

	shell.loadHistory()
	shell.initEnv()

	return shell, nil
}

// loadHistory seeds the session from the saved history file.
func (s *Shell) loadHistory() {
	fd, err := s.Config.OpenHistory()
	if err != nil {
		fmt.Fprintln(s.streams.Stderr, "No previous history.")
		return
	}
	defer fd.Close()

	if err := s.History.Load(fd); err != nil {
		fmt.Fprintln(s.streams.Stderr, "No previous history.")
		return
	}

	for _, line := range s.History.Entries() {
		_ = s.Readline.SaveHistory(line)
	}
}

// initEnv fills in the environment variables the shell relies on when
// the parent process didn't provide them.
func (s *Shell) initEnv() {
	if wd, err := os.Getwd(); err == nil {
		os.Setenv(EnvPWD, wd)
	}
	if os.Getenv(EnvHostname) == "" {
		if host, err := os.Hostname(); err == nil {
			os.Setenv(EnvHostname, host)
		}
	}
}

// Run reads and executes commands until exit or EOF. It returns the
// shell's exit status.
func (s *Shell) Run() int {
	s.Log.SessionStart(os.Getpid(), s.Term.IsInteractive())

	for !s.quit {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// Input closed, quit.
			fmt.Fprintln(s.streams.Stdout, "exit")
			s.quit = true

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			s.exitStatus = 1
			s.quit = true

		default:
			line = TrimWhite(line)
			if line == "" {
				continue
			}
			s.History.Append(line)
			s.RunCommand(line)
		}
	}

	s.Log.SessionEnd(s.exitStatus)
	return s.exitStatus
}

// RunCommand parses and executes a single command line.
func (s *Shell) RunCommand(line string) {
	line = TrimWhite(line)
	if line == "" {
		return
	}
	line = s.expandAlias(line)

	tokens, err := SplitLine(line)
	if err != nil {
		fmt.Fprintf(s.streams.Stderr, "shell: %v\n", err)
		s.Log.InvalidInvocation(line, err)
		s.lastRet = 2
		return
	}

	tokens = ExpandTokens(tokens, s.lastRet, os.Getpid())
	if len(tokens) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		s.lastRet = builtin.Main(s, tokens)
		s.Log.BuiltinRun(tokens, s.lastRet)
		return
	}

	s.lastRet = s.runExternal(tokens)
	s.Log.CommandRun(tokens, s.lastRet)
}

// expandAlias replaces the first word of the line with its configured
// alias, non-recursively.
func (s *Shell) expandAlias(line string) string {
	name, rest, _ := strings.Cut(line, " ")
	expansion := s.Config.Alias(name)
	if expansion == name {
		return line
	}
	if rest == "" {
		return expansion
	}
	return expansion + " " + rest
}

// RequestExit makes the shell stop after the current command.
func (s *Shell) RequestExit(status int) {
	s.quit = true
	s.exitStatus = status
}

// LastStatus returns the exit status of the last command, as seen by $?.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

// Stdout returns the shell's effective stdout stream.
func (s *Shell) Stdout() io.Writer {
	return s.streams.Stdout
}

// Stderr returns the shell's effective stderr stream.
func (s *Shell) Stderr() io.Writer {
	return s.streams.Stderr
}

// Close persists history, gives back the terminal and releases any
// recording files.
func (s *Shell) Close() error {
	if fd, err := s.Config.CreateHistory(); err == nil {
		_ = s.History.Save(fd)
		fd.Close()
	}

	if s.Readline != nil {
		s.Readline.Close()
	}
	s.Term.Restore()

	return s.toClose.Close()
}
