package core

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// Terminal tracks the controlling terminal while the shell is
// interactive so it can be handed to children and reclaimed.
type Terminal struct {
	fd   int
	pgid int
}

var jobControlSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGTSTP,
	syscall.SIGTTIN,
	syscall.SIGTTOU,
}

// SetupTerminal puts the shell in its own process group, grabs the
// controlling terminal and ignores the job-control signals. It returns
// nil when stdin isn't a terminal.
//
// NOTE: attaching a debugger can make grabbing the terminal fail
// because the debugger keeps control of the process it's debugging.
func SetupTerminal() *Terminal {
	fd := int(os.Stdin.Fd())
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	pid := unix.Getpid()
	// Fails with EPERM when the process is already a session leader,
	// in which case the group is already correct.
	_ = unix.Setpgid(pid, pid)

	t := &Terminal{fd: fd, pgid: unix.Getpgrp()}

	signal.Ignore(jobControlSignals...)
	_ = t.Reclaim()

	return t
}

// Reclaim makes the shell's process group the foreground group of the
// terminal again, e.g. after a child finished.
func (t *Terminal) Reclaim() error {
	if t == nil {
		return nil
	}
	return unix.IoctlSetPointerInt(t.fd, unix.TIOCSPGRP, t.pgid)
}

// Restore gives the terminal back and resets signal handling. Called
// once when the shell exits.
func (t *Terminal) Restore() {
	if t == nil {
		return
	}
	_ = t.Reclaim()
	signal.Reset(jobControlSignals...)
}

// Width reports the terminal width in columns, or 80 when unknown.
func (t *Terminal) Width() int {
	if t == nil {
		return 80
	}
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}

// Fd returns the terminal file descriptor.
func (t *Terminal) Fd() int {
	if t == nil {
		return int(os.Stdin.Fd())
	}
	return t.fd
}

// IsInteractive reports whether the shell has a controlling terminal.
func (t *Terminal) IsInteractive() bool {
	return t != nil
}
