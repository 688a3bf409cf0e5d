package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// runExternal resolves argv[0] on PATH and runs it in a fresh process
// group, giving it the terminal while it's in the foreground.
func (s *Shell) runExternal(argv []string) int {
	execPath, err := exec.LookPath(argv[0])
	switch {
	case errors.Is(err, fs.ErrPermission):
		fmt.Fprintf(s.Stderr(), "%s: permission denied\n", argv[0])
		s.Log.UnknownCommand(argv)
		return 126
	case err != nil:
		fmt.Fprintf(s.Stderr(), "%s: command not found\n", argv[0])
		s.Log.UnknownCommand(argv)
		return 127
	}

	cmd := &exec.Cmd{
		Path: execPath,
		Args: argv,
		Env:  os.Environ(),
	}

	if s.Term.IsInteractive() && !s.recording {
		// Hand the child the real terminal and make its process group
		// the foreground group for the duration.
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.SysProcAttr = &syscall.SysProcAttr{
			Setpgid:    true,
			Foreground: true,
			Ctty:       s.Term.Fd(),
		}
		defer s.Term.Reclaim()
	} else {
		// Recording wraps the streams, so the child writes through the
		// recorder instead of straight to the terminal.
		cmd.Stdin = s.streams.Stdin
		cmd.Stdout = s.streams.Stdout
		cmd.Stderr = s.streams.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				return 128 + int(ws.Signal())
			}
			return exitErr.ExitCode()
		}

		fmt.Fprintf(s.Stderr(), "%s: %v\n", argv[0], err)
		return 126
	}
	return 0
}
