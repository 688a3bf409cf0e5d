package core

import (
	"fmt"
	"os"
	"os/user"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds all registered shell builtins by name.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	// Main runs the builtin; args[0] is the builtin's name.
	Main(s *Shell, args []string) int
	// Short returns a one line description for help.
	Short() string
}

type shellBuiltinFunc struct {
	short string
	main  func(s *Shell, args []string) int
}

func (f shellBuiltinFunc) Main(s *Shell, args []string) int { return f.main(s, args) }
func (f shellBuiltinFunc) Short() string                    { return f.short }

func registerBuiltin(name, short string, main func(s *Shell, args []string) int) {
	AllBuiltins[name] = shellBuiltinFunc{short: short, main: main}
}

// homeDir resolves the user's home directory, falling back to the
// passwd entry when $HOME is unset.
func homeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	current, err := user.Current()
	if err != nil {
		return "", err
	}
	return current.HomeDir, nil
}

// Cd is the cd shell builtin. With no arguments it changes to the
// user's home directory; "cd -" swaps with $OLDPWD.
func Cd(s *Shell, args []string) int {
	var dir string
	switch len(args) {
	case 1:
		home, err := homeDir()
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
		dir = home
	case 2:
		dir = args[1]
	default:
		fmt.Fprintf(s.Stderr(), "%s: too many arguments\n", args[0])
		return 1
	}

	printDir := false
	if dir == "-" {
		dir = os.Getenv(EnvOldPWD)
		if dir == "" {
			fmt.Fprintf(s.Stderr(), "%s: OLDPWD not set\n", args[0])
			return 1
		}
		printDir = true
	}

	oldWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return 1
	}

	os.Setenv(EnvOldPWD, oldWd)
	if wd, err := os.Getwd(); err == nil {
		os.Setenv(EnvPWD, wd)
		if printDir {
			fmt.Fprintln(s.Stdout(), wd)
		}
	}
	return 0
}

// Exit quits the shell with the given status, defaulting to 0.
func Exit(s *Shell, args []string) int {
	status := 0
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %s: numeric argument required\n", args[0], args[1])
			parsed = 2
		}
		status = parsed
	}

	s.RequestExit(status)
	return status
}

// HistoryBuiltin displays or manipulates the history list.
func HistoryBuiltin(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	flush := opts.Bool('a', "append all history to the history file")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.Stderr()
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "Display or manipulate the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		if err != nil {
			return 1
		}
		return 0
	}

	optionChosen := false
	if *clear {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.History.Clear()
		if fd, err := s.Config.CreateHistory(); err == nil {
			fd.Close()
		}
		optionChosen = true
	}
	if *flush {
		fd, err := s.Config.CreateHistory()
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
		defer fd.Close()
		if err := s.History.Save(fd); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
		optionChosen = true
	}

	if !optionChosen {
		for i, line := range s.History.Entries() {
			fmt.Fprintf(s.Stdout(), "% 5d  %s\n", i+1, line)
		}
	}
	return 0
}

var identifierRegexp = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Export sets environment variables from NAME=VALUE arguments.
func Export(s *Shell, args []string) int {
	ret := 0
	for _, arg := range args[1:] {
		name, value, hasValue := strings.Cut(arg, "=")
		if !identifierRegexp.MatchString(name) {
			fmt.Fprintf(s.Stderr(), "%s: `%s': not a valid identifier\n", args[0], arg)
			ret = 1
			continue
		}
		if hasValue {
			os.Setenv(name, value)
		}
	}
	return ret
}

// Unset removes environment variables.
func Unset(s *Shell, args []string) int {
	ret := 0
	for _, arg := range args[1:] {
		if !identifierRegexp.MatchString(arg) {
			fmt.Fprintf(s.Stderr(), "%s: `%s': not a valid identifier\n", args[0], arg)
			ret = 1
			continue
		}
		os.Unsetenv(arg)
	}
	return ret
}

// Help lists the builtins.
func Help(s *Shell, args []string) int {
	w := s.Stdout()
	fmt.Fprintln(w, "These shell commands are defined internally. Type `help' to see this list.")
	fmt.Fprintln(w)

	var names []string
	for k := range AllBuiltins {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, AllBuiltins[name].Short())
	}
	return 0
}

func init() {
	registerBuiltin("cd", "change the working directory", Cd)
	registerBuiltin("exit", "exit the shell with an optional status", Exit)
	registerBuiltin("history", "display or manipulate the history list", HistoryBuiltin)
	registerBuiltin("export", "set environment variables", Export)
	registerBuiltin("unset", "remove environment variables", Unset)
	registerBuiltin("help", "list the shell builtins", Help)
}
