package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// TrimWhite removes whitespace from the start and end of a line. For
// example "   ls -a   " becomes "ls -a".
func TrimWhite(line string) string {
	return strings.TrimSpace(line)
}

// SplitLine converts a line read from the user into an argument vector,
// honoring single and double quotes. An unterminated quote is an error.
func SplitLine(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %v", err)
	}
	return tokens, nil
}

// ExpandTokens performs $VAR and ${VAR} expansion on each token using
// the process environment plus the shell specials $? (last status,
// truncated to a byte like POSIX) and $$ (shell pid).
func ExpandTokens(tokens []string, lastStatus, pid int) []string {
	mapping := func(name string) string {
		switch name {
		case "?":
			return fmt.Sprintf("%d", uint8(lastStatus))
		case "$":
			return fmt.Sprintf("%d", pid)
		default:
			return os.Getenv(name)
		}
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, os.Expand(tok, mapping))
	}
	return out
}
