package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// legacyHistoryHeader marks history files written by older releases of
// the shell; the header line is skipped on load.
const legacyHistoryHeader = "#V2"

// History keeps the lines entered during a session and round-trips
// them to the history file as plain text, one entry per line.
type History struct {
	limit   int
	entries []string
}

// NewHistory creates a History keeping at most limit entries; a limit
// of 0 means unlimited.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append adds a line, evicting the oldest entries beyond the limit.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns the recorded lines, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all recorded lines.
func (h *History) Clear() {
	h.entries = nil
}

// Load reads entries from a history file, replacing the current ones.
func (h *History) Load(r io.Reader) error {
	h.entries = nil

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first && strings.HasPrefix(line, legacyHistoryHeader) {
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}
		h.Append(line)
	}
	return scanner.Err()
}

// Save writes the entries to a history file.
func (h *History) Save(w io.Writer) error {
	for _, line := range h.entries {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
