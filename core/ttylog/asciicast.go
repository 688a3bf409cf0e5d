package ttylog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// AsciicastFileExt holds the suggested file extension for asciicast files.
const AsciicastFileExt = "cast"

func writeJSONLine(w io.Writer, structure interface{}) error {
	line, err := json.Marshal(structure)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", string(line))
	return err
}

// NewAsciicastLogSink creates a LogSink compatible with the asciicast v2
// format.
//
// See: https://github.com/asciinema/asciinema/blob/develop/doc/asciicast-v2.md
func NewAsciicastLogSink(w io.Writer) LogSink {
	var (
		firstLogTimeMicros int64
		once               sync.Once
	)

	return func(entry *Entry) error {
		var headerErr error
		once.Do(func() {
			firstLogTimeMicros = entry.TimestampMicros
			// Give generic settings that should work to display most outputs.
			headerErr = writeJSONLine(w, map[string]interface{}{
				"version":   2,
				"width":     80,
				"height":    24,
				"timestamp": time.UnixMicro(firstLogTimeMicros).Unix(),
				"title":     "simple-shell session",
				"env": map[string]interface{}{
					"TERM":  "xterm-256color",
					"SHELL": "/bin/sh",
				},
			})
		})
		if headerErr != nil {
			return headerErr
		}

		deltaSecond := microsecondsToSeconds(entry.TimestampMicros - firstLogTimeMicros)

		direction := "o"
		if entry.Fd == FDStdin {
			direction = "i"
		}

		return writeJSONLine(w, &asciicastLogLine{deltaSecond, direction, string(entry.Data)})
	}
}

var _ LogSource = (*AsciicastLogSource)(nil)

// AsciicastLogSource reads log events from an asciicast formatted file.
type AsciicastLogSource struct {
	r             *bufio.Reader
	consumeHeader sync.Once
}

// NewAsciicastLogSource reads log events from an asciicast formatted file.
func NewAsciicastLogSource(r io.Reader) *AsciicastLogSource {
	return &AsciicastLogSource{r: bufio.NewReader(r)}
}

// Next gets the next log entry, it returns io.EOF if there are no more.
func (log *AsciicastLogSource) Next() (*Entry, error) {
	log.consumeHeader.Do(func() {
		log.r.ReadBytes('\n')
	})

	for {
		line, err := log.r.ReadBytes('\n')
		if err != nil {
			return nil, err
		}

		if len(line) == 1 {
			// Skip blank lines
			continue
		}

		var asciicastLine asciicastLogLine
		if err := json.Unmarshal(line, &asciicastLine); err != nil {
			return nil, err
		}

		// Asciicast doesn't support stderr so it's collapsed into stdout.
		var fd FD
		switch asciicastLine.EventType {
		case "o":
			fd = FDStdout
		case "i":
			fd = FDStdin
		default:
			// skip unknown events
			continue
		}

		return &Entry{
			TimestampMicros: secondsToMicroseconds(asciicastLine.TimeSeconds),
			Fd:              fd,
			Data:            []byte(asciicastLine.EventData),
		}, nil
	}
}

type asciicastLogLine struct {
	TimeSeconds float64
	EventType   string
	EventData   string
}

// MarshalJSON implements custom JSON marshaling to the asciicast
// three element array form.
func (log *asciicastLogLine) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{log.TimeSeconds, log.EventType, log.EventData})
}

// UnmarshalJSON implements custom JSON unmarshaling from the asciicast
// three element array form.
func (log *asciicastLogLine) UnmarshalJSON(data []byte) error {
	parts := []interface{}{&log.TimeSeconds, &log.EventType, &log.EventData}
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("expected 3 elements in log line, got %d", len(parts))
	}
	return nil
}

func microsecondsToSeconds(micros int64) float64 {
	return float64(micros) / 1e6
}

func secondsToMicroseconds(seconds float64) int64 {
	return int64(seconds * 1e6)
}
