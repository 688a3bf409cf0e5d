// Package ttylog records and replays terminal sessions.
package ttylog

import (
	"io"
	"log"
	"sync"
	"time"
)

// FD identifies the stream an event belongs to.
type FD int

const (
	FDStdin FD = iota
	FDStdout
	FDStderr
)

// Entry is a single timestamped chunk of terminal I/O.
type Entry struct {
	// TimestampMicros is the UNIX timestamp of the event in microseconds.
	TimestampMicros int64
	// Fd is the stream the data was read from or written to.
	Fd FD
	// Data holds the raw bytes.
	Data []byte
}

// LogSink receives log events.
type LogSink func(e *Entry) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available log entry. It returns io.EOF if the
	// source has no more log entries.
	Next() (*Entry, error)
}

// NewRealTimePlayback plays back the results in real-time.
// If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prevTimeMicros int64

	return func(entry *Entry) error {
		once.Do(func() {
			prevTimeMicros = entry.TimestampMicros
		})

		delta := entry.TimestampMicros - prevTimeMicros
		prevTimeMicros = entry.TimestampMicros

		if maxSleep > 0 {
			sleepDuration := time.Duration(delta) * time.Microsecond
			if sleepDuration > maxSleep {
				sleepDuration = maxSleep
			}
			time.Sleep(sleepDuration)
		}

		return next(entry)
	}
}

// NewClientOutput writes stdout and stderr events to the given writer.
func NewClientOutput(w io.Writer) LogSink {
	return func(entry *Entry) error {
		if entry.Fd != FDStdin {
			if _, err := w.Write(entry.Data); err != nil {
				return err
			}
		}
		return nil
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) error {
	for {
		entry, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(entry); err != nil {
			return err
		}
	}
}

// Streams bundles the three standard streams of a session.
type Streams struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
	Stderr io.WriteCloser
}

// Recorder wraps Streams and forwards everything that passes through
// them to a LogSink.
type Recorder struct {
	Streams
	mutex  sync.Mutex
	output LogSink
}

func (r *Recorder) record(fd FD, data []byte) {
	eventTime := time.Now()
	r.mutex.Lock()
	err := r.output(&Entry{
		TimestampMicros: eventTime.UnixMicro(),
		Fd:              fd,
		Data:            data,
	})
	r.mutex.Unlock()
	if err != nil {
		log.Print(err)
	}
}

type recorderReadCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.ReadCloser
}

var _ io.ReadCloser = (*recorderReadCloser)(nil)

func (rc *recorderReadCloser) Read(p []byte) (int, error) {
	amount, err := rc.wrapped.Read(p)
	if err == nil {
		rc.r.record(rc.fd, p[:amount])
	}
	return amount, err
}

func (rc *recorderReadCloser) Close() error {
	return rc.wrapped.Close()
}

type recorderWriteCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.WriteCloser
}

var _ io.WriteCloser = (*recorderWriteCloser)(nil)

func (rc *recorderWriteCloser) Write(p []byte) (int, error) {
	amount, err := rc.wrapped.Write(p)
	if err == nil {
		rc.r.record(rc.fd, p[:amount])
	}
	return amount, err
}

func (rc *recorderWriteCloser) Close() error {
	return rc.wrapped.Close()
}

// NewRecorder creates a recorder that forwards all events to output.
func NewRecorder(toWrap Streams, output LogSink) *Recorder {
	recorder := &Recorder{
		output: output,
	}

	recorder.Streams = Streams{
		Stdin:  &recorderReadCloser{fd: FDStdin, r: recorder, wrapped: toWrap.Stdin},
		Stdout: &recorderWriteCloser{fd: FDStdout, r: recorder, wrapped: toWrap.Stdout},
		Stderr: &recorderWriteCloser{fd: FDStderr, r: recorder, wrapped: toWrap.Stderr},
	}

	return recorder
}
