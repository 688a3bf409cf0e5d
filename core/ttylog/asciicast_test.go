package ttylog

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeConversions(t *testing.T) {
	cases := map[string]struct {
		microseconds int64
		seconds      float64
	}{
		"precision": {
			microseconds: 1,
			seconds:      1e-6,
		},
		"negative": {
			microseconds: -631119539e6,
			seconds:      -631119539,
		},
		"positive": {
			microseconds: 631119539e6,
			seconds:      631119539,
		},
		"bigprecise": {
			microseconds: 123456789987654,
			seconds:      123456789.987654,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s2m := secondsToMicroseconds(tc.seconds)
			m2s := microsecondsToSeconds(tc.microseconds)

			// Only allow delta to be to the NS
			assert.InDelta(t, m2s, tc.seconds, float64(time.Nanosecond)/float64(time.Second))
			assert.Equal(t, s2m, tc.microseconds)
		})
	}
}

func TestAsciicastRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewAsciicastLogSink(buf)

	entries := []*Entry{
		{TimestampMicros: 1000000, Fd: FDStdout, Data: []byte("hello ")},
		{TimestampMicros: 1500000, Fd: FDStdin, Data: []byte("ls -a\r")},
		{TimestampMicros: 2000000, Fd: FDStderr, Data: []byte("world\r\n")},
	}

	for _, e := range entries {
		assert.Nil(t, sink(e))
	}

	source := NewAsciicastLogSource(buf)

	first, err := source.Next()
	assert.Nil(t, err)
	assert.Equal(t, FDStdout, first.Fd)
	assert.Equal(t, []byte("hello "), first.Data)
	assert.Equal(t, int64(0), first.TimestampMicros)

	second, err := source.Next()
	assert.Nil(t, err)
	assert.Equal(t, FDStdin, second.Fd)
	assert.Equal(t, []byte("ls -a\r"), second.Data)
	assert.Equal(t, int64(500000), second.TimestampMicros)

	// stderr collapses into stdout on read.
	third, err := source.Next()
	assert.Nil(t, err)
	assert.Equal(t, FDStdout, third.Fd)
	assert.Equal(t, []byte("world\r\n"), third.Data)
}

func TestAsciicastHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewAsciicastLogSink(buf)

	assert.Nil(t, sink(&Entry{TimestampMicros: 0, Fd: FDStdout, Data: []byte("x")}))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"version":2`)
}
