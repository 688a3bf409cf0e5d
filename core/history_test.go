package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAppendLimit(t *testing.T) {
	h := NewHistory(3)
	for _, line := range []string{"one", "two", "three", "four"} {
		h.Append(line)
	}

	assert.Equal(t, []string{"two", "three", "four"}, h.Entries())
	assert.Equal(t, 3, h.Len())
}

func TestHistoryUnlimited(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 100; i++ {
		h.Append("line")
	}
	assert.Equal(t, 100, h.Len())
}

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory(0)
	h.Append("ls -a")
	h.Append("cd /tmp")

	buf := &bytes.Buffer{}
	assert.Nil(t, h.Save(buf))

	loaded := NewHistory(0)
	assert.Nil(t, loaded.Load(buf))
	assert.Equal(t, []string{"ls -a", "cd /tmp"}, loaded.Entries())
}

func TestHistoryLoadLegacyHeader(t *testing.T) {
	// Files written by the old implementation start with a #V2 marker.
	in := strings.NewReader("#V2\nls -a\ncd /\n")

	h := NewHistory(0)
	assert.Nil(t, h.Load(in))
	assert.Equal(t, []string{"ls -a", "cd /"}, h.Entries())
}

func TestHistoryLoadSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("ls\n\n\npwd\n")

	h := NewHistory(0)
	assert.Nil(t, h.Load(in))
	assert.Equal(t, []string{"ls", "pwd"}, h.Entries())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	h.Append("ls")
	h.Clear()
	assert.Equal(t, 0, h.Len())
}
