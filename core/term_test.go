package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilTerminal(t *testing.T) {
	// A nil Terminal stands for "not interactive" and must be safe to use.
	var term *Terminal

	assert.False(t, term.IsInteractive())
	assert.Equal(t, 80, term.Width())
	assert.Nil(t, term.Reclaim())
	term.Restore()
}
