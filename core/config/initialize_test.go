package config

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	cfg, err := Initialize(tempDir, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("RefusesOverwrite", func(t *testing.T) {
		_, err := Initialize(tempDir, log.New(io.Discard, "", 0))
		assert.NotNil(t, err)
	})

	t.Run("CreateSessionLog", func(t *testing.T) {
		fd, err := cfg.CreateSessionLog("session.cast")
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("OpenHistory", func(t *testing.T) {
		fd, err := cfg.OpenHistory()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestLoadOverrides(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, log.New(io.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	os.Setenv("SIMPLE_SHELL_PROMPT", "override>")
	os.Setenv("SIMPLE_SHELL_RECORD", "true")
	defer os.Unsetenv("SIMPLE_SHELL_PROMPT")
	defer os.Unsetenv("SIMPLE_SHELL_RECORD")

	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "override>", cfg.Prompt)
	assert.True(t, cfg.Sessions.Record)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.NotNil(t, err)
}
