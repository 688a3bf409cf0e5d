package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptDefault(t *testing.T) {
	s, _, _ := newTestShell(t)

	os.Unsetenv("MY_PROMPT")
	s.Config.Prompt = ""

	assert.Equal(t, "shell>", s.Prompt())
}

func TestPromptFromConfig(t *testing.T) {
	s, _, _ := newTestShell(t)

	os.Unsetenv("MY_PROMPT")
	s.Config.Prompt = "config>"

	assert.Equal(t, "config>", s.Prompt())
}

func TestPromptFromEnv(t *testing.T) {
	s, _, _ := newTestShell(t)

	os.Setenv("MY_PROMPT", "foo>")
	defer os.Unsetenv("MY_PROMPT")

	assert.Equal(t, "foo>", s.Prompt())
}

func TestExpandPrompt(t *testing.T) {
	cases := map[string]struct {
		prompt   string
		vars     promptVars
		expected string
	}{
		"plain": {
			prompt:   "shell>",
			vars:     promptVars{uid: 1000},
			expected: "shell>",
		},
		"user and host": {
			prompt:   `\u@\h\$ `,
			vars:     promptVars{user: "alice", host: "box", uid: 1000},
			expected: "alice@box$ ",
		},
		"root dollar": {
			prompt:   `\u\$ `,
			vars:     promptVars{user: "root", uid: 0},
			expected: "root# ",
		},
		"working directory": {
			prompt:   `\w> `,
			vars:     promptVars{wd: "~/src", uid: 1000},
			expected: "~/src> ",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expected, expandPrompt(tc.prompt, tc.vars, false))
		})
	}
}

func TestWorkDirDisplayAbbreviatesHome(t *testing.T) {
	home := os.Getenv(EnvHome)
	if home == "" {
		t.Skip("HOME not set")
	}

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(orig)

	if err := os.Chdir(home); err != nil {
		t.Skip("can't chdir to HOME")
	}

	assert.Equal(t, "~", workDirDisplay())
}
