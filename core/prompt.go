package core

import (
	"os"
	"strings"

	"github.com/dylangresham/simple-shell/core/config"
	"github.com/fatih/color"
)

var (
	colorUserHost = color.New(color.FgGreen, color.Bold)
	colorWorkDir  = color.New(color.FgBlue, color.Bold)
)

// Prompt resolves the prompt for the next read: the configured
// environment variable wins, then the config fallback, then "shell>".
// The escapes \u, \h, \w and \$ expand like the login shells users
// expect; \w abbreviates $HOME to ~.
func (s *Shell) Prompt() string {
	prompt := os.Getenv(s.Config.PromptEnv)
	if prompt == "" {
		prompt = s.Config.Prompt
	}
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	colored := s.Config.ColorPrompt && s.Term.IsInteractive()
	return expandPrompt(prompt, promptVars{
		user: os.Getenv(EnvUser),
		host: os.Getenv(EnvHostname),
		wd:   workDirDisplay(),
		uid:  os.Getuid(),
	}, colored)
}

type promptVars struct {
	user string
	host string
	wd   string
	uid  int
}

func expandPrompt(prompt string, vars promptVars, colored bool) string {
	user, host, wd := vars.user, vars.host, vars.wd
	if colored {
		user = colorUserHost.Sprint(user)
		host = colorUserHost.Sprint(host)
		wd = colorWorkDir.Sprint(wd)
	}

	prompt = strings.ReplaceAll(prompt, `\u`, user)
	prompt = strings.ReplaceAll(prompt, `\h`, host)
	prompt = strings.ReplaceAll(prompt, `\w`, wd)

	if vars.uid == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

func workDirDisplay() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	home := os.Getenv(EnvHome)
	if home != "" && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}
	return wd
}
