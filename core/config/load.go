package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"sigs.k8s.io/yaml"
)

// Overrides are environment variables applied on top of the loaded
// configuration so a user can tweak behavior without editing YAML.
type Overrides struct {
	Prompt      string `env:"SIMPLE_SHELL_PROMPT"`
	PromptEnv   string `env:"SIMPLE_SHELL_PROMPT_ENV"`
	HistoryFile string `env:"SIMPLE_SHELL_HISTORY"`
	Record      *bool  `env:"SIMPLE_SHELL_RECORD"`
}

func unmarshalStrict(data []byte, out *Configuration) error {
	return yaml.UnmarshalStrict(data, out)
}

// Default returns the built-in configuration rooted at dir, with
// environment overrides applied.
func Default(dir string) (*Configuration, error) {
	out := defaultConfig()
	out.dir = dir

	if err := out.applyOverrides(); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := unmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %v", ConfigurationName, err)
	}
	out.dir = path

	if err := out.applyOverrides(); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Configuration) applyOverrides() error {
	var overrides Overrides
	if err := env.Parse(&overrides); err != nil {
		return err
	}

	if overrides.Prompt != "" {
		c.Prompt = overrides.Prompt
	}
	if overrides.PromptEnv != "" {
		c.PromptEnv = overrides.PromptEnv
	}
	if overrides.HistoryFile != "" {
		c.History.File = overrides.HistoryFile
	}
	if overrides.Record != nil {
		c.Sessions.Record = *overrides.Record
	}

	return nil
}
