package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName  = "config.yaml"
	SessionLogsDirName = "session_logs"
	AppLogName         = "app.log"

	// DefaultPromptEnv is the environment variable consulted for the prompt.
	DefaultPromptEnv = "MY_PROMPT"
	// DefaultPrompt is used when the prompt environment variable is unset.
	DefaultPrompt = "shell>"
)

type Configuration struct {
	configFs afero.Fs
	dir      string

	// Prompt is the fallback prompt shown when PromptEnv isn't set.
	Prompt string `json:"prompt" validate:"required"`
	// PromptEnv names the environment variable that overrides the prompt.
	PromptEnv string `json:"prompt_env" validate:"required"`
	// ColorPrompt enables ANSI colors for prompt escapes on TTYs.
	ColorPrompt bool `json:"color_prompt"`

	History  History  `json:"history"`
	Sessions Sessions `json:"sessions"`

	// Aliases maps a command name to the text that replaces it.
	Aliases map[string]string `json:"aliases"`
}

type History struct {
	// File holds saved history, relative to the configuration directory.
	File string `json:"file" validate:"required"`
	// Limit caps the number of entries kept; 0 means unlimited.
	Limit int `json:"limit" validate:"gte=0"`
}

type Sessions struct {
	// Record enables asciicast recording of interactive sessions.
	Record bool `json:"record"`
	// Dir receives the recordings, relative to the configuration directory.
	Dir string `json:"dir" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewBasePathFs(afero.NewOsFs(), c.dir)
	}
	return c.configFs
}

// Dir returns the configuration directory.
func (c *Configuration) Dir() string {
	return c.dir
}

// HistoryPath returns the OS path of the history file.
func (c *Configuration) HistoryPath() string {
	return filepath.Join(c.dir, c.History.File)
}

// OpenHistory opens the history file for reading, creating it if missing.
func (c *Configuration) OpenHistory() (afero.File, error) {
	return c.fs().OpenFile(c.History.File, os.O_RDONLY|os.O_CREATE, 0600)
}

// CreateHistory truncates and opens the history file for writing.
func (c *Configuration) CreateHistory() (afero.File, error) {
	return c.fs().Create(c.History.File)
}

// CreateSessionLog creates a session recording with the given name.
func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	if err := c.fs().MkdirAll(c.Sessions.Dir, 0700); err != nil {
		return nil, err
	}
	return c.fs().Create(filepath.Join(c.Sessions.Dir, name))
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// Alias resolves a command alias, returning the name unchanged if no
// alias exists.
func (c *Configuration) Alias(name string) string {
	if expansion, ok := c.Aliases[name]; ok {
		return expansion
	}
	return name
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := unmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
