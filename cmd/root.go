package cmd

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/dylangresham/simple-shell/core"
	"github.com/dylangresham/simple-shell/core/config"
	"github.com/dylangresham/simple-shell/core/logger"
	"github.com/spf13/cobra"
)

// version is the user-visible release, overridable at link time.
var version = "0.2.0"

var (
	cfgPath     string
	commandFlag string
)

// loadConfig loads the configuration directory, falling back to the
// built-in defaults so the shell still starts before `init` was run.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(cfgPath)
	}
	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simple-shell",
	Short: "A small interactive Unix shell.",
	Long: `An interactive command interpreter with line editing, persistent
history and a handful of builtins. Everything else runs as a real
process found on PATH.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLog := logger.Nop()
		var logCloser io.Closer
		if fd, err := cfg.OpenAppLog(); err == nil {
			appLog = logger.New(fd)
			logCloser = fd
		}

		shell, err := core.NewShell(cfg, appLog)
		if err != nil {
			return err
		}

		var status int
		if commandFlag != "" {
			shell.RunCommand(commandFlag)
			status = shell.LastStatus()
		} else {
			status = shell.Run()
		}

		shell.Close()
		if logCloser != nil {
			logCloser.Close()
		}

		os.Exit(status)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.SetVersionTemplate("Simple Shell v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandFlag, "command", "c", "", "run a single command and exit")
}
