package cmd

import (
	"os"
	"time"

	"github.com/dylangresham/simple-shell/core/ttylog"
	"github.com/spf13/cobra"
)

var maxSleep time.Duration

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play LOG",
	Short: "Play a recorded session.",
	Long:  `Plays a recorded asciicast session back to the current terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		sink := ttylog.NewRealTimePlayback(maxSleep, ttylog.NewClientOutput(cmd.OutOrStdout()))
		return ttylog.Replay(ttylog.NewAsciicastLogSource(fd), sink)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().DurationVar(&maxSleep, "max-sleep", 3*time.Second,
		"maximum pause between events during playback")
}
