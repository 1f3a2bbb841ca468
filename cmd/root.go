package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JPM1118/spookshow/internal/config"
)

var (
	configPath string
	cfgSource  string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spookshow",
	Short: "Halloween light show for a 53×11 LED matrix",
	Long: `Spookshow plays a looping Halloween animation (ghosts, bats, a fade to
night sky, a flickering pumpkin and a scrolling banner) on an emulated
Galactic Unicorn LED matrix in the terminal.

Run without arguments to start the show.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.Path()
		}
		loaded, err := config.LoadFrom(path)
		if err != nil {
			return err
		}
		cfg = loaded
		cfgSource = path
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(0)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/spookshow/config.yml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write log output to this file")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
