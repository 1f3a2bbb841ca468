package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/JPM1118/spookshow/internal/show"
)

var playLoops int

var playCmd = &cobra.Command{
	Use:       "play <sequence>",
	Short:     "Play a single sequence on its usual background",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{show.SceneGhosts, show.SceneBats, show.ScenePumpkin, show.ScenePumpkin2},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return runOnPanel("Spookshow: "+name, func(ctx context.Context, s *show.Show) error {
			return s.Solo(ctx, name, playLoops)
		})
	},
}

func init() {
	playCmd.Flags().IntVarP(&playLoops, "loops", "n", 1, "number of loops to play (0 repeats until quit)")
	rootCmd.AddCommand(playCmd)
}
