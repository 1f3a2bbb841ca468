package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JPM1118/spookshow/internal/anim"
	"github.com/JPM1118/spookshow/internal/show"
	"github.com/JPM1118/spookshow/internal/tui"
)

var (
	loops   int
	logFile string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Run the full Halloween show",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(loops)
	},
}

func init() {
	showCmd.Flags().IntVarP(&loops, "loops", "n", 0, "number of loops to play (0 repeats until quit)")
	rootCmd.AddCommand(showCmd)
}

func runShow(loops int) error {
	return runOnPanel("Spookshow", func(ctx context.Context, s *show.Show) error {
		return s.Run(ctx, loops)
	})
}

// runOnPanel builds the show against the terminal panel and runs play
// alongside the Bubble Tea program. Quitting the program cancels play.
func runOnPanel(title string, play func(ctx context.Context, s *show.Show) error) error {
	closeLog, err := setupLogging(logPath())
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("config %s, assets %q", cfgSource, cfg.AssetsDir)

	var program *tea.Program
	panel := tui.NewPanel(2)
	s, _, err := build(cfg, panel, anim.RealClock{}, show.WithSceneHook(func(sc show.Scene) {
		program.Send(tui.SceneMsg{Scene: sc})
	}))
	if err != nil {
		return err
	}

	model := tui.NewMatrix(title, panel.Frames(), cfg.Display.Width, cfg.Display.Height)
	program = tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := play(ctx, s)
		if err != nil {
			log.Printf("show stopped: %v", err)
		}
		program.Send(tui.DoneMsg{Err: err})
	}()

	finalModel, err := program.Run()
	cancel() // Stop show
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	if m, ok := finalModel.(tui.Matrix); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func logPath() string {
	if logFile != "" {
		return logFile
	}
	return cfg.LogFile
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty so nothing is written over the panel.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "spookshow")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { f.Close() }, nil
}
