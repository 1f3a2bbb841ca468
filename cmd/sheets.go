package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/JPM1118/spookshow/internal/anim"
	"github.com/JPM1118/spookshow/internal/assets"
	"github.com/JPM1118/spookshow/internal/config"
	"github.com/JPM1118/spookshow/internal/pngdec"
	"github.com/JPM1118/spookshow/internal/sprite"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Print spritesheet and sequence details (non-interactive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSheets(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

func writeSheets(out io.Writer, c config.Config) error {
	fsys := assets.FS(c.AssetsDir)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SHEET\tPATH\tSIZE\tCELL\tGRID")
	fmt.Fprintln(w, "─────\t────\t────\t────\t────")
	for _, s := range []struct {
		name string
		cfg  config.SheetConfig
	}{
		{"ghosts", c.Sheets.Ghosts},
		{"bats", c.Sheets.Bats},
		{"pumpkins", c.Sheets.Pumpkins},
	} {
		size, err := pngdec.Size(fsys, s.cfg.Path)
		if err != nil {
			return err
		}
		cols, rows := sprite.NewSheet(nil, s.cfg.Path, s.cfg.Width, s.cfg.Height).Grid(size)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%dx%d\t%dx%d\n",
			s.name, s.cfg.Path, size.X, size.Y, s.cfg.Width, s.cfg.Height, cols, rows)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	seqs, err := anim.LoadSequences(fsys, c.Show.Sequences)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(seqs))
	for name := range seqs {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQUENCE\tFRAMES\tLENGTH")
	fmt.Fprintln(w, "────────\t──────\t──────")
	for _, name := range names {
		var total time.Duration
		for _, f := range seqs[name] {
			total += f.Pause.Duration
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(seqs[name]), total.Round(10*time.Millisecond))
	}
	return w.Flush()
}
