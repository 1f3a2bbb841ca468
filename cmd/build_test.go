package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/JPM1118/spookshow/internal/config"
	"github.com/JPM1118/spookshow/internal/display"
	"github.com/JPM1118/spookshow/internal/show"
	"github.com/JPM1118/spookshow/internal/testutil"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestBuild_RunsOneLoop(t *testing.T) {
	rec := &testutil.Recorder{}

	var canvas *display.Canvas
	var beside, corner display.Colour
	s, canvas, err := build(config.Defaults(), rec, rec, show.WithSceneHook(func(sc show.Scene) {
		if sc.Name == show.SceneBanner {
			beside = canvas.At(6, 5)
			corner = canvas.At(0, 0)
		}
	}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// ghosts 49 + fade 10 + bats 43 + hold 1 + pumpkin 6 + banner 155 + pumpkin2 5 + hold 1
	if rec.Updates != 270 {
		t.Errorf("Updates = %d, want 270", rec.Updates)
	}
	if beside != (display.Colour{R: 200, G: 80}) {
		t.Errorf("pumpkin beside banner = %s, want (200,80,0)", beside)
	}
	if corner != display.Black {
		t.Errorf("transparent pumpkin corner = %s, want black", corner)
	}
	if got := canvas.At(26, 5); got != display.Black {
		t.Errorf("after final hold pixel = %s, want black", got)
	}
}

func TestBuild_CachesSprites(t *testing.T) {
	c := config.Defaults()
	c.Display.CacheSprites = true
	rec := &testutil.Recorder{}

	s, _, err := build(c, rec, rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Solo(context.Background(), show.ScenePumpkin, 2); err != nil {
		t.Fatal(err)
	}
	if rec.Updates != 12 {
		t.Errorf("Updates = %d, want 12", rec.Updates)
	}
}

func TestBuild_MissingSequences(t *testing.T) {
	c := config.Defaults()
	c.Show.Sequences = "nope.yml"
	rec := &testutil.Recorder{}

	if _, _, err := build(c, rec, rec); err == nil {
		t.Error("missing sequences file should fail")
	}
}

func TestBuild_UnknownFont(t *testing.T) {
	c := config.Defaults()
	c.Banner.Font = "serif"
	rec := &testutil.Recorder{}

	s, _, err := build(c, rec, rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(context.Background(), 1); err == nil {
		t.Error("unknown font should fail the run")
	}
	if rec.Updates != 0 {
		t.Errorf("Updates = %d, want 0", rec.Updates)
	}
}

func TestWriteSheets(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSheets(&buf, config.Defaults()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	wants := []string{
		"pacman_ghosts.png", "44x22", "4x2",
		"bat3.png", "93x13", "31x13", "3x1",
		"pumpkins.png", "52x11", "4x1",
		"ghosts", "49", "3.92s",
		"pumpkin2", "2.8s",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestSetupLogging(t *testing.T) {
	path := t.TempDir() + "/spookshow.log"
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Print("boo")
	closeLog()
	log.SetOutput(io.Discard)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "boo") {
		t.Errorf("log file = %q, want it to contain boo", data)
	}
}
