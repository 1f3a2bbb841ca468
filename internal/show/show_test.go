package show

import (
	"context"
	"errors"
	"image"
	"io"
	"log"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/JPM1118/spookshow/internal/anim"
	"github.com/JPM1118/spookshow/internal/display"
	"github.com/JPM1118/spookshow/internal/sprite"
	"github.com/JPM1118/spookshow/internal/testutil"
)

const testSequences = `
ghosts:
  - frame: [[0, 0, 0, 0]]
    pause: 0.1
  - frame: [[1, 0, 1, 0]]
    pause: 0.1
bats:
  - frame: [[0, 0, 2, 0]]
    pause: 0.2
pumpkin:
  - frame: [[0, 0, 0, 0]]
    pause: 0.5
pumpkin2:
  - frame: [[1, 0, 0, 0]]
    pause: 0.5
  - frame: [[2, 0, 0, 0]]
    pause: 0.5
`

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() Config {
	return Config{
		Black:       display.Black,
		Sky:         display.Colour{R: 20, G: 13, B: 237},
		Red:         display.Colour{R: 96},
		Yellow:      display.Colour{R: 127, G: 80},
		FadeSteps:   10,
		FadeDelay:   100 * time.Millisecond,
		Hold:        time.Second,
		PumpkinClip: image.Rect(0, 0, 13, 11),
		Font:        "bitmap",
		Banner: anim.Banner{
			Text:       "Boo",
			Window:     image.Rect(14, 0, 55, 11),
			Y:          -1,
			Scale:      1,
			Foreground: display.Colour{R: 96},
			Shadow:     display.Colour{R: 127, G: 80},
			Delay:      100 * time.Millisecond,
		},
	}
}

func newTestShow(t *testing.T, opts ...Option) (*Show, *testutil.Recorder) {
	t.Helper()
	rec := &testutil.Recorder{}
	seqs, err := anim.ParseSequences([]byte(testSequences))
	if err != nil {
		t.Fatal(err)
	}
	sheets := Sheets{
		Ghosts:   sprite.NewSheet(rec, "pacman_ghosts.png", 11, 11),
		Bats:     sprite.NewSheet(rec, "bat3.png", 31, 13),
		Pumpkins: sprite.NewSheet(rec, "pumpkins.png", 13, 11),
	}
	st := anim.Stage{Surface: rec, Out: rec, Clock: rec}
	s, err := New(st, testConfig(), sheets, seqs, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s, rec
}

func indexOf(ops []string, op string, from int) int {
	for i := from; i < len(ops); i++ {
		if ops[i] == op {
			return i
		}
	}
	return -1
}

func TestRun_SceneOrder(t *testing.T) {
	var scenes []string
	s, _ := newTestShow(t, WithSceneHook(func(sc Scene) {
		scenes = append(scenes, sc.Name)
	}))

	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		SceneGhosts, SceneFade, SceneBats, SceneHold,
		ScenePumpkin, SceneBanner, ScenePumpkin2, SceneHold,
	}
	if !reflect.DeepEqual(scenes, want) {
		t.Errorf("scenes = %v, want %v", scenes, want)
	}
}

func TestRun_UpdateCount(t *testing.T) {
	s, rec := newTestShow(t)
	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	// ghosts 2 + fade 10 + bats 1 + hold 1 + pumpkin 1 + banner (21+41+2) + pumpkin2 2 + hold 1
	want := 2 + 10 + 1 + 1 + 1 + 64 + 2 + 1
	if rec.Updates != want {
		t.Errorf("Updates = %d, want %d", rec.Updates, want)
	}
}

func TestRun_ClipSequence(t *testing.T) {
	s, rec := newTestShow(t)
	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()

	if ops[0] != "font(bitmap)" {
		t.Errorf("first op = %q, want font(bitmap)", ops[0])
	}

	pumpkinClip := indexOf(ops, "clip(0,0,13,11)", 0)
	pumpkinDraw := indexOf(ops, "decode(pumpkins.png,0,0,1,(0,0)-(13,11))", 0)
	bannerClip := indexOf(ops, "clip(14,0,41,11)", 0)
	unclip := indexOf(ops, "unclip", 0)
	pumpkin2Draw := indexOf(ops, "decode(pumpkins.png,0,0,1,(13,0)-(26,11))", 0)

	if !(pumpkinClip >= 0 && pumpkinClip < pumpkinDraw && pumpkinDraw < bannerClip && bannerClip < unclip && unclip < pumpkin2Draw) {
		t.Errorf("clip order wrong: pumpkin clip %d, pumpkin draw %d, banner clip %d, unclip %d, pumpkin2 draw %d",
			pumpkinClip, pumpkinDraw, bannerClip, unclip, pumpkin2Draw)
	}

	// Red pen and thickness are set before the banner clip.
	thickness := indexOf(ops, "thickness(1)", pumpkinDraw)
	if thickness < 0 || thickness > bannerClip || ops[thickness-1] != "pen(96,0,0)" {
		t.Errorf("expected pen(96,0,0), thickness(1) before banner clip; got thickness at %d", thickness)
	}
}

func TestRun_HoldClearsToBlack(t *testing.T) {
	s, rec := newTestShow(t)
	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()
	tail := ops[len(ops)-4:]
	want := []string{"pen(0,0,0)", "clear", "update", "sleep(1s)"}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("final ops = %q, want %q", tail, want)
	}
}

func TestRun_FadeUsesSky(t *testing.T) {
	s, rec := newTestShow(t)
	if err := s.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()
	if indexOf(ops, "pen(18,11,213)", 0) < 0 {
		t.Error("fade should reach pen(18,11,213) at its last step")
	}
	batDraw := indexOf(ops, "decode(bat3.png,2,0,1,(0,0)-(31,13))", 0)
	if batDraw < 2 {
		t.Fatalf("bat decode not found in ops")
	}
	if ops[batDraw-2] != "pen(20,13,237)" {
		t.Errorf("bats should clear to sky before drawing, got %q", ops[batDraw-2])
	}
}

func TestRun_Loops(t *testing.T) {
	var loops []int
	s, _ := newTestShow(t, WithSceneHook(func(sc Scene) {
		if sc.Name == SceneGhosts {
			loops = append(loops, sc.Loop)
		}
	}))

	if err := s.Run(context.Background(), 3); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loops, []int{1, 2, 3}) {
		t.Errorf("loops = %v, want [1 2 3]", loops)
	}
}

func TestRun_ForeverStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loops := 0
	s, _ := newTestShow(t, WithSceneHook(func(sc Scene) {
		if sc.Name == SceneGhosts {
			loops++
			if loops == 5 {
				cancel()
			}
		}
	}))

	err := s.Run(ctx, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if loops != 5 {
		t.Errorf("loops = %d, want 5", loops)
	}
}

func TestRun_PropagatesDrawError(t *testing.T) {
	s, rec := newTestShow(t)
	rec.DecodeErr = errors.New("pacman_ghosts.png: file not found")

	err := s.Run(context.Background(), 0)
	if !errors.Is(err, rec.DecodeErr) {
		t.Fatalf("err = %v, want wrapped decode error", err)
	}
	if !strings.Contains(err.Error(), "ghosts") {
		t.Errorf("err = %q, should name the sequence", err)
	}
}

func TestNew_MissingSequence(t *testing.T) {
	seqs, err := anim.ParseSequences([]byte("ghosts: []\nbats: []\npumpkin: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	rec := &testutil.Recorder{}
	_, err = New(anim.Stage{Surface: rec, Out: rec, Clock: rec}, testConfig(), Sheets{}, seqs)
	if !errors.Is(err, anim.ErrUnknownSequence) {
		t.Errorf("err = %v, want ErrUnknownSequence", err)
	}
}

func TestSolo(t *testing.T) {
	var scenes []Scene
	s, rec := newTestShow(t, WithSceneHook(func(sc Scene) {
		scenes = append(scenes, sc)
	}))

	if err := s.Solo(context.Background(), SceneBats, 2); err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 2 || scenes[1].Loop != 2 {
		t.Errorf("scenes = %+v, want two bats loops", scenes)
	}
	if rec.Updates != 2 {
		t.Errorf("Updates = %d, want 2", rec.Updates)
	}

	if err := s.Solo(context.Background(), "zombies", 1); !errors.Is(err, anim.ErrUnknownSequence) {
		t.Errorf("Solo(zombies) err = %v, want ErrUnknownSequence", err)
	}
}
