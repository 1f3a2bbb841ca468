package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JPM1118/spookshow/internal/display"
	"github.com/JPM1118/spookshow/internal/notify"
	"github.com/JPM1118/spookshow/internal/show"
)

const (
	headerLines = 2 // header + subheader
	footerLines = 2 // scene bar + status bar
	borderSize  = 2
	sceneBuffer = 20
	scenesShown = 3
)

// Messages

type frameMsg struct {
	frame *image.RGBA
}

// SceneMsg reports that the show has started a scene.
type SceneMsg struct {
	Scene show.Scene
}

// DoneMsg reports that the show has stopped. Err is nil when it ran to
// completion.
type DoneMsg struct {
	Err error
}

// Matrix is the Bubble Tea model that draws the emulated LED panel.
type Matrix struct {
	frames <-chan *image.RGBA
	frame  *image.RGBA
	size   image.Point
	title  string
	bar    *notify.Bar
	styles ledStyles
	loop   int
	shown  int
	width  int
	height int
	err    error
	now    func() time.Time
}

// NewMatrix creates a view of a cols×rows panel fed from frames.
func NewMatrix(title string, frames <-chan *image.RGBA, cols, rows int) Matrix {
	return Matrix{
		frames: frames,
		size:   image.Pt(cols, rows),
		title:  title,
		bar:    notify.NewBar(sceneBuffer, scenesShown),
		styles: ledStyles{},
		now:    time.Now,
	}
}

// Err returns the error the show stopped with, if any.
func (m Matrix) Err() error {
	return m.err
}

// Init starts waiting for the first frame.
func (m Matrix) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

func waitForFrame(frames <-chan *image.RGBA) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg{frame: f}
	}
}

// Update handles messages.
func (m Matrix) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.frame = msg.frame
		m.shown++
		return m, waitForFrame(m.frames)

	case SceneMsg:
		if msg.Scene.Loop > m.loop {
			m.loop = msg.Scene.Loop
			m.bar.ClearBefore(m.loop)
		}
		m.bar.Push(notify.Entry{
			Scene:     msg.Scene.Name,
			Loop:      msg.Scene.Loop,
			Timestamp: msg.Scene.At,
		})
		return m, nil

	case DoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the panel.
func (m Matrix) View() string {
	minWidth := m.size.X + borderSize
	minHeight := m.size.Y + borderSize + headerLines + footerLines
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("\n  Terminal too small (need %dx%d, got %dx%d)\n", minWidth, minHeight, m.width, m.height)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSubheader())
	b.WriteString("\n")
	b.WriteString(matrixStyle.Render(m.renderLEDs()))
	b.WriteString("\n")
	b.WriteString(m.renderSceneBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Matrix) renderHeader() string {
	title := headerStyle.Render(m.title)

	right := ""
	if m.loop > 0 {
		right = badgeStyle.Render(fmt.Sprintf("[loop %d]", m.loop))
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + right
}

func (m Matrix) renderSubheader() string {
	return subheaderStyle.Render(fmt.Sprintf("%d×%d  %d frames", m.size.X, m.size.Y, m.shown))
}

func (m Matrix) renderLEDs() string {
	var b strings.Builder
	for y := 0; y < m.size.Y; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < m.size.X; x++ {
			b.WriteString(m.styles.led(m.pixel(x, y)))
		}
	}
	return b.String()
}

func (m Matrix) pixel(x, y int) display.Colour {
	if m.frame == nil || !image.Pt(x, y).In(m.frame.Bounds()) {
		return display.Black
	}
	c := m.frame.RGBAAt(x, y)
	return display.Colour{R: c.R, G: c.G, B: c.B}
}

func (m Matrix) renderSceneBar() string {
	if m.err != nil {
		return errorStyle.Render("  " + truncate(m.err.Error(), m.width-4))
	}
	return sceneBarStyle.Render("  " + m.bar.Render(m.width-4, m.now()))
}

func (m Matrix) renderStatusBar() string {
	return statusBarStyle.Render("  q:quit")
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
