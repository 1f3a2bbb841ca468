package notify

import (
	"fmt"
	"strings"
	"time"
)

// Entry records one scene starting.
type Entry struct {
	Scene     string
	Loop      int
	Timestamp time.Time
}

// Bar manages a FIFO queue of scene entries.
type Bar struct {
	items    []Entry
	maxStore int
	show     int
}

// NewBar creates a scene bar with the given buffer size. Render shows at
// most show entries.
func NewBar(maxStore, show int) *Bar {
	if show > maxStore {
		show = maxStore
	}
	return &Bar{
		items:    make([]Entry, 0, maxStore),
		maxStore: maxStore,
		show:     show,
	}
}

// Push adds an entry, trimming oldest if at capacity.
func (b *Bar) Push(e Entry) {
	b.items = append(b.items, e)
	if len(b.items) > b.maxStore {
		b.items = b.items[len(b.items)-b.maxStore:]
	}
}

// Visible returns the most recent entries, oldest first.
func (b *Bar) Visible() []Entry {
	if len(b.items) <= b.show {
		return b.items
	}
	return b.items[len(b.items)-b.show:]
}

// Current returns the latest entry.
func (b *Bar) Current() (Entry, bool) {
	if len(b.items) == 0 {
		return Entry{}, false
	}
	return b.items[len(b.items)-1], true
}

// ClearBefore removes entries from loops earlier than loop.
func (b *Bar) ClearBefore(loop int) {
	filtered := b.items[:0]
	for _, e := range b.items {
		if e.Loop >= loop {
			filtered = append(filtered, e)
		}
	}
	b.items = filtered
}

// Len returns the total number of buffered entries.
func (b *Bar) Len() int {
	return len(b.items)
}

// Render formats the visible entries for display within the given width.
func (b *Bar) Render(width int, now time.Time) string {
	visible := b.Visible()
	if len(visible) == 0 {
		return ""
	}

	parts := make([]string, 0, len(visible))
	for i, e := range visible {
		parts = append(parts, formatEntry(e, now, i == len(visible)-1))
	}
	result := strings.Join(parts, " › ")

	runes := []rune(result)
	if len(runes) > width {
		if width > 1 {
			result = "…" + string(runes[len(runes)-width+1:])
		} else {
			result = string(runes[len(runes)-width:])
		}
	}

	return result
}

func formatEntry(e Entry, now time.Time, current bool) string {
	if !current {
		return e.Scene
	}
	age := now.Sub(e.Timestamp).Truncate(time.Second)
	var ageStr string
	if age < time.Minute {
		ageStr = fmt.Sprintf("%ds", int(age.Seconds()))
	} else {
		ageStr = fmt.Sprintf("%dm", int(age.Minutes()))
	}
	return fmt.Sprintf("● %s #%d (%s)", e.Scene, e.Loop, ageStr)
}
