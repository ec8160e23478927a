package ui

import "texplore/internal/ansi"

// viewer is the modal preview overlay. pendingG arms the gg chord: a second
// g scrolls to the top, any other key disarms it.
type viewer struct {
	title    string
	lines    []ansi.Line
	scroll   int
	pendingG bool
}

func (v *viewer) maxScroll(height int) int {
	if n := len(v.lines) - height; n > 0 {
		return n
	}
	return 0
}

func (v *viewer) scrollBy(delta, height int) {
	v.scroll += delta
	if v.scroll < 0 {
		v.scroll = 0
	}
	if max := v.maxScroll(height); v.scroll > max {
		v.scroll = max
	}
}

func (v *viewer) top() { v.scroll = 0 }

func (v *viewer) bottom(height int) { v.scroll = v.maxScroll(height) }
