package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/slotmenu/internal/application/system"
)

// MenuButton is a text label that reacts to hover and click.
//
// The anchor (x, y) is the centre of the label unless Align moves it.
// Hovering grows the label by the theme's hover size and draws a drop shadow.
// Clicks call the injected handler with the button's key.
type MenuButton struct {
	theme   *Theme
	label   string
	key     string
	onClick func(key string)

	x, y  float64
	align text.Align

	originalSize float64
	size         float64
	width        float64 // Hit box, measured at the original size
	height       float64

	hovered      bool
	visible      bool
	inputEnabled bool
	killed       bool
}

// NewMenuButton creates a visible, enabled button at the theme's default size.
// onClick may be nil.
func NewMenuButton(theme *Theme, x, y float64, label, key string, onClick func(key string)) *MenuButton {
	b := &MenuButton{
		theme:        theme,
		label:        label,
		key:          key,
		onClick:      onClick,
		x:            x,
		y:            y,
		align:        text.AlignCenter,
		visible:      true,
		inputEnabled: true,
	}
	b.setOriginalSize(theme.FontSize())
	return b
}

// WithFontSize sets the button's resting size in em
func (b *MenuButton) WithFontSize(em float64) *MenuButton {
	b.setOriginalSize(em)
	return b
}

func (b *MenuButton) setOriginalSize(em float64) {
	b.originalSize = em
	b.size = em
	b.hovered = false
	b.measure()
}

func (b *MenuButton) measure() {
	b.width, b.height = b.theme.Measure(b.label, b.originalSize)
}

// SetLabel replaces the label text and re-measures the hit box
func (b *MenuButton) SetLabel(label string) {
	b.label = label
	b.measure()
}

// SetLocation moves the button's anchor
func (b *MenuButton) SetLocation(x, y float64) {
	b.x = x
	b.y = y
}

// Align sets which part of the label sits on the anchor's x
func (b *MenuButton) Align(a text.Align) {
	b.align = a
}

// Hide makes the button invisible and ignores input until revealed
func (b *MenuButton) Hide() *MenuButton {
	b.visible = false
	b.inputEnabled = false
	b.size = b.originalSize
	b.hovered = false
	return b
}

// Reveal makes the button visible and accepts input again
func (b *MenuButton) Reveal() *MenuButton {
	b.inputEnabled = true
	b.visible = true
	return b
}

// Kill destroys the button. A killed button never draws or clicks again.
func (b *MenuButton) Kill() {
	b.killed = true
	b.visible = false
	b.inputEnabled = false
	b.hovered = false
}

// Contains reports whether (x, y) lies in the button's hit box
func (b *MenuButton) Contains(x, y float64) bool {
	left := b.x - b.width/2
	switch b.align {
	case text.AlignStart:
		left = b.x
	case text.AlignEnd:
		left = b.x - b.width
	}
	top := b.y - b.height/2
	return x >= left && x < left+b.width && y >= top && y < top+b.height
}

// Update applies one frame of input: hover in/out, then click
func (b *MenuButton) Update(in system.InputState) {
	if b.killed || !b.inputEnabled {
		return
	}

	over := b.Contains(float64(in.MouseX), float64(in.MouseY))
	switch {
	case over && !b.hovered:
		b.hovered = true
		b.size += b.theme.hoverGrowEm
	case !over && b.hovered:
		b.hovered = false
		b.size = b.originalSize
	}

	if over && in.MouseClick && b.onClick != nil {
		b.onClick(b.key)
	}
}

// Draw renders the label, with its shadow while hovered
func (b *MenuButton) Draw(screen *ebiten.Image) {
	if b.killed || !b.visible {
		return
	}
	if b.hovered {
		b.theme.drawText(screen, b.label, b.x+b.theme.shadowOffsetX, b.y+b.theme.shadowOffsetY,
			b.size, b.align, b.theme.shadowColor)
	}
	b.theme.drawText(screen, b.label, b.x, b.y, b.size, b.align, b.theme.textColor)
}

// Label returns the button text
func (b *MenuButton) Label() string { return b.label }

// Key returns the key passed to the click handler
func (b *MenuButton) Key() string { return b.key }

// Location returns the anchor
func (b *MenuButton) Location() (x, y float64) { return b.x, b.y }

// FontSize returns the current size in em, including hover growth
func (b *MenuButton) FontSize() float64 { return b.size }

// Hovered reports whether the cursor is over the button
func (b *MenuButton) Hovered() bool { return b.hovered }

// Visible reports whether the button is drawn
func (b *MenuButton) Visible() bool { return b.visible }

// InputEnabled reports whether the button reacts to input
func (b *MenuButton) InputEnabled() bool { return b.inputEnabled }

// Killed reports whether the button was destroyed
func (b *MenuButton) Killed() bool { return b.killed }
