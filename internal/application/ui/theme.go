// Package ui provides the menu widgets: labeled buttons and a paginated save list.
//
// Widgets live in screen space and are driven by the owning scene, which
// forwards each frame's input to Update and renders them in Draw.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/slotmenu/internal/infrastructure/config"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme holds the font and colors shared by all widgets
type Theme struct {
	source        *text.GoTextFaceSource
	emPx          float64
	fontSizeEm    float64
	hoverGrowEm   float64
	textColor     color.RGBA
	background    color.RGBA
	shadowColor   color.RGBA
	shadowOffsetX float64
	shadowOffsetY float64
}

// NewTheme creates a theme using the Go regular font
func NewTheme(cfg config.MenuConfig) (*Theme, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &Theme{
		source:        src,
		emPx:          cfg.EmPx,
		fontSizeEm:    cfg.FontSizeEm,
		hoverGrowEm:   cfg.HoverGrowEm,
		textColor:     cfg.TextColor.RGBA(),
		background:    cfg.Background.RGBA(),
		shadowColor:   cfg.Shadow.Color.RGBA(),
		shadowOffsetX: cfg.Shadow.OffsetX,
		shadowOffsetY: cfg.Shadow.OffsetY,
	}, nil
}

// Face returns the font face for a size in em
func (t *Theme) Face(sizeEm float64) *text.GoTextFace {
	return &text.GoTextFace{Source: t.source, Size: sizeEm * t.emPx}
}

// FontSize returns the default button size in em
func (t *Theme) FontSize() float64 {
	return t.fontSizeEm
}

// Background returns the menu background color
func (t *Theme) Background() color.RGBA {
	return t.background
}

// Measure returns the rendered size of s at sizeEm
func (t *Theme) Measure(s string, sizeEm float64) (w, h float64) {
	face := t.Face(sizeEm)
	return text.Measure(s, face, face.Size)
}

// DrawText draws s centred on (x, y) in the theme's text color
func (t *Theme) DrawText(screen *ebiten.Image, s string, x, y, sizeEm float64) {
	t.drawText(screen, s, x, y, sizeEm, text.AlignCenter, t.textColor)
}

func (t *Theme) drawText(screen *ebiten.Image, s string, x, y, sizeEm float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, t.Face(sizeEm), op)
}
