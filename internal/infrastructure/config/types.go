package config

import (
	"errors"
	"fmt"
	"image/color"
)

// UIConfig is the root config for ui.json
type UIConfig struct {
	Display DisplayConfig `json:"display"`
	Menu    MenuConfig    `json:"menu"`
	List    ListConfig    `json:"list"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// MenuConfig configures menu button text
type MenuConfig struct {
	EmPx        float64      `json:"emPx"`        // Pixels per em
	FontSizeEm  float64      `json:"fontSizeEm"`  // Default button size
	HoverGrowEm float64      `json:"hoverGrowEm"` // Added to the size while hovered
	TextColor   ColorConfig  `json:"textColor"`
	Background  ColorConfig  `json:"background"`
	Shadow      ShadowConfig `json:"shadow"`
}

type ShadowConfig struct {
	OffsetX float64     `json:"offsetX"`
	OffsetY float64     `json:"offsetY"`
	Color   ColorConfig `json:"color"`
}

// ListConfig configures the paginated save list layout
type ListConfig struct {
	StartY        float64 `json:"startY"` // Y of the first row
	StepY         float64 `json:"stepY"`  // Distance between rows
	MaxY          float64 `json:"maxY"`   // Rows stop once the cursor passes this
	FontSizeEm    float64 `json:"fontSizeEm"`
	NavOffsetX    float64 `json:"navOffsetX"` // Horizontal distance of < and > from centre
	NavMarginY    float64 `json:"navMarginY"` // Distance of < and > from the bottom edge
	NavFontSizeEm float64 `json:"navFontSizeEm"`
}

type ColorConfig struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGBA converts the config to a premultiplied color
func (c ColorConfig) RGBA() color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// Default returns the layout the game ships with
func Default() *UIConfig {
	return &UIConfig{
		Display: DisplayConfig{
			Title:        "Save Slots",
			ScreenWidth:  960,
			ScreenHeight: 800,
			Scale:        1,
			Framerate:    60,
		},
		Menu: MenuConfig{
			EmPx:        12,
			FontSizeEm:  3,
			HoverGrowEm: 0.5,
			TextColor:   ColorConfig{A: 255},
			Background:  ColorConfig{R: 232, G: 224, B: 200, A: 255},
			Shadow: ShadowConfig{
				OffsetX: 3,
				OffsetY: 3,
				Color:   ColorConfig{A: 128},
			},
		},
		List: ListConfig{
			StartY:        160,
			StepY:         60,
			MaxY:          640,
			FontSizeEm:    3,
			NavOffsetX:    80,
			NavMarginY:    80,
			NavFontSizeEm: 3,
		},
	}
}

// Validate reports values the widgets cannot lay out
func (c *UIConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size %dx%d must be positive",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate %d must be positive", c.Display.Framerate))
	}
	if c.Menu.EmPx <= 0 {
		errs = append(errs, fmt.Errorf("menu: emPx %v must be positive", c.Menu.EmPx))
	}
	if c.Menu.FontSizeEm <= 0 {
		errs = append(errs, fmt.Errorf("menu: fontSizeEm %v must be positive", c.Menu.FontSizeEm))
	}
	if c.List.StepY <= 0 {
		errs = append(errs, fmt.Errorf("list: stepY %v must be positive", c.List.StepY))
	}
	if c.List.MaxY < c.List.StartY {
		errs = append(errs, fmt.Errorf("list: maxY %v is above startY %v", c.List.MaxY, c.List.StartY))
	}
	return errors.Join(errs...)
}
