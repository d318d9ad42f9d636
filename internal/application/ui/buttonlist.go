package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/system"
	"github.com/younwookim/slotmenu/internal/domain/save"
	"github.com/younwookim/slotmenu/internal/infrastructure/config"
)

// ButtonListState is a snapshot of a ButtonList's paging position
type ButtonListState struct {
	Entries     []save.Entry
	PageStart   int
	PageEnd     int
	CurrentPage int
}

// ButtonList shows save slots as buttons, one page at a time,
// with < and > buttons to page through them.
type ButtonList struct {
	theme    *Theme
	layout   config.ListConfig
	entries  []save.Entry
	pager    *Pager
	onSelect func(key string)
	centerX  float64

	rows []*MenuButton
	next *MenuButton
	prev *MenuButton
}

// NewButtonList builds the first page of entries centred on a screenW x screenH screen.
// Clicking a row calls onSelect with the row's slot key.
func NewButtonList(theme *Theme, layout config.ListConfig, entries []save.Entry, screenW, screenH int, onSelect func(key string)) *ButtonList {
	l := &ButtonList{
		theme:    theme,
		layout:   layout,
		entries:  entries,
		pager:    NewPager(len(entries), layout),
		onSelect: onSelect,
		centerX:  float64(screenW) / 2,
	}
	l.buildRows()

	navY := float64(screenH) - layout.NavMarginY
	l.next = NewMenuButton(theme, l.centerX+layout.NavOffsetX, navY, ">", "", func(string) { l.Next() }).
		WithFontSize(layout.NavFontSizeEm)
	l.prev = NewMenuButton(theme, l.centerX-layout.NavOffsetX, navY, "<", "", func(string) { l.Prev() }).
		WithFontSize(layout.NavFontSizeEm)
	return l
}

func (l *ButtonList) buildRows() {
	rows := l.pager.Rows()
	l.rows = make([]*MenuButton, 0, len(rows))
	for _, r := range rows {
		e := l.entries[r.Index]
		b := NewMenuButton(l.theme, l.centerX, r.Y, e.Title, e.Key, l.selected).
			WithFontSize(l.layout.FontSizeEm)
		l.rows = append(l.rows, b)
	}
}

func (l *ButtonList) killRows() {
	for _, b := range l.rows {
		b.Kill()
	}
}

func (l *ButtonList) selected(key string) {
	if l.onSelect != nil {
		l.onSelect(key)
	}
}

// Next shows the following page. See Pager.Next.
func (l *ButtonList) Next() bool {
	if !l.pager.Next() {
		return false
	}
	l.killRows()
	l.buildRows()
	return true
}

// Prev shows the previous page. See Pager.Prev.
func (l *ButtonList) Prev() bool {
	if !l.pager.Prev() {
		return false
	}
	l.killRows()
	l.buildRows()
	return true
}

// Update forwards input to the rows, then to the navigation buttons
func (l *ButtonList) Update(in system.InputState) {
	rows := append([]*MenuButton(nil), l.rows...)
	for _, b := range rows {
		b.Update(in)
	}
	l.prev.Update(in)
	l.next.Update(in)
}

// Draw renders the visible rows and the navigation buttons
func (l *ButtonList) Draw(screen *ebiten.Image) {
	for _, b := range l.rows {
		b.Draw(screen)
	}
	l.prev.Draw(screen)
	l.next.Draw(screen)
}

// Kill destroys every button in the list
func (l *ButtonList) Kill() {
	l.killRows()
	l.next.Kill()
	l.prev.Kill()
}

// State returns the current paging position
func (l *ButtonList) State() ButtonListState {
	return ButtonListState{
		Entries:     l.entries,
		PageStart:   l.pager.Start(),
		PageEnd:     l.pager.End(),
		CurrentPage: l.pager.Page(),
	}
}

// Rows returns the buttons on the current page
func (l *ButtonList) Rows() []*MenuButton { return l.rows }

// NextButton returns the > button
func (l *ButtonList) NextButton() *MenuButton { return l.next }

// PrevButton returns the < button
func (l *ButtonList) PrevButton() *MenuButton { return l.prev }
