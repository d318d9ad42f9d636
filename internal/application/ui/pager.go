package ui

import "github.com/younwookim/slotmenu/internal/infrastructure/config"

// PageStride is how far Prev moves back and how many entries Next needs
// beyond the page start. It stays 9 whatever the layout fits per page, so a
// list of exactly 9 pages forward onto an empty page.
const PageStride = 9

// Row is one visible list entry and its vertical position
type Row struct {
	Index int
	Y     float64
}

// Pager tracks which slice of a list is on screen
type Pager struct {
	total  int
	layout config.ListConfig
	start  int // First visible index
	end    int // One past the last visible index
	page   int
}

// NewPager lays out the first page of total entries
func NewPager(total int, layout config.ListConfig) *Pager {
	if total < 0 {
		total = 0
	}
	p := &Pager{total: total, layout: layout}
	p.end = p.start + p.fit(p.start)
	return p
}

// fit counts the rows that go on a page starting at start. A row is placed,
// then the cursor moves down, and placement stops once it passes MaxY or the
// page holds PageStride rows.
func (p *Pager) fit(start int) int {
	n := 0
	y := p.layout.StartY
	for i := start; i < p.total && n < PageStride; i++ {
		n++
		y += p.layout.StepY
		if y > p.layout.MaxY {
			break
		}
	}
	return n
}

// Next moves past the visible rows when at least PageStride entries remain
// from the current start. It reports whether the page changed.
func (p *Pager) Next() bool {
	if p.total-p.start < PageStride {
		return false
	}
	p.page++
	p.start = p.end
	p.end = p.start + p.fit(p.start)
	return true
}

// Prev moves back PageStride entries. It is a no-op on the first page.
func (p *Pager) Prev() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	p.start -= PageStride
	if p.start < 0 {
		p.start = 0
	}
	p.end = p.start + p.fit(p.start)
	return true
}

// Rows returns the visible entries with their y positions
func (p *Pager) Rows() []Row {
	rows := make([]Row, 0, p.end-p.start)
	for i := p.start; i < p.end; i++ {
		rows = append(rows, Row{
			Index: i,
			Y:     p.layout.StartY + p.layout.StepY*float64(i-p.start),
		})
	}
	return rows
}

// Start returns the first visible index
func (p *Pager) Start() int { return p.start }

// End returns one past the last visible index
func (p *Pager) End() int { return p.end }

// Page returns the zero-based page number
func (p *Pager) Page() int { return p.page }

// Len returns the number of entries being paged
func (p *Pager) Len() int { return p.total }
