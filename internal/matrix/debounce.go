package matrix

import (
	"sync"
	"time"
)

// DefaultQuiescence is the edit coalescing window. Committing every edit
// immediately is also correct; the window just avoids redundant writes
// during rapid consecutive edits of one cell.
const DefaultQuiescence = 300 * time.Millisecond

// CellEdit is one pending cell write.
type CellEdit struct {
	Row   string
	Col   string
	Value int
}

// Debouncer coalesces rapid edits of the same cell, committing the latest
// value once the cell has been quiet for the configured window. Edits to
// distinct cells do not delay each other.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	commit  func(CellEdit)
	pending map[[2]string]*pendingEdit
}

type pendingEdit struct {
	value int
	timer *time.Timer
}

// NewDebouncer creates a Debouncer that invokes commit for each settled
// edit. A non-positive window falls back to DefaultQuiescence.
func NewDebouncer(window time.Duration, commit func(CellEdit)) *Debouncer {
	if window <= 0 {
		window = DefaultQuiescence
	}
	return &Debouncer{
		window:  window,
		commit:  commit,
		pending: make(map[[2]string]*pendingEdit),
	}
}

// Edit records a cell write, restarting that cell's quiescence window.
func (d *Debouncer) Edit(row, col string, value int) {
	key := [2]string{row, col}
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pending[key]; ok {
		p.value = value
		p.timer.Reset(d.window)
		return
	}
	p := &pendingEdit{value: value}
	p.timer = time.AfterFunc(d.window, func() { d.fire(key) })
	d.pending[key] = p
}

// fire commits a settled edit. Called from the cell's timer.
func (d *Debouncer) fire(key [2]string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if ok {
		d.commit(CellEdit{Row: key[0], Col: key[1], Value: p.value})
	}
}

// Flush commits every pending edit immediately, in no particular order.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	var edits []CellEdit
	for key, p := range d.pending {
		p.timer.Stop()
		edits = append(edits, CellEdit{Row: key[0], Col: key[1], Value: p.value})
		delete(d.pending, key)
	}
	d.mu.Unlock()
	for _, e := range edits {
		d.commit(e)
	}
}
