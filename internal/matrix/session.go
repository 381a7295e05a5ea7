package matrix

import (
	"fmt"
	"math"
	"sync"

	"github.com/tinrooster/cabledb/internal/distance"
	"github.com/tinrooster/cabledb/internal/topology"
)

// Rescale percentage bounds.
const (
	minPercent = 0.0
	maxPercent = 200.0
)

// Override is one editable cell that diverges from the computed matrix,
// in the shape the persistence layer stores.
type Override struct {
	Row   string
	Col   string
	Value int
}

// Session owns the custom-row list, the computed matrix, and its editable
// copy. Every topology mutation rebuilds the matrix and reseeds the
// editable copy as one atomic unit under the session mutex, so a caller
// never observes a matrix inconsistent with the topology that produced it.
type Session struct {
	mu       sync.Mutex
	custom   []topology.CustomRow
	topo     *topology.Topology
	computed *Snapshot
	editable *Snapshot
}

// NewSession builds a session for the given custom rows in creation order.
func NewSession(custom []topology.CustomRow) (*Session, error) {
	s := &Session{}
	if err := s.rebuild(custom); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild replaces the topology and both matrices. On failure the previous
// state is kept. Caller must hold mu (or be the constructor).
func (s *Session) rebuild(custom []topology.CustomRow) error {
	topo, err := topology.New(custom)
	if err != nil {
		return err
	}
	computed, err := Build(topo)
	if err != nil {
		return err
	}
	s.custom = custom
	s.topo = topo
	s.computed = computed
	s.editable = computed.Clone()
	return nil
}

// Rows returns the custom rows in creation order.
func (s *Session) Rows() []topology.CustomRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]topology.CustomRow, len(s.custom))
	copy(out, s.custom)
	return out
}

// AddRow appends a custom row, rebuilds the matrix, and reseeds the
// editable copy. Prior manual edits are discarded.
func (s *Session) AddRow(c topology.CustomRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]topology.CustomRow, len(s.custom), len(s.custom)+1)
	copy(next, s.custom)
	return s.rebuild(append(next, c))
}

// RemoveRow deletes the custom row with the given prefix, rebuilds, and
// reseeds.
func (s *Session) RemoveRow(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]topology.CustomRow, 0, len(s.custom))
	found := false
	for _, c := range s.custom {
		if c.Prefix == prefix {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return fmt.Errorf("%w: no custom row %q", topology.ErrInvalidCustomRow, prefix)
	}
	return s.rebuild(next)
}

// Distance computes the engine distance between two named positions on the
// session's current topology, independent of the matrix.
func (s *Session) Distance(a, b string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return distance.ComputeNamed(s.topo, a, b)
}

// Computed returns a copy of the pure computed matrix.
func (s *Session) Computed() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computed.Clone()
}

// Editable returns a copy of the editable matrix with overrides applied.
func (s *Session) Editable() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editable.Clone()
}

// SetCell writes one editable cell. The mirror cell is left alone: the two
// directions may diverge after a manual edit, which allows asymmetric
// real-world corrections.
func (s *Session) SetCell(row, col string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.editable.Index(row)
	if !ok {
		return fmt.Errorf("%w: %q", topology.ErrUnknownPosition, row)
	}
	j, ok := s.editable.Index(col)
	if !ok {
		return fmt.Errorf("%w: %q", topology.ErrUnknownPosition, col)
	}
	s.editable.Cells[i][j] = value
	return nil
}

// RescaleSeries multiplies every editable cell in the rows of positions
// matching the given prefix by percent/100, rounded to nearest. The
// percentage is clamped to [0, 200]. A no-op at 100 percent or with an
// empty prefix. Returns the number of matrix rows touched.
func (s *Session) RescaleSeries(prefix string, percent float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prefix == "" {
		return 0
	}
	if percent < minPercent {
		percent = minPercent
	}
	if percent > maxPercent {
		percent = maxPercent
	}
	if percent == 100 {
		return 0
	}
	factor := percent / 100
	touched := 0
	for i, name := range s.editable.Positions {
		if !matchesSeries(name, prefix) {
			continue
		}
		for j, v := range s.editable.Cells[i] {
			s.editable.Cells[i][j] = int(math.Round(float64(v) * factor))
		}
		touched++
	}
	return touched
}

// matchesSeries reports whether a position name belongs to a row-series
// prefix; the character after the prefix must be the start of the number.
func matchesSeries(name, prefix string) bool {
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return false
	}
	c := name[len(prefix)]
	return c >= '0' && c <= '9'
}

// Overrides returns every editable cell that diverges from the computed
// matrix, for persistence.
func (s *Session) Overrides() []Override {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Override
	for i := range s.editable.Cells {
		for j, v := range s.editable.Cells[i] {
			if v != s.computed.Cells[i][j] {
				out = append(out, Override{Row: s.editable.Positions[i], Col: s.editable.Positions[j], Value: v})
			}
		}
	}
	return out
}

// ApplyOverrides replays persisted overrides onto the editable matrix.
// Overrides naming positions absent from the current topology are stale
// and skipped.
func (s *Session) ApplyOverrides(overrides []Override) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range overrides {
		i, ok := s.editable.Index(o.Row)
		if !ok {
			continue
		}
		j, ok := s.editable.Index(o.Col)
		if !ok {
			continue
		}
		s.editable.Cells[i][j] = o.Value
	}
}
