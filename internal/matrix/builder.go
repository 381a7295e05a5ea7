// Package matrix assembles the full symmetric distance matrix and manages
// the editable override copy a user mutates between topology changes.
package matrix

import (
	"fmt"

	"github.com/tinrooster/cabledb/internal/distance"
	"github.com/tinrooster/cabledb/internal/topology"
)

// Snapshot is a square distance matrix indexed by the ordered position list.
type Snapshot struct {
	Positions []string
	Cells     [][]int

	index map[string]int
}

// Build computes the matrix for the given topology. Only the row ≤ col
// half is computed; the other half is mirrored, so symmetry holds by
// construction rather than by trusting the engine. Any engine error aborts
// the build — no partially filled matrix is returned.
func Build(topo *topology.Topology) (*Snapshot, error) {
	positions := topo.Positions()
	s := &Snapshot{
		Positions: make([]string, len(positions)),
		Cells:     make([][]int, len(positions)),
		index:     make(map[string]int, len(positions)),
	}
	for i, p := range positions {
		s.Positions[i] = p.String()
		s.index[s.Positions[i]] = i
		s.Cells[i] = make([]int, len(positions))
	}
	for i := range positions {
		for j := i; j < len(positions); j++ {
			d, err := distance.Compute(topo, positions[i], positions[j])
			if err != nil {
				return nil, fmt.Errorf("matrix: %s to %s: %w", positions[i], positions[j], err)
			}
			s.Cells[i][j] = d
			s.Cells[j][i] = d
		}
	}
	return s, nil
}

// Clone returns a deep copy sharing nothing with the receiver.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Positions: make([]string, len(s.Positions)),
		Cells:     make([][]int, len(s.Cells)),
		index:     make(map[string]int, len(s.index)),
	}
	copy(c.Positions, s.Positions)
	for name, i := range s.index {
		c.index[name] = i
	}
	for i, row := range s.Cells {
		c.Cells[i] = make([]int, len(row))
		copy(c.Cells[i], row)
	}
	return c
}

// Index returns the matrix index of a position name.
func (s *Snapshot) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Lookup returns the cell value for a pair of position names.
func (s *Snapshot) Lookup(row, col string) (int, bool) {
	i, ok := s.index[row]
	if !ok {
		return 0, false
	}
	j, ok := s.index[col]
	if !ok {
		return 0, false
	}
	return s.Cells[i][j], true
}
