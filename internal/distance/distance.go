// Package distance computes physical cable-run lengths between rack
// positions on the backbone described by a topology.Topology.
package distance

import (
	"github.com/tinrooster/cabledb/internal/topology"
)

// Length-unit constants for the cable model.
const (
	// SelfLoop is the minimum intra-position jumper length, returned for a
	// position paired with itself and used as the base of every run.
	SelfLoop = 22
	// InterRowJump is the fixed cost of crossing from one row to the next.
	InterRowJump = 8
	// Connector is the endpoint hardware allowance added once to every
	// cross-row result regardless of path.
	Connector = 22
	// RiserPenalty is the detour past the riser access point on the riser
	// row, paid by positions at or beyond topology.RiserThreshold.
	RiserPenalty = 12
	// WraparoundPenalty is the fixed correction for the wraparound row,
	// offset by how close the position sits to the row's start.
	WraparoundPenalty = 16
	// FallbackBase is the assumed run to a custom row whose endpoint
	// reference names no known anchor.
	FallbackBase = 60
)

// circularGap is the shorter traversal between positions x and y of an
// n-position row modeled as a loop, at 2 length units per adjacency step.
func circularGap(x, y, n int) int {
	d := x - y
	if d < 0 {
		d = -d
	}
	d *= 2
	if alt := 2*(n-1) - d; alt < d {
		return alt
	}
	return d
}

// Compute returns the cable-run length between positions a and b on the
// given topology. It is pure and deterministic, and symmetric for all
// standard-row pairs; pairs where both endpoints are custom rows resolve by
// the first operand's row (see ComputeNamed callers for the consequence).
func Compute(topo *topology.Topology, a, b topology.Position) (int, error) {
	rowA, err := topo.Resolve(a)
	if err != nil {
		return 0, err
	}
	rowB, err := topo.Resolve(b)
	if err != nil {
		return 0, err
	}

	if a == b {
		return SelfLoop, nil
	}
	if rowA.Prefix == rowB.Prefix {
		return SelfLoop + circularGap(rowA.LocalNum(a.Number), rowA.LocalNum(b.Number), rowA.PositionCount), nil
	}

	// Cross-row. A custom endpoint replaces the backbone walk entirely;
	// the first custom operand's rule wins when both are custom.
	var run int
	switch {
	case rowA.Custom:
		run, err = customRun(topo, rowA, a, b)
	case rowB.Custom:
		run, err = customRun(topo, rowB, b, a)
	default:
		run, err = backboneRun(topo, rowA, a, rowB, b)
	}
	if err != nil {
		return 0, err
	}
	return run + Connector, nil
}

// ComputeNamed parses both wire-form position names and computes their
// distance. This backs the direct two-position query feature.
func ComputeNamed(topo *topology.Topology, a, b string) (int, error) {
	pa, err := topo.ParsePosition(a)
	if err != nil {
		return 0, err
	}
	pb, err := topo.ParsePosition(b)
	if err != nil {
		return 0, err
	}
	return Compute(topo, pa, pb)
}

// backboneRun walks the backbone between two standard-row positions in
// increasing sequence order: exit gap plus inter-row jump at each traversed
// row, entry gap at the destination, boundary corrections after.
func backboneRun(topo *topology.Topology, rowA topology.Row, a topology.Position, rowB topology.Row, b topology.Position) (int, error) {
	start, startRow := a, rowA
	end, endRow := b, rowB
	if startRow.SequenceIndex > endRow.SequenceIndex {
		start, end = end, start
		startRow, endRow = endRow, startRow
	}

	total := SelfLoop
	cur := startRow
	curNum := startRow.LocalNum(start.Number)
	for cur.SequenceIndex != endRow.SequenceIndex {
		total += circularGap(curNum, cur.PositionCount, cur.PositionCount)
		total += InterRowJump
		next, err := topo.RowBySequence(cur.SequenceIndex + 1)
		if err != nil {
			return 0, err
		}
		cur = next
		curNum = 1
	}
	total += circularGap(curNum, endRow.LocalNum(end.Number), endRow.PositionCount)

	total += boundaryCorrection(rowA, a)
	total += boundaryCorrection(rowB, b)
	return total, nil
}

// boundaryCorrection applies the riser and wraparound row adjustments for a
// single endpoint of a cross-row pair.
func boundaryCorrection(row topology.Row, p topology.Position) int {
	c := 0
	if row.Prefix == topology.RiserPrefix && p.Number >= topology.RiserThreshold {
		c += RiserPenalty
	}
	if row.Prefix == topology.WraparoundPrefix {
		c += WraparoundPenalty - circularGap(row.LocalNum(p.Number), 1, row.PositionCount)
	}
	return c
}

// customRun resolves a cross-row pair where in lies in the custom row and
// other is the opposite endpoint, per the row's endpoint reference and mode.
func customRun(topo *topology.Topology, row topology.Row, in, other topology.Position) (int, error) {
	gap := circularGap(row.LocalNum(in.Number), other.Number, row.PositionCount)

	switch row.EndpointReference {
	case topology.RefTD15:
		if row.EndpointMode == topology.ModeDirect {
			d, err := Compute(topo, topology.AnchorTD15, other)
			if err != nil {
				return 0, err
			}
			return d + row.FixedOffset, nil
		}
		return SelfLoop + row.FixedOffset + gap, nil
	case topology.RefMainCloset:
		d, err := Compute(topo, topology.AnchorMainCloset, other)
		if err != nil {
			return 0, err
		}
		return d + row.FixedOffset, nil
	case topology.RefRoofAccess:
		d, err := Compute(topo, topology.AnchorRoofAccess, other)
		if err != nil {
			return 0, err
		}
		return d + row.FixedOffset, nil
	default:
		return FallbackBase + row.FixedOffset + gap, nil
	}
}
