package topology

import (
	"fmt"
	"strconv"
	"strings"
)

// Topology is the backbone: standard rows in fixed order followed by custom
// rows in creation order, with dense 0-based sequence indices. A Topology is
// immutable once built; topology changes build a new one.
type Topology struct {
	rows     []Row
	byPrefix map[string]int
}

// New builds a Topology from the fixed standard rows plus the given custom
// rows in creation order. It rejects duplicate prefixes and inverted number
// ranges with ErrInvalidCustomRow.
func New(custom []CustomRow) (*Topology, error) {
	t := &Topology{
		rows:     StandardRows(),
		byPrefix: make(map[string]int, len(standardRows)+len(custom)),
	}
	for i := range t.rows {
		t.rows[i].SequenceIndex = i
		t.byPrefix[t.rows[i].Prefix] = i
	}
	for _, c := range custom {
		if c.Prefix == "" {
			return nil, fmt.Errorf("%w: empty prefix", ErrInvalidCustomRow)
		}
		if c.StartNum > c.EndNum {
			return nil, fmt.Errorf("%w: %s: start %d > end %d", ErrInvalidCustomRow, c.Prefix, c.StartNum, c.EndNum)
		}
		if _, dup := t.byPrefix[c.Prefix]; dup {
			return nil, fmt.Errorf("%w: duplicate prefix %s", ErrInvalidCustomRow, c.Prefix)
		}
		row := Row{
			Prefix:            c.Prefix,
			StartNum:          c.StartNum,
			PositionCount:     c.PositionCount(),
			SequenceIndex:     len(t.rows),
			Custom:            true,
			EndpointReference: c.EndpointReference,
			EndpointMode:      c.EndpointMode,
			FixedOffset:       c.FixedOffset,
		}
		t.byPrefix[row.Prefix] = len(t.rows)
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Rows returns the rows in sequence order. Callers must not modify the
// returned slice.
func (t *Topology) Rows() []Row { return t.rows }

// RowByPrefix looks up a row by its prefix.
func (t *Topology) RowByPrefix(prefix string) (Row, error) {
	i, ok := t.byPrefix[prefix]
	if !ok {
		return Row{}, fmt.Errorf("%w: prefix %q", ErrUnknownPosition, prefix)
	}
	return t.rows[i], nil
}

// RowBySequence returns the row at the given sequence index. A missing index
// during a backbone walk indicates a topology gap.
func (t *Topology) RowBySequence(idx int) (Row, error) {
	if idx < 0 || idx >= len(t.rows) {
		return Row{}, fmt.Errorf("%w: no row at sequence index %d", ErrBrokenSequence, idx)
	}
	return t.rows[idx], nil
}

// Resolve validates that p names a real position: known prefix, number
// within the owning row's range.
func (t *Topology) Resolve(p Position) (Row, error) {
	row, err := t.RowByPrefix(p.Prefix)
	if err != nil {
		return Row{}, err
	}
	if p.Number < row.StartNum || p.Number > row.EndNum() {
		return Row{}, fmt.Errorf("%w: %s number %d outside [%d,%d]",
			ErrUnknownPosition, p.Prefix, p.Number, row.StartNum, row.EndNum())
	}
	return row, nil
}

// Positions expands every row into its numbered positions: standard rows in
// topology order, then each custom row in its own numeric order.
func (t *Topology) Positions() []Position {
	var out []Position
	for _, row := range t.rows {
		for n := row.StartNum; n <= row.EndNum(); n++ {
			out = append(out, Position{Prefix: row.Prefix, Number: n})
		}
	}
	return out
}

// PositionCount returns the total number of positions across all rows.
func (t *Topology) PositionCount() int {
	total := 0
	for _, row := range t.rows {
		total += row.PositionCount
	}
	return total
}

// ParsePosition parses the wire form <prefix><number>, e.g. TD05 or TX12.
// The prefix is the leading non-digit run; the remainder must be a number.
// The parsed position is validated against the topology.
func (t *Topology) ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == 0 || i == len(s) {
		return Position{}, fmt.Errorf("%w: malformed position %q", ErrUnknownPosition, s)
	}
	num, err := strconv.Atoi(s[i:])
	if err != nil {
		return Position{}, fmt.Errorf("%w: malformed position %q", ErrUnknownPosition, s)
	}
	p := Position{Prefix: strings.ToUpper(s[:i]), Number: num}
	if _, err := t.Resolve(p); err != nil {
		return Position{}, err
	}
	return p, nil
}
