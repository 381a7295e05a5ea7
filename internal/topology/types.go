// Package topology models the physical arrangement of equipment racks:
// a fixed ordered sequence of standard rows plus user-appended custom rows.
package topology

import "fmt"

// EndpointMode selects which offset formula applies when computing distances
// into or out of a custom row.
type EndpointMode string

const (
	// ModeEndpoint treats the custom row as collocated with its anchor.
	ModeEndpoint EndpointMode = "endpoint"
	// ModeDirect routes through the anchor position with a recursive lookup.
	ModeDirect EndpointMode = "direct"
)

// ParseEndpointMode converts a stored or user-supplied mode string.
func ParseEndpointMode(s string) (EndpointMode, error) {
	switch EndpointMode(s) {
	case ModeEndpoint, ModeDirect:
		return EndpointMode(s), nil
	}
	return "", fmt.Errorf("topology: unknown endpoint mode %q", s)
}

// Anchor references a custom row can name. Any other value uses the
// generic fallback formula.
const (
	RefTD15       = "TD15"
	RefMainCloset = "Main Closet Riser"
	RefRoofAccess = "Roof Access Riser"
)

// Row is a named physical row of rack positions. StartNum is the external
// number of the row's first position (1 for standard rows); custom rows may
// begin at an arbitrary number.
type Row struct {
	Prefix        string
	StartNum      int
	PositionCount int
	SequenceIndex int
	Custom        bool

	// Custom-row routing fields; zero-valued for standard rows.
	EndpointReference string
	EndpointMode      EndpointMode
	FixedOffset       int
}

// EndNum returns the external number of the row's last position.
func (r Row) EndNum() int { return r.StartNum + r.PositionCount - 1 }

// LocalNum converts an external position number to the row-local 1-based
// index used for in-row gap computation.
func (r Row) LocalNum(number int) int { return number - r.StartNum + 1 }

// CustomRow is the user-supplied definition of a branch row, as persisted
// and as accepted over the API.
type CustomRow struct {
	Prefix            string
	StartNum          int
	EndNum            int
	EndpointReference string
	EndpointMode      EndpointMode
	FixedOffset       int
}

// PositionCount returns the number of discrete positions the row spans.
func (c CustomRow) PositionCount() int { return c.EndNum - c.StartNum + 1 }

// Position identifies a single rack position by row prefix and external
// number. The wire form is the prefix followed by a 2-digit zero-padded
// number, e.g. TD05.
type Position struct {
	Prefix string
	Number int
}

// String renders the canonical wire form.
func (p Position) String() string { return fmt.Sprintf("%s%02d", p.Prefix, p.Number) }
