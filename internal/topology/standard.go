package topology

// Fixed standard topology: the rack rows of the facility core in physical
// traversal order. Position counts are surveyed, not configurable.
//
// Two rows get boundary corrections during cross-row computation:
//   - TD is the riser row: positions at or past RiserThreshold sit beyond
//     the riser access point and pay a fixed detour.
//   - TA is the wraparound row: it physically loops back near its own
//     start, shortening the otherwise-assumed traversal.
const (
	WraparoundPrefix = "TA"
	RiserPrefix      = "TD"
	RiserThreshold   = 14
)

// Anchor positions referenced by custom-row formulas.
var (
	AnchorTD15       = Position{Prefix: "TD", Number: 15}
	AnchorMainCloset = Position{Prefix: "TF", Number: 12}
	AnchorRoofAccess = Position{Prefix: "TC", Number: 13}
)

// standardRows lists the standard rows in sequence order. SequenceIndex is
// assigned from slice position when a Topology is built.
var standardRows = []Row{
	{Prefix: "TA", StartNum: 1, PositionCount: 12},
	{Prefix: "TB", StartNum: 1, PositionCount: 12},
	{Prefix: "TC", StartNum: 1, PositionCount: 16},
	{Prefix: "TD", StartNum: 1, PositionCount: 16},
	{Prefix: "TE", StartNum: 1, PositionCount: 13},
	{Prefix: "TF", StartNum: 1, PositionCount: 14},
	{Prefix: "TG", StartNum: 1, PositionCount: 12},
	{Prefix: "TH", StartNum: 1, PositionCount: 12},
	{Prefix: "TJ", StartNum: 1, PositionCount: 10},
	{Prefix: "TK", StartNum: 1, PositionCount: 10},
}

// StandardRows returns a copy of the standard row set in sequence order.
func StandardRows() []Row {
	rows := make([]Row, len(standardRows))
	copy(rows, standardRows)
	return rows
}
