package topology

import (
	"errors"
	"testing"
)

func TestNew_StandardOnly(t *testing.T) {
	topo, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := topo.Rows()
	if len(rows) != 10 {
		t.Fatalf("len(rows) = %d, want 10", len(rows))
	}
	for i, row := range rows {
		if row.SequenceIndex != i {
			t.Errorf("rows[%d].SequenceIndex = %d, want %d", i, row.SequenceIndex, i)
		}
		if row.Custom {
			t.Errorf("rows[%d] (%s) marked custom", i, row.Prefix)
		}
	}
	if rows[0].Prefix != "TA" || rows[9].Prefix != "TK" {
		t.Errorf("row order = %s..%s, want TA..TK", rows[0].Prefix, rows[9].Prefix)
	}
}

func TestNew_CustomRowsAppended(t *testing.T) {
	topo, err := New([]CustomRow{
		{Prefix: "TX", StartNum: 5, EndNum: 8, EndpointReference: RefTD15, EndpointMode: ModeEndpoint},
		{Prefix: "TY", StartNum: 1, EndNum: 3, EndpointReference: "Annex"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := topo.Rows()
	if len(rows) != 12 {
		t.Fatalf("len(rows) = %d, want 12", len(rows))
	}
	tx := rows[10]
	if tx.Prefix != "TX" || tx.SequenceIndex != 10 || !tx.Custom {
		t.Errorf("rows[10] = %+v, want custom TX at sequence 10", tx)
	}
	if tx.PositionCount != 4 {
		t.Errorf("TX.PositionCount = %d, want 4", tx.PositionCount)
	}
	if tx.LocalNum(5) != 1 || tx.LocalNum(8) != 4 {
		t.Errorf("TX local numbering = %d..%d, want 1..4", tx.LocalNum(5), tx.LocalNum(8))
	}
	if rows[11].Prefix != "TY" || rows[11].SequenceIndex != 11 {
		t.Errorf("rows[11] = %+v, want TY at sequence 11", rows[11])
	}
}

func TestNew_RejectsInvalidCustomRows(t *testing.T) {
	tests := []struct {
		name   string
		custom []CustomRow
	}{
		{"inverted range", []CustomRow{{Prefix: "TX", StartNum: 8, EndNum: 5}}},
		{"duplicate of standard", []CustomRow{{Prefix: "TD", StartNum: 1, EndNum: 2}}},
		{"duplicate of custom", []CustomRow{
			{Prefix: "TX", StartNum: 1, EndNum: 2},
			{Prefix: "TX", StartNum: 3, EndNum: 4},
		}},
		{"empty prefix", []CustomRow{{StartNum: 1, EndNum: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.custom); !errors.Is(err, ErrInvalidCustomRow) {
				t.Errorf("New() err = %v, want ErrInvalidCustomRow", err)
			}
		})
	}
}

func TestPositions_OrderAndCount(t *testing.T) {
	topo, err := New([]CustomRow{{Prefix: "TX", StartNum: 5, EndNum: 7, EndpointReference: "Annex"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	positions := topo.Positions()
	want := 12 + 12 + 16 + 16 + 13 + 14 + 12 + 12 + 10 + 10 + 3
	if len(positions) != want {
		t.Fatalf("len(positions) = %d, want %d", len(positions), want)
	}
	if topo.PositionCount() != want {
		t.Errorf("PositionCount() = %d, want %d", topo.PositionCount(), want)
	}
	if positions[0].String() != "TA01" {
		t.Errorf("positions[0] = %s, want TA01", positions[0])
	}
	// Custom row positions carry their external numbers, in numeric order.
	tail := positions[len(positions)-3:]
	for i, wantName := range []string{"TX05", "TX06", "TX07"} {
		if tail[i].String() != wantName {
			t.Errorf("tail[%d] = %s, want %s", i, tail[i], wantName)
		}
	}
}

func TestParsePosition(t *testing.T) {
	topo, err := New([]CustomRow{{Prefix: "TX", StartNum: 5, EndNum: 7, EndpointReference: "Annex"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		in     string
		prefix string
		number int
	}{
		{"TD05", "TD", 5},
		{"td15", "TD", 15},
		{" TK10 ", "TK", 10},
		{"TX06", "TX", 6},
	}
	for _, tt := range tests {
		p, err := topo.ParsePosition(tt.in)
		if err != nil {
			t.Errorf("ParsePosition(%q): %v", tt.in, err)
			continue
		}
		if p.Prefix != tt.prefix || p.Number != tt.number {
			t.Errorf("ParsePosition(%q) = %+v, want {%s %d}", tt.in, p, tt.prefix, tt.number)
		}
	}

	for _, in := range []string{"", "TD", "05", "ZZ01", "TD17", "TX04", "TX08", "TDxx"} {
		if _, err := topo.ParsePosition(in); !errors.Is(err, ErrUnknownPosition) {
			t.Errorf("ParsePosition(%q) err = %v, want ErrUnknownPosition", in, err)
		}
	}
}

func TestRowBySequence_Gap(t *testing.T) {
	topo, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := topo.RowBySequence(10); !errors.Is(err, ErrBrokenSequence) {
		t.Errorf("RowBySequence(10) err = %v, want ErrBrokenSequence", err)
	}
}

func TestPositionString_ZeroPadded(t *testing.T) {
	p := Position{Prefix: "TG", Number: 3}
	if got := p.String(); got != "TG03" {
		t.Errorf("String() = %q, want TG03", got)
	}
	p = Position{Prefix: "TD", Number: 15}
	if got := p.String(); got != "TD15" {
		t.Errorf("String() = %q, want TD15", got)
	}
}
