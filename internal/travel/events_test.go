package travel

import (
	"errors"
	"testing"
)

func TestEventTableCoversPercentile(t *testing.T) {
	rows := EventTable()
	if len(rows) == 0 {
		t.Fatal("EventTable() is empty")
	}
	next := 1
	for _, row := range rows {
		if row.Low != next {
			t.Fatalf("row %q starts at %d, want %d", row.Title, row.Low, next)
		}
		if row.High < row.Low {
			t.Fatalf("row %q has high %d below low %d", row.Title, row.High, row.Low)
		}
		if row.Title == "" || row.Text == "" || row.Category == "" {
			t.Fatalf("row %d-%d has empty fields", row.Low, row.High)
		}
		next = row.High + 1
	}
	if next != 101 {
		t.Fatalf("table covers 1-%d, want 1-100", next-1)
	}
}

func TestRollEvent(t *testing.T) {
	rows := EventTable()
	first := rows[0]
	last := rows[len(rows)-1]

	tests := []struct {
		name      string
		base      int
		modifier  int
		wantTotal int
		wantRow   EventRow
	}{
		{name: "plain roll", base: first.High, modifier: 0, wantTotal: first.High, wantRow: first},
		{name: "modifier shifts bucket", base: first.High, modifier: 1, wantTotal: first.High + 1, wantRow: rows[1]},
		{name: "high total clamps to last bucket", base: 95, modifier: 10, wantTotal: 105, wantRow: last},
		{name: "low total clamps to first bucket", base: 3, modifier: -50, wantTotal: -47, wantRow: first},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RollEvent(tt.base, tt.modifier)
			if err != nil {
				t.Fatalf("RollEvent(%d, %d) error = %v", tt.base, tt.modifier, err)
			}
			if got.Total != tt.wantTotal {
				t.Fatalf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
			if got.Event.Low != tt.wantRow.Low || got.Event.High != tt.wantRow.High {
				t.Fatalf("Event = %d-%d %q, want %d-%d %q",
					got.Event.Low, got.Event.High, got.Event.Title,
					tt.wantRow.Low, tt.wantRow.High, tt.wantRow.Title)
			}
		})
	}
}

func TestRollEventModifierBounds(t *testing.T) {
	for _, modifier := range []int{-51, 51, 100} {
		if _, err := RollEvent(50, modifier); !errors.Is(err, ErrEventModifierOutOfBounds) {
			t.Fatalf("RollEvent(50, %d) error = %v, want %v", modifier, err, ErrEventModifierOutOfBounds)
		}
	}
	for _, modifier := range []int{-50, 0, 50} {
		if _, err := RollEvent(50, modifier); err != nil {
			t.Fatalf("RollEvent(50, %d) error = %v", modifier, err)
		}
	}
}

func TestClampEventModifier(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-90, -50},
		{-50, -50},
		{0, 0},
		{50, 50},
		{77, 50},
	}
	for _, tt := range tests {
		if got := ClampEventModifier(tt.in); got != tt.want {
			t.Fatalf("ClampEventModifier(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEventTableReturnsCopy(t *testing.T) {
	rows := EventTable()
	rows[0].Title = "mutated"
	if EventTable()[0].Title == "mutated" {
		t.Fatal("EventTable() exposes internal table")
	}
}
