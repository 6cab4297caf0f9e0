package travel

import (
	_ "embed"
	"fmt"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var eventTableYAML []byte

// EventModifier bounds for the GM-adjustable event odds.
const (
	EventModifierMin = -50
	EventModifierMax = 50
)

// ErrEventModifierOutOfBounds indicates a modifier outside [-50, 50].
var ErrEventModifierOutOfBounds = apperrors.New(
	apperrors.CodeTravelEventModifierOOB,
	"event modifier must be between -50 and 50",
)

// EventRow is one bucket of the narrative event table.
type EventRow struct {
	Low      int    `yaml:"low" json:"low"`
	High     int    `yaml:"high" json:"high"`
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Text     string `yaml:"text" json:"text"`
}

type eventTableFile struct {
	Rows []EventRow `yaml:"rows"`
}

var eventTable = mustLoadEventTable()

func mustLoadEventTable() []EventRow {
	var file eventTableFile
	if err := yaml.Unmarshal(eventTableYAML, &file); err != nil {
		panic(fmt.Sprintf("travel: malformed embedded event table: %v", err))
	}
	if len(file.Rows) == 0 {
		panic("travel: embedded event table is empty")
	}
	next := 1
	for _, row := range file.Rows {
		if row.Low != next || row.High < row.Low {
			panic(fmt.Sprintf("travel: event table gap at %d-%d, want low %d", row.Low, row.High, next))
		}
		next = row.High + 1
	}
	if next != 101 {
		panic(fmt.Sprintf("travel: event table covers 1-%d, want 1-100", next-1))
	}
	return file.Rows
}

// EventTable returns the full narrative event table in range order.
func EventTable() []EventRow {
	rows := make([]EventRow, len(eventTable))
	copy(rows, eventTable)
	return rows
}

// EventResult is an audited narrative event roll.
type EventResult struct {
	Base     int      `json:"base"`
	Modifier int      `json:"modifier"`
	Total    int      `json:"total"`
	Event    EventRow `json:"event"`
}

// RollEvent maps a percentile roll plus the GM modifier onto the event table.
// Totals pushed outside 1-100 by the modifier clamp to the nearest bucket.
func RollEvent(base, modifier int) (EventResult, error) {
	if modifier < EventModifierMin || modifier > EventModifierMax {
		return EventResult{}, ErrEventModifierOutOfBounds
	}

	total := base + modifier
	lookup := total
	if lookup < 1 {
		lookup = 1
	}
	if lookup > 100 {
		lookup = 100
	}

	for _, row := range eventTable {
		if lookup >= row.Low && lookup <= row.High {
			return EventResult{Base: base, Modifier: modifier, Total: total, Event: row}, nil
		}
	}
	// Unreachable: the table is validated to cover 1-100.
	return EventResult{}, apperrors.New(apperrors.CodeUnknown, "event table lookup failed")
}

// ClampEventModifier folds a modifier adjustment back into bounds.
func ClampEventModifier(modifier int) int {
	if modifier < EventModifierMin {
		return EventModifierMin
	}
	if modifier > EventModifierMax {
		return EventModifierMax
	}
	return modifier
}
