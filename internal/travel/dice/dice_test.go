package dice

import (
	"errors"
	"math/rand"
	"testing"
)

// TestRollDiceDeterministic ensures the same seed always yields the same rolls.
func TestRollDiceDeterministic(t *testing.T) {
	first, err := RollDice(Request{Dice: []Spec{{Sides: 10, Count: 4}}, Seed: 7})
	if err != nil {
		t.Fatalf("RollDice returned error: %v", err)
	}
	second, err := RollDice(Request{Dice: []Spec{{Sides: 10, Count: 4}}, Seed: 7})
	if err != nil {
		t.Fatalf("RollDice returned error: %v", err)
	}
	if first.Total != second.Total {
		t.Fatalf("totals differ: %d vs %d", first.Total, second.Total)
	}
	for i := range first.Rolls[0].Results {
		if first.Rolls[0].Results[i] != second.Rolls[0].Results[i] {
			t.Fatalf("results differ at %d: %v vs %v", i, first.Rolls[0].Results, second.Rolls[0].Results)
		}
	}
}

// TestRollDiceHandlesMultipleSpecs ensures specs are rolled in order.
func TestRollDiceHandlesMultipleSpecs(t *testing.T) {
	seed := int64(3)
	rng := rand.New(rand.NewSource(seed))
	first := []int{rng.Intn(10) + 1, rng.Intn(10) + 1}
	second := []int{rng.Intn(100) + 1}

	result, err := RollDice(Request{
		Dice: []Spec{
			{Sides: 10, Count: 2},
			{Sides: 100, Count: 1},
		},
		Seed: seed,
	})
	if err != nil {
		t.Fatalf("RollDice returned error: %v", err)
	}
	if len(result.Rolls) != 2 {
		t.Fatalf("expected 2 rolls, got %d", len(result.Rolls))
	}
	wantTotal := first[0] + first[1] + second[0]
	if result.Total != wantTotal {
		t.Fatalf("total = %d, want %d", result.Total, wantTotal)
	}
}

// TestRollDiceRejectsMissingDice ensures empty requests return an error.
func TestRollDiceRejectsMissingDice(t *testing.T) {
	_, err := RollDice(Request{Seed: 1})
	if !errors.Is(err, ErrMissingDice) {
		t.Fatalf("RollDice error = %v, want %v", err, ErrMissingDice)
	}
}

// TestRollDiceRejectsInvalidSpec ensures invalid dice specs are rejected.
func TestRollDiceRejectsInvalidSpec(t *testing.T) {
	tcs := []Spec{
		{Sides: 0, Count: 1},
		{Sides: -1, Count: 1},
		{Sides: 10, Count: 0},
		{Sides: 10, Count: -2},
	}
	for _, tc := range tcs {
		_, err := RollDice(Request{Dice: []Spec{tc}, Seed: 1})
		if !errors.Is(err, ErrInvalidDiceSpec) {
			t.Fatalf("spec %+v error = %v, want %v", tc, err, ErrInvalidDiceSpec)
		}
	}
}

func TestD10sRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		results, err := D10s(4, seed)
		if err != nil {
			t.Fatalf("D10s returned error: %v", err)
		}
		if len(results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(results))
		}
		for _, value := range results {
			if value < 1 || value > 10 {
				t.Fatalf("d10 out of range: %d (seed %d)", value, seed)
			}
		}
	}
}

func TestD100Range(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		value, err := D100(seed)
		if err != nil {
			t.Fatalf("D100 returned error: %v", err)
		}
		if value < 1 || value > 100 {
			t.Fatalf("d100 out of range: %d (seed %d)", value, seed)
		}
	}
}
