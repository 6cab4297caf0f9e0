// Package dice implements the seeded dice-rolling logic for travel mechanics.
package dice

import (
	"math/rand"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// DieRoll captures the results for a single dice spec.
type DieRoll struct {
	Sides   int
	Results []int
	Total   int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed int64
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []DieRoll
	Total int
}

// RollDice rolls dice based on the provided request.
//
// RollDice is deterministic with respect to the Seed field: given the same
// Seed and the same Dice slice (including order and values), it always
// produces the same Result. Specs are processed in slice order and the
// resulting DieRoll entries appear in the same order.
func RollDice(request Request) (Result, error) {
	if len(request.Dice) == 0 {
		return Result{}, ErrMissingDice
	}

	rng := rand.New(rand.NewSource(request.Seed))
	rolls := make([]DieRoll, 0, len(request.Dice))
	total := 0

	for _, spec := range request.Dice {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rng.Intn(spec.Sides) + 1
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, DieRoll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// D10s rolls count d10 dice and returns the individual results.
func D10s(count int, seed int64) ([]int, error) {
	result, err := RollDice(Request{Dice: []Spec{{Sides: 10, Count: count}}, Seed: seed})
	if err != nil {
		return nil, err
	}
	return result.Rolls[0].Results, nil
}

// D100 rolls a single percentile die.
func D100(seed int64) (int, error) {
	result, err := RollDice(Request{Dice: []Spec{{Sides: 100, Count: 1}}, Seed: seed})
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
