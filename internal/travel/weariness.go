package travel

// WearinessThreshold computes the party weariness threshold: the floor of the
// mean toughness bonus across the roster (minimum 1 for a non-empty roster),
// plus 2 when the party travels with mounts. An empty roster yields 0, which
// disables overflow conversion entirely.
func WearinessThreshold(toughnessBonuses []int, hasMounts bool) int {
	if len(toughnessBonuses) == 0 {
		return 0
	}
	sum := 0
	for _, tb := range toughnessBonuses {
		sum += tb
	}
	threshold := sum / len(toughnessBonuses)
	if threshold < 1 {
		threshold = 1
	}
	if hasMounts {
		threshold += 2
	}
	return threshold
}

// WearinessChange is the result of applying a weariness delta.
type WearinessChange struct {
	NewWeariness  int
	FatigueGained int
}

// AddWeariness applies a weariness delta against a threshold, converting
// overflow into travel fatigue. Overflow is 1-indexed: with threshold 3 a
// total of 4 converts to 1 fatigue and wraps weariness back to 1, never 0.
// Negative deltas only clamp at zero; they never refund fatigue.
func AddWeariness(currentWeariness, delta, threshold int) WearinessChange {
	total := currentWeariness + delta
	if total < 0 {
		total = 0
	}
	if delta < 0 || threshold <= 0 || total <= threshold {
		return WearinessChange{NewWeariness: total}
	}
	return WearinessChange{
		NewWeariness:  ((total - 1) % threshold) + 1,
		FatigueGained: (total - 1) / threshold,
	}
}
