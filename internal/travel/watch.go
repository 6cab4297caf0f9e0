package travel

// WatchRotation describes how the night watch affects the party's rest,
// derived from how many members stand watch.
type WatchRotation struct {
	Watchers int
	// Difficulty of the Endurance check each watcher makes to rest well,
	// empty when no check is needed.
	Difficulty string
	// FatiguePenalty is extra travel fatigue every non-exempt member takes.
	FatiguePenalty int
	Explanation    string
}

// RotationFor returns the night-watch consequences for a watcher count.
// Three or more watchers split the night comfortably; two stretch thin;
// one sleeps too little for any check to save them. Members resolving a
// recuperate action are exempt from the penalty.
func RotationFor(watchers int) WatchRotation {
	switch {
	case watchers >= 3:
		return WatchRotation{
			Watchers:    watchers,
			Difficulty:  "average",
			Explanation: "full rotation: Average (+20) Endurance check to rest",
		}
	case watchers == 2:
		return WatchRotation{
			Watchers:    watchers,
			Difficulty:  "challenging",
			Explanation: "short rotation: Challenging (+0) Endurance check to rest",
		}
	case watchers == 1:
		return WatchRotation{
			Watchers:       watchers,
			FatiguePenalty: 1,
			Explanation:    "lone watch: +1 travel fatigue, recuperating members exempt",
		}
	default:
		return WatchRotation{
			Watchers:    0,
			Explanation: "no watch: everyone rests, but the camp is unguarded",
		}
	}
}
