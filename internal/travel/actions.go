package travel

import (
	"fmt"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
)

// Action identifies a travel or camp action a character can attempt.
type Action string

const (
	ActionPathfinding     Action = "pathfinding"
	ActionForage          Action = "forage"
	ActionScout           Action = "scout"
	ActionContingency     Action = "contingency"
	ActionSetupCamp       Action = "setup-camp"
	ActionCook            Action = "cook"
	ActionHunt            Action = "hunt"
	ActionRaiseSpirits    Action = "raise-spirits"
	ActionRecuperate      Action = "recuperate"
	ActionRevisePlanning  Action = "revise-planning"
	ActionTrapping        Action = "trapping"
	ActionSelfImprovement Action = "self-improvement"
	ActionScoutArea       Action = "scout-area"
)

// ErrUnknownAction indicates an action key outside the fixed catalog.
var ErrUnknownAction = apperrors.New(apperrors.CodeTravelUnknownAction, "unknown action")

// ErrInvalidPayment indicates a travel-action cost that cannot be paid.
var ErrInvalidPayment = apperrors.New(apperrors.CodeTravelInvalidPayment, "journey pool is empty")

// ActionSpec describes the skill test backing an action.
type ActionSpec struct {
	Skill              string
	Difficulty         string
	FallbackSkill      string
	FallbackDifficulty string
	// TravelAction marks actions that cost 1 journey pool or +1 weariness.
	TravelAction bool
}

var actionSpecs = map[Action]ActionSpec{
	ActionPathfinding:     {Skill: "Navigation", Difficulty: "average", TravelAction: true},
	ActionForage:          {Skill: "Outdoor Survival", Difficulty: "average", TravelAction: true},
	ActionScout:           {Skill: "Perception", Difficulty: "average", TravelAction: true},
	ActionContingency:     {Skill: "Leadership", Difficulty: "average", TravelAction: true},
	ActionSetupCamp:       {Skill: "Outdoor Survival", Difficulty: "average"},
	ActionCook:            {Skill: "Trade (Cook)", Difficulty: "easy", FallbackSkill: "Outdoor Survival", FallbackDifficulty: "average"},
	ActionHunt:            {Skill: "Outdoor Survival", Difficulty: "average"},
	ActionRaiseSpirits:    {Skill: "Entertain", Difficulty: "average"},
	ActionRecuperate:      {Skill: "Endurance", Difficulty: "challenging"},
	ActionRevisePlanning:  {Skill: "Leadership", Difficulty: "average"},
	ActionTrapping:        {Skill: "Set Trap", Difficulty: "average"},
	ActionSelfImprovement: {Skill: "Pray", Difficulty: "average", FallbackSkill: "Lore", FallbackDifficulty: "average"},
	ActionScoutArea:       {Skill: "Perception", Difficulty: "average"},
}

// SpecFor returns the skill test specification for an action.
func SpecFor(action Action) (ActionSpec, error) {
	spec, ok := actionSpecs[action]
	if !ok {
		return ActionSpec{}, ErrUnknownAction
	}
	return spec, nil
}

// TestResult is the outcome of an externally-rolled skill test.
type TestResult struct {
	SL       int  `json:"sl"`
	Critical bool `json:"critical"`
	Fumble   bool `json:"fumble"`
}

// Success reports whether the test passed.
func (t TestResult) Success() bool { return t.SL >= 0 }

// CookReward selects the excellent-cooking reward.
type CookReward string

const (
	// CookRewardClearWeariness sets party weariness to 0.
	CookRewardClearWeariness CookReward = "clear-weariness"
	// CookRewardReduceFatigue spends 1 provision to remove 1 travel fatigue.
	CookRewardReduceFatigue CookReward = "reduce-fatigue"
)

// ActionContext carries the character and party stats action rules read.
type ActionContext struct {
	ToughnessBonus  int
	FellowshipBonus int
	JourneyPool     int
	JourneyPoolMax  int
	// CookReward picks the reward on an excellent cook result; defaults to
	// clearing weariness.
	CookReward CookReward
}

// ActionOutcome is the deterministic consequence of a resolved action.
type ActionOutcome struct {
	WearinessDelta      int  `json:"wearinessDelta,omitempty"`
	FatigueDelta        int  `json:"fatigueDelta,omitempty"`
	ProvisionsDelta     int  `json:"provisionsDelta,omitempty"`
	JourneyPoolDelta    int  `json:"journeyPoolDelta,omitempty"`
	JourneyPoolMaxDelta int  `json:"journeyPoolMaxDelta,omitempty"`
	ClearWeariness      bool `json:"clearWeariness,omitempty"`
	SetCampSetup        bool `json:"setCampSetup,omitempty"`
	// RollDamage asks the caller to roll 1d10 damage against the actor
	// (poisoning while foraging, injury while hunting).
	RollDamage bool   `json:"rollDamage,omitempty"`
	HealWounds int    `json:"healWounds,omitempty"`
	Message    string `json:"message"`
}

// Payment selects how a travel action's cost is covered.
type Payment string

const (
	PayJourneyPool Payment = "journey-pool"
	PayWeariness   Payment = "weariness"
)

// TravelActionCost resolves the 1-JP-or-weariness cost of a travel action.
func TravelActionCost(journeyPool int, payment Payment) (jpDelta, wearinessDelta int, err error) {
	switch payment {
	case PayJourneyPool:
		if journeyPool <= 0 {
			return 0, 0, ErrInvalidPayment
		}
		return -1, 0, nil
	case PayWeariness:
		return 0, 1, nil
	default:
		return 0, 0, apperrors.New(apperrors.CodeTravelInvalidPayment, "unknown payment kind")
	}
}

// ResolveAction applies the fixed outcome rules for one action given a skill
// test result. It is pure; the caller applies the returned deltas.
func ResolveAction(action Action, test TestResult, ctx ActionContext) (ActionOutcome, error) {
	if _, ok := actionSpecs[action]; !ok {
		return ActionOutcome{}, ErrUnknownAction
	}

	switch action {
	case ActionPathfinding:
		switch {
		case test.Fumble:
			return ActionOutcome{WearinessDelta: 2, Message: "Lost! No progress made, +2 weariness"}, nil
		case !test.Success():
			return ActionOutcome{WearinessDelta: 1, Message: "Poor pathfinding, +1 weariness"}, nil
		case test.Critical:
			return ActionOutcome{WearinessDelta: -1, Message: "Excellent navigation! -1 weariness and camp actions remain available today"}, nil
		default:
			return ActionOutcome{WearinessDelta: -1, Message: "Good pathfinding, -1 weariness"}, nil
		}

	case ActionForage:
		if test.Fumble {
			return ActionOutcome{RollDamage: true, Message: "Poisoned while foraging! Roll 1d10 damage"}, nil
		}
		if !test.Success() {
			return ActionOutcome{Message: "Found nothing worth eating"}, nil
		}
		provisions := 1 + test.SL/3
		if test.Critical {
			provisions++
		}
		return ActionOutcome{ProvisionsDelta: provisions, Message: fmt.Sprintf("Foraged %d provisions", provisions)}, nil

	case ActionScout:
		if !test.Success() {
			return ActionOutcome{Message: "Nothing of note spotted"}, nil
		}
		if test.Critical {
			return ActionOutcome{Message: "Event revealed; GM may offer a 1 JP re-roll"}, nil
		}
		return ActionOutcome{Message: "Next hex revealed"}, nil

	case ActionContingency:
		if !test.Success() {
			return ActionOutcome{Message: "No useful contingencies prepared"}, nil
		}
		bonus := 1
		if test.Critical {
			bonus = 2
		}
		return ActionOutcome{Message: fmt.Sprintf("+%d to the next event roll", bonus)}, nil

	case ActionSetupCamp:
		if test.Success() {
			return ActionOutcome{SetCampSetup: true, Message: "Camp set up: -1 weariness/day, healing checks Challenging (+0)"}, nil
		}
		return ActionOutcome{Message: "Poor camp: healing checks are Hard (-10)"}, nil

	case ActionCook:
		if test.Fumble {
			return ActionOutcome{FatigueDelta: 1, Message: "Ruined rations! +1 travel fatigue"}, nil
		}
		if !test.Success() {
			return ActionOutcome{Message: "A forgettable meal"}, nil
		}
		if test.SL >= 6 || test.Critical {
			if ctx.CookReward == CookRewardReduceFatigue {
				return ActionOutcome{ProvisionsDelta: -1, FatigueDelta: -1, Message: "Feast! Spent 1 provision, -1 travel fatigue"}, nil
			}
			return ActionOutcome{ClearWeariness: true, Message: "Feast! Weariness set to 0"}, nil
		}
		if test.SL >= 2 {
			return ActionOutcome{WearinessDelta: -1, Message: "Good meal! -1 weariness"}, nil
		}
		return ActionOutcome{Message: "An adequate meal"}, nil

	case ActionHunt:
		if test.Fumble {
			return ActionOutcome{RollDamage: true, Message: "Injured while hunting! Roll 1d10 damage"}, nil
		}
		if !test.Success() {
			return ActionOutcome{Message: "The quarry got away"}, nil
		}
		provisions := 1 + test.SL/2
		if test.Critical {
			provisions += 2
		}
		return ActionOutcome{ProvisionsDelta: provisions, Message: fmt.Sprintf("Hunted %d provisions", provisions)}, nil

	case ActionRaiseSpirits:
		if !test.Success() {
			return ActionOutcome{Message: "The party remains glum"}, nil
		}
		reduction := 1
		if test.Critical {
			reduction = ctx.FellowshipBonus
		}
		return ActionOutcome{WearinessDelta: -reduction, Message: fmt.Sprintf("Spirits raised! -%d weariness", reduction)}, nil

	case ActionRecuperate:
		if !test.Success() {
			return ActionOutcome{Message: "Rest was fitful"}, nil
		}
		healing := test.SL + ctx.ToughnessBonus
		return ActionOutcome{HealWounds: healing, Message: fmt.Sprintf("Rest successful! Heal %d wounds", healing)}, nil

	case ActionRevisePlanning:
		return resolveRevisePlanning(test, ctx), nil

	case ActionTrapping:
		if !test.Success() {
			return ActionOutcome{Message: "The traps sit empty"}, nil
		}
		provisions := 1 + test.SL/2
		if test.Critical {
			provisions += 2
		}
		return ActionOutcome{ProvisionsDelta: provisions, Message: fmt.Sprintf("Traps caught %d provisions; free action on subsequent days", provisions)}, nil

	case ActionSelfImprovement:
		if test.Success() {
			return ActionOutcome{Message: "+10 to the next check with the chosen or a related skill"}, nil
		}
		return ActionOutcome{Message: "No insight gained"}, nil

	case ActionScoutArea:
		if !test.Success() {
			return ActionOutcome{Message: "The surrounding country keeps its secrets"}, nil
		}
		if test.Critical {
			return ActionOutcome{Message: "Event revealed; 2 JP may be spent to choose no event"}, nil
		}
		return ActionOutcome{Message: "Vision expanded one hex in all directions"}, nil
	}

	return ActionOutcome{}, ErrUnknownAction
}

// resolveRevisePlanning recomputes the journey pool against its maximum.
// Failed planning erodes the maximum; planning a pool back to full on a
// critical grows both pool and maximum by one. The maximum never drops
// below 1 from this action.
func resolveRevisePlanning(test TestResult, ctx ActionContext) ActionOutcome {
	maxFloor := func(delta int) int {
		if ctx.JourneyPoolMax+delta < 1 {
			return 1 - ctx.JourneyPoolMax
		}
		return delta
	}

	if test.Fumble {
		return ActionOutcome{JourneyPoolMaxDelta: maxFloor(-2), Message: "Planning disaster! -2 max journey pool"}
	}
	if !test.Success() {
		return ActionOutcome{JourneyPoolMaxDelta: maxFloor(-1), Message: "Poor planning: -1 max journey pool"}
	}

	gained := test.SL
	newPool := ctx.JourneyPool + gained
	if newPool > ctx.JourneyPoolMax {
		newPool = ctx.JourneyPoolMax
	}
	poolDelta := newPool - ctx.JourneyPool

	if newPool < ctx.JourneyPoolMax {
		return ActionOutcome{
			JourneyPoolDelta:    poolDelta,
			JourneyPoolMaxDelta: maxFloor(-1),
			Message:             fmt.Sprintf("+%d journey pool, but the pool is not full: -1 max", poolDelta),
		}
	}
	if test.Critical {
		return ActionOutcome{
			JourneyPoolDelta:    poolDelta + 1,
			JourneyPoolMaxDelta: 1,
			Message:             fmt.Sprintf("Critical! +%d journey pool and +1 max", poolDelta+1),
		}
	}
	return ActionOutcome{JourneyPoolDelta: poolDelta, Message: fmt.Sprintf("+%d journey pool", poolDelta)}
}
