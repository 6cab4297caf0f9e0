package travel

import "fmt"

// Status is the party's current travel posture.
type Status string

const (
	StatusTraveling Status = "traveling"
	StatusCamping   Status = "camping"
)

// HungerCap is the maximum hunger a party can accumulate.
const HungerCap = 3

// Member is a roster entry as seen by the tick engine.
type Member struct {
	ID             string
	Name           string
	ToughnessBonus int
	CurrentWounds  int
	MaxWounds      int
}

// TickInput is everything ResolveDay needs to advance one travel day.
type TickInput struct {
	Weather Current
	Gear    Gear
	Status  Status

	HasMounts     bool
	MountsGrazing bool

	Provisions      int
	MountProvisions int
	Hunger          int
	Exposure        int
	Weariness       int
	TravelFatigue   int
	JourneyPool     int
	DaysOnRoad      int

	Roster []Member

	// FairWeatherRecovery clears accumulated exposure outright on days with
	// no exposure gain in either posture.
	FairWeatherRecovery bool
}

// WoundChange records exposure damage applied to one roster member.
type WoundChange struct {
	MemberID     string `json:"memberId"`
	Name         string `json:"name"`
	Damage       int    `json:"damage"`
	WoundsBefore int    `json:"woundsBefore"`
	WoundsAfter  int    `json:"woundsAfter"`
	MaxWounds    int    `json:"maxWounds"`
}

// DayOutcome is the complete result of advancing one day. It carries the new
// resource values, the wound changes to apply, and a step-by-step summary;
// callers commit all of it atomically or not at all.
type DayOutcome struct {
	Provisions      int `json:"provisions"`
	MountProvisions int `json:"mountProvisions"`
	Hunger          int `json:"hunger"`
	Exposure        int `json:"exposure"`
	Weariness       int `json:"weariness"`
	TravelFatigue   int `json:"travelFatigue"`
	JourneyPool     int `json:"journeyPool"`
	DaysOnRoad      int `json:"daysOnRoad"`

	FatigueGained            int  `json:"fatigueGained"`
	MountProvisionsExhausted bool `json:"mountProvisionsExhausted"`

	Condition Condition     `json:"-"`
	Wounds    []WoundChange `json:"wounds,omitempty"`
	Summary   []string      `json:"summary"`
}

// ResolveDay advances one simulated travel day. The computation is pure: it
// mutates nothing and a caller may use it both to preview a day and to commit
// one.
//
// Step order is load-bearing: provisions feed the hunger reset, hunger and
// exposure after their own steps feed the weariness delta, and the weariness
// delta feeds the overflow conversion.
func ResolveDay(input TickInput) DayOutcome {
	condition := Classify(input.Weather)
	outcome := DayOutcome{
		Provisions:      input.Provisions,
		MountProvisions: input.MountProvisions,
		Hunger:          input.Hunger,
		Exposure:        input.Exposure,
		Weariness:       input.Weariness,
		TravelFatigue:   input.TravelFatigue,
		JourneyPool:     input.JourneyPool,
		DaysOnRoad:      input.DaysOnRoad,
		Condition:       condition,
	}
	traveling := input.Status == StatusTraveling
	hungerBefore := input.Hunger

	// Provisions: double rations under temperature extremes; an empty larder
	// raises hunger instead.
	doubleRations := input.Weather.Temperature == TempSweltering || input.Weather.Temperature == TempBitter
	provisionsNeeded := 1
	if doubleRations {
		provisionsNeeded = 2
	}
	if outcome.Provisions >= provisionsNeeded {
		outcome.Provisions -= provisionsNeeded
		if doubleRations {
			outcome.Summary = append(outcome.Summary, fmt.Sprintf("Consumed %d provisions (double rations, %s temperature)", provisionsNeeded, input.Weather.Temperature))
		} else {
			outcome.Summary = append(outcome.Summary, "Consumed 1 provision")
		}
	} else {
		outcome.Provisions = 0
		if outcome.Hunger < HungerCap {
			outcome.Hunger++
		}
		outcome.Summary = append(outcome.Summary, fmt.Sprintf("Provisions exhausted! Hunger increased to %d", outcome.Hunger))
	}

	// Mounts graze for free; stabled mounts eat from the sacks.
	if input.HasMounts && !input.MountsGrazing {
		if outcome.MountProvisions >= 1 {
			outcome.MountProvisions--
			outcome.Summary = append(outcome.Summary, "Consumed 1 mount provision")
		} else {
			outcome.MountProvisionsExhausted = true
			outcome.Summary = append(outcome.Summary, "Mount provisions exhausted!")
		}
	}

	// Satiation: a party that ate today shakes off prior hunger, judged on
	// what remains after consumption.
	if hungerBefore > 0 && outcome.Provisions > 0 {
		outcome.Hunger = 0
		outcome.Summary = append(outcome.Summary, "Hunger satisfied (reset to 0)")
	}

	// Exposure.
	rates := ExposureFor(condition, input.Weather, input.Gear)
	gain := rates.Camping
	posture := "camping"
	if traveling {
		gain = rates.Traveling
		posture = "traveling"
	}
	if gain > 0 {
		outcome.Exposure += gain
		outcome.Summary = append(outcome.Summary, fmt.Sprintf("Gained +%d exposure (%s)", gain, posture))
	} else if input.FairWeatherRecovery && rates.Traveling == 0 && rates.Camping == 0 && outcome.Exposure > 0 {
		outcome.Exposure = 0
		outcome.Summary = append(outcome.Summary, "Fair weather: exposure cleared")
	}

	// Blizzard travel burns a journey pool point, or the party's legs.
	blizzardWeariness := 0
	if condition == ConditionBlizzard && traveling {
		if outcome.JourneyPool > 0 {
			outcome.JourneyPool--
			outcome.Summary = append(outcome.Summary, "Blizzard: spent 1 journey pool")
		} else {
			blizzardWeariness = 1
			outcome.Summary = append(outcome.Summary, "Blizzard with empty journey pool: +1 weariness")
		}
	}

	// Thunder storms wear the party down whether marching or camped.
	stormWeariness := 0
	if condition == ConditionThunderStorm {
		if traveling {
			stormWeariness = 2
			if input.Gear.WeatherAppropriateGear {
				stormWeariness = 1
			}
		} else if !input.Gear.CampSetup {
			stormWeariness = 1
		}
		if stormWeariness > 0 {
			outcome.Summary = append(outcome.Summary, fmt.Sprintf("Thunder storm: +%d weariness", stormWeariness))
		}
	}

	// Daily strain and overflow conversion.
	delta := outcome.Hunger + outcome.Exposure + blizzardWeariness + stormWeariness
	if delta > 0 {
		outcome.Summary = append(outcome.Summary, fmt.Sprintf("Daily strain: +%d weariness (hunger %d, exposure %d)", delta, outcome.Hunger, outcome.Exposure))
	}
	tbs := make([]int, len(input.Roster))
	for i, member := range input.Roster {
		tbs[i] = member.ToughnessBonus
	}
	threshold := WearinessThreshold(tbs, input.HasMounts)
	change := AddWeariness(outcome.Weariness, delta, threshold)
	outcome.Weariness = change.NewWeariness
	if change.FatigueGained > 0 {
		outcome.FatigueGained = change.FatigueGained
		outcome.TravelFatigue += change.FatigueGained
		outcome.Summary = append(outcome.Summary, fmt.Sprintf("Weariness overflow! +%d travel fatigue (%d weariness remaining)", change.FatigueGained, change.NewWeariness))
	}

	// Exposure wounds anyone whose toughness cannot carry it.
	for _, member := range input.Roster {
		damage := outcome.Exposure - member.ToughnessBonus
		if damage <= 0 {
			continue
		}
		after := member.CurrentWounds - damage
		if after < 0 {
			after = 0
		}
		outcome.Wounds = append(outcome.Wounds, WoundChange{
			MemberID:     member.ID,
			Name:         member.Name,
			Damage:       damage,
			WoundsBefore: member.CurrentWounds,
			WoundsAfter:  after,
			MaxWounds:    member.MaxWounds,
		})
	}
	if len(outcome.Wounds) > 0 {
		outcome.Summary = append(outcome.Summary, fmt.Sprintf("Exposure damage to %d member(s)", len(outcome.Wounds)))
	}

	outcome.DaysOnRoad++
	outcome.Summary = append(outcome.Summary, fmt.Sprintf("Day %d on the road", outcome.DaysOnRoad))

	return outcome
}
