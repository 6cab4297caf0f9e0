package travel

import "testing"

func mildDay() Current {
	return Current{Temperature: TempComfortable, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindGentle}
}

func blizzardDay() Current {
	return Current{Temperature: TempBitter, Precipitation: PrecipVeryHeavy, Visibility: VisPoor, Wind: WindStrong}
}

func stormDay() Current {
	return Current{Temperature: TempHot, Precipitation: PrecipHeavy, Visibility: VisModerate, Wind: WindStrong}
}

func TestResolveDayQuietDay(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    mildDay(),
		Status:     StatusTraveling,
		Provisions: 5,
		DaysOnRoad: 3,
		Roster:     []Member{{ID: "a", Name: "Gunnar", ToughnessBonus: 4, CurrentWounds: 12, MaxWounds: 14}},
	})

	if got.Provisions != 4 {
		t.Fatalf("Provisions = %d, want 4", got.Provisions)
	}
	if got.Hunger != 0 || got.Exposure != 0 || got.Weariness != 0 || got.TravelFatigue != 0 {
		t.Fatalf("quiet day changed strain: %+v", got)
	}
	if got.DaysOnRoad != 4 {
		t.Fatalf("DaysOnRoad = %d, want 4", got.DaysOnRoad)
	}
	if len(got.Wounds) != 0 {
		t.Fatalf("Wounds = %v, want none", got.Wounds)
	}
	if got.Condition != ConditionNormal {
		t.Fatalf("Condition = %v, want %v", got.Condition, ConditionNormal)
	}
}

func TestResolveDayDoubleRations(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Status:     StatusCamping,
		Provisions: 5,
		Roster:     []Member{{ID: "a", ToughnessBonus: 4, CurrentWounds: 10, MaxWounds: 10}},
	})
	if got.Provisions != 3 {
		t.Fatalf("Provisions = %d, want 3 (double rations)", got.Provisions)
	}
}

func TestResolveDayStarvation(t *testing.T) {
	input := TickInput{
		Weather: mildDay(),
		Status:  StatusTraveling,
		Roster:  []Member{{ID: "a", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10}},
	}

	// Hunger climbs one per day without food and caps at 3; each day the
	// current hunger feeds the weariness delta.
	hunger := []int{1, 2, 3, 3}
	for day, want := range hunger {
		got := ResolveDay(input)
		if got.Hunger != want {
			t.Fatalf("day %d: Hunger = %d, want %d", day+1, got.Hunger, want)
		}
		input.Hunger = got.Hunger
		input.Weariness = got.Weariness
		input.TravelFatigue = got.TravelFatigue
		input.DaysOnRoad = got.DaysOnRoad
	}
}

func TestResolveDayHungerReset(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    mildDay(),
		Status:     StatusTraveling,
		Provisions: 3,
		Hunger:     2,
		Roster:     []Member{{ID: "a", ToughnessBonus: 4, CurrentWounds: 10, MaxWounds: 10}},
	})
	if got.Hunger != 0 {
		t.Fatalf("Hunger = %d, want 0 after eating", got.Hunger)
	}
	if got.Provisions != 2 {
		t.Fatalf("Provisions = %d, want 2", got.Provisions)
	}
}

func TestResolveDayLastProvisionNoReset(t *testing.T) {
	// Eating the final provision leaves none in reserve, so hunger holds.
	got := ResolveDay(TickInput{
		Weather:    mildDay(),
		Status:     StatusTraveling,
		Provisions: 1,
		Hunger:     2,
		Roster:     []Member{{ID: "a", ToughnessBonus: 4, CurrentWounds: 10, MaxWounds: 10}},
	})
	if got.Hunger != 2 {
		t.Fatalf("Hunger = %d, want 2", got.Hunger)
	}
}

func TestResolveDayMounts(t *testing.T) {
	base := TickInput{
		Weather:         mildDay(),
		Status:          StatusTraveling,
		Provisions:      5,
		MountProvisions: 1,
		HasMounts:       true,
		Roster:          []Member{{ID: "a", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10}},
	}

	got := ResolveDay(base)
	if got.MountProvisions != 0 || got.MountProvisionsExhausted {
		t.Fatalf("fed mounts: MountProvisions = %d, exhausted = %v", got.MountProvisions, got.MountProvisionsExhausted)
	}

	base.MountProvisions = 0
	got = ResolveDay(base)
	if !got.MountProvisionsExhausted {
		t.Fatal("empty sacks did not flag mount provisions exhausted")
	}

	base.MountsGrazing = true
	got = ResolveDay(base)
	if got.MountProvisionsExhausted {
		t.Fatal("grazing mounts flagged exhaustion")
	}
}

func TestResolveDayExposureAccumulates(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Status:     StatusTraveling,
		Provisions: 5,
		Exposure:   1,
		Roster:     []Member{{ID: "a", Name: "Elsa", ToughnessBonus: 2, CurrentWounds: 10, MaxWounds: 12}},
	})
	if got.Exposure != 3 {
		t.Fatalf("Exposure = %d, want 3", got.Exposure)
	}
	// Damage is exposure minus toughness bonus.
	if len(got.Wounds) != 1 {
		t.Fatalf("Wounds = %v, want one entry", got.Wounds)
	}
	w := got.Wounds[0]
	if w.Damage != 1 || w.WoundsAfter != 9 {
		t.Fatalf("wound change = %+v, want damage 1, after 9", w)
	}
}

func TestResolveDayExposureSparesTough(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    Current{Temperature: TempChilly, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Status:     StatusTraveling,
		Provisions: 5,
		Roster: []Member{
			{ID: "a", Name: "Tough", ToughnessBonus: 5, CurrentWounds: 10, MaxWounds: 10},
			{ID: "b", Name: "Frail", ToughnessBonus: 0, CurrentWounds: 1, MaxWounds: 8},
		},
	})
	if len(got.Wounds) != 1 {
		t.Fatalf("Wounds = %v, want one entry", got.Wounds)
	}
	if got.Wounds[0].MemberID != "b" {
		t.Fatalf("wounded member = %s, want b", got.Wounds[0].MemberID)
	}
	if got.Wounds[0].WoundsAfter != 0 {
		t.Fatalf("WoundsAfter = %d, want clamp at 0", got.Wounds[0].WoundsAfter)
	}
}

func TestResolveDayGearMitigatesExposure(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:    Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Gear:       Gear{WeatherAppropriateGear: true},
		Status:     StatusTraveling,
		Provisions: 5,
		Roster:     []Member{{ID: "a", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10}},
	})
	if got.Exposure != 0 {
		t.Fatalf("Exposure = %d, want 0 with gear", got.Exposure)
	}
}

func TestResolveDayFairWeatherRecovery(t *testing.T) {
	input := TickInput{
		Weather:    mildDay(),
		Status:     StatusTraveling,
		Provisions: 5,
		Exposure:   2,
		Roster:     []Member{{ID: "a", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10}},
	}

	got := ResolveDay(input)
	if got.Exposure != 2 {
		t.Fatalf("Exposure = %d, want 2 with recovery off", got.Exposure)
	}

	input.FairWeatherRecovery = true
	got = ResolveDay(input)
	if got.Exposure != 0 {
		t.Fatalf("Exposure = %d, want 0 with recovery on", got.Exposure)
	}
}

func TestResolveDayBlizzardJourneyPool(t *testing.T) {
	input := TickInput{
		Weather:     blizzardDay(),
		Status:      StatusTraveling,
		Provisions:  5,
		JourneyPool: 2,
		Roster:      []Member{{ID: "a", ToughnessBonus: 6, CurrentWounds: 10, MaxWounds: 10}},
	}

	got := ResolveDay(input)
	if got.JourneyPool != 1 {
		t.Fatalf("JourneyPool = %d, want 1", got.JourneyPool)
	}

	// With an empty pool the blizzard costs weariness instead. Exposure 3
	// plus the blizzard point lands on 4 against threshold 6.
	input.JourneyPool = 0
	got = ResolveDay(input)
	if got.JourneyPool != 0 {
		t.Fatalf("JourneyPool = %d, want 0", got.JourneyPool)
	}
	if got.Weariness != 4 {
		t.Fatalf("Weariness = %d, want 4 (exposure 3 + blizzard 1)", got.Weariness)
	}
}

func TestResolveDayBlizzardCampingSparesPool(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:     blizzardDay(),
		Status:      StatusCamping,
		Provisions:  5,
		JourneyPool: 2,
		Roster:      []Member{{ID: "a", ToughnessBonus: 6, CurrentWounds: 10, MaxWounds: 10}},
	})
	if got.JourneyPool != 2 {
		t.Fatalf("JourneyPool = %d, want 2 while camped", got.JourneyPool)
	}
}

func TestResolveDayThunderStorm(t *testing.T) {
	base := TickInput{
		Weather:    stormDay(),
		Status:     StatusTraveling,
		Provisions: 5,
		Roster:     []Member{{ID: "a", ToughnessBonus: 6, CurrentWounds: 10, MaxWounds: 10}},
	}

	// Hot temperature adds 1 exposure while traveling; the storm adds 2.
	got := ResolveDay(base)
	if got.Weariness != 3 {
		t.Fatalf("traveling: Weariness = %d, want 3", got.Weariness)
	}

	base.Gear = Gear{WeatherAppropriateGear: true}
	got = ResolveDay(base)
	if got.Weariness != 1 {
		t.Fatalf("traveling with gear: Weariness = %d, want 1", got.Weariness)
	}

	base.Gear = Gear{}
	base.Status = StatusCamping
	got = ResolveDay(base)
	if got.Weariness != 2 {
		t.Fatalf("camping: Weariness = %d, want 2", got.Weariness)
	}

	base.Gear = Gear{CampSetup: true}
	got = ResolveDay(base)
	if got.Weariness != 0 {
		t.Fatalf("camping with camp setup: Weariness = %d, want 0", got.Weariness)
	}
}

func TestResolveDayWearinessOverflow(t *testing.T) {
	// Threshold is floor(mean TB) = 3. Starting weariness 2 plus hunger 1
	// and exposure 1 totals 4, converting to 1 fatigue and weariness 1.
	got := ResolveDay(TickInput{
		Weather:   Current{Temperature: TempChilly, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Status:    StatusTraveling,
		Hunger:    0,
		Weariness: 2,
		Roster: []Member{
			{ID: "a", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10},
			{ID: "b", ToughnessBonus: 3, CurrentWounds: 10, MaxWounds: 10},
		},
	})
	if got.Hunger != 1 {
		t.Fatalf("Hunger = %d, want 1 (no provisions)", got.Hunger)
	}
	if got.Weariness != 1 {
		t.Fatalf("Weariness = %d, want 1 after overflow", got.Weariness)
	}
	if got.FatigueGained != 1 || got.TravelFatigue != 1 {
		t.Fatalf("fatigue = gained %d, total %d, want 1 and 1", got.FatigueGained, got.TravelFatigue)
	}
}

func TestResolveDayEmptyRosterNeverConverts(t *testing.T) {
	got := ResolveDay(TickInput{
		Weather:   Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill},
		Status:    StatusTraveling,
		Weariness: 7,
	})
	if got.FatigueGained != 0 {
		t.Fatalf("FatigueGained = %d, want 0 with empty roster", got.FatigueGained)
	}
	if got.Weariness <= 7 {
		t.Fatalf("Weariness = %d, want accumulation past 7", got.Weariness)
	}
}

func TestResolveDayIsPure(t *testing.T) {
	input := TickInput{
		Weather:    blizzardDay(),
		Status:     StatusTraveling,
		Provisions: 2,
		Roster:     []Member{{ID: "a", ToughnessBonus: 1, CurrentWounds: 5, MaxWounds: 10}},
	}
	first := ResolveDay(input)
	second := ResolveDay(input)
	if first.Weariness != second.Weariness || first.Provisions != second.Provisions ||
		first.DaysOnRoad != second.DaysOnRoad || len(first.Wounds) != len(second.Wounds) {
		t.Fatalf("ResolveDay not deterministic: %+v vs %+v", first, second)
	}
	if input.Provisions != 2 || input.Roster[0].CurrentWounds != 5 {
		t.Fatalf("ResolveDay mutated its input: %+v", input)
	}
}
