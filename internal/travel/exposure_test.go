package travel

import "testing"

func TestExposureFor(t *testing.T) {
	blizzard := Current{Temperature: TempBitter, Precipitation: PrecipVeryHeavy, Visibility: VisPoor, Wind: WindStrong}
	bitterCalm := Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill}
	chilly := Current{Temperature: TempChilly, Precipitation: PrecipLight, Visibility: VisClear, Wind: WindGentle}
	hot := Current{Temperature: TempHot, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill}
	mild := Current{Temperature: TempComfortable, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindGentle}

	tests := []struct {
		name          string
		current       Current
		gear          Gear
		wantTraveling int
		wantCamping   int
	}{
		{name: "blizzard no gear", current: blizzard, wantTraveling: 3, wantCamping: 3},
		{name: "blizzard with gear", current: blizzard, gear: Gear{WeatherAppropriateGear: true}, wantTraveling: 1, wantCamping: 1},
		{name: "blizzard camp setup", current: blizzard, gear: Gear{CampSetup: true}, wantTraveling: 3, wantCamping: 0},
		{name: "blizzard fully equipped", current: blizzard, gear: Gear{WeatherAppropriateGear: true, CampSetup: true}, wantTraveling: 1, wantCamping: 0},
		{name: "bitter calm", current: bitterCalm, wantTraveling: 2, wantCamping: 2},
		{name: "bitter calm with gear", current: bitterCalm, gear: Gear{WeatherAppropriateGear: true}, wantTraveling: 0, wantCamping: 2},
		{name: "chilly", current: chilly, wantTraveling: 1, wantCamping: 1},
		{name: "chilly camp setup", current: chilly, gear: Gear{CampSetup: true}, wantTraveling: 1, wantCamping: 0},
		{name: "hot", current: hot, wantTraveling: 1, wantCamping: 1},
		{name: "comfortable", current: mild, wantTraveling: 0, wantCamping: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExposureFor(Classify(tt.current), tt.current, tt.gear)
			if got.Traveling != tt.wantTraveling || got.Camping != tt.wantCamping {
				t.Fatalf("ExposureFor() = {traveling %d, camping %d}, want {%d, %d}",
					got.Traveling, got.Camping, tt.wantTraveling, tt.wantCamping)
			}
			if got.Explanation == "" {
				t.Fatal("ExposureFor() returned empty explanation")
			}
		})
	}
}
