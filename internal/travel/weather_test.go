package travel

import (
	"errors"
	"testing"
)

func TestLookupTablesClamp(t *testing.T) {
	if got := LookupTemperature(0); got != TempSweltering {
		t.Fatalf("LookupTemperature(0) = %v, want %v", got, TempSweltering)
	}
	if got := LookupTemperature(-3); got != TempSweltering {
		t.Fatalf("LookupTemperature(-3) = %v, want %v", got, TempSweltering)
	}
	// Totals above 12 bucket like 12.
	for total := 13; total <= 20; total++ {
		if got := LookupTemperature(total); got != LookupTemperature(12) {
			t.Fatalf("LookupTemperature(%d) = %v, want %v", total, got, LookupTemperature(12))
		}
		if got := LookupWind(total); got != LookupWind(12) {
			t.Fatalf("LookupWind(%d) = %v, want %v", total, got, LookupWind(12))
		}
	}
}

func TestLookupTemperature(t *testing.T) {
	tests := []struct {
		total int
		want  Temperature
	}{
		{1, TempSweltering},
		{2, TempHot},
		{3, TempHot},
		{4, TempComfortable},
		{8, TempComfortable},
		{9, TempChilly},
		{10, TempChilly},
		{11, TempBitter},
		{12, TempBitter},
	}
	for _, tt := range tests {
		if got := LookupTemperature(tt.total); got != tt.want {
			t.Fatalf("LookupTemperature(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestLookupPrecipitationFoldsBack(t *testing.T) {
	// Row 12 folds back from very-heavy to heavy.
	if got := LookupPrecipitation(11); got != PrecipVeryHeavy {
		t.Fatalf("LookupPrecipitation(11) = %v, want %v", got, PrecipVeryHeavy)
	}
	if got := LookupPrecipitation(12); got != PrecipHeavy {
		t.Fatalf("LookupPrecipitation(12) = %v, want %v", got, PrecipHeavy)
	}
}

func TestLookupWindFoldsBack(t *testing.T) {
	if got := LookupWind(10); got != WindVeryStrong {
		t.Fatalf("LookupWind(10) = %v, want %v", got, WindVeryStrong)
	}
	if got := LookupWind(11); got != WindModerate {
		t.Fatalf("LookupWind(11) = %v, want %v", got, WindModerate)
	}
	if got := LookupWind(12); got != WindGentle {
		t.Fatalf("LookupWind(12) = %v, want %v", got, WindGentle)
	}
}

func TestGenerateWeatherModifiers(t *testing.T) {
	cond := Conditions{Climate: ClimateCold, Season: SeasonWinter, Terrain: TerrainMountains}
	// Temperature: 5 + winter 4 + cold 2 + mountains 1 = 12 -> bitter.
	// Precipitation: 6 + winter 4 = 10 -> very heavy.
	// Wind: 4 + mountains 2 = 6 -> strong.
	got, err := GenerateWeather(cond, WeatherRolls{Temperature: 5, Precipitation: 6, Visibility: 1, Wind: 4})
	if err != nil {
		t.Fatalf("GenerateWeather() error = %v", err)
	}
	if got.Current.Temperature != TempBitter {
		t.Fatalf("temperature = %v, want %v", got.Current.Temperature, TempBitter)
	}
	if got.Current.Precipitation != PrecipVeryHeavy {
		t.Fatalf("precipitation = %v, want %v", got.Current.Precipitation, PrecipVeryHeavy)
	}
	if got.Current.Wind != WindStrong {
		t.Fatalf("wind = %v, want %v", got.Current.Wind, WindStrong)
	}
	// Bitter + very heavy is a blizzard, which forces poor visibility even
	// though the raw roll was clear.
	if got.Condition != ConditionBlizzard {
		t.Fatalf("condition = %v, want %v", got.Condition, ConditionBlizzard)
	}
	if got.Current.Visibility != VisPoor {
		t.Fatalf("visibility = %v, want %v", got.Current.Visibility, VisPoor)
	}
	if len(got.Breakdown) != 4 {
		t.Fatalf("len(Breakdown) = %d, want 4", len(got.Breakdown))
	}
	if !got.Breakdown[2].Overridden {
		t.Fatal("visibility breakdown not marked overridden")
	}
}

func TestGenerateWeatherPrecipitationOverridesVisibility(t *testing.T) {
	cond := Conditions{Climate: ClimateTemperate, Season: SeasonSummer, Terrain: TerrainPlains}
	// Precipitation 8 -> heavy forces moderate visibility over a clear roll.
	got, err := GenerateWeather(cond, WeatherRolls{Temperature: 5, Precipitation: 8, Visibility: 2, Wind: 3})
	if err != nil {
		t.Fatalf("GenerateWeather() error = %v", err)
	}
	if got.Current.Precipitation != PrecipHeavy {
		t.Fatalf("precipitation = %v, want %v", got.Current.Precipitation, PrecipHeavy)
	}
	if got.Current.Visibility != VisModerate {
		t.Fatalf("visibility = %v, want %v", got.Current.Visibility, VisModerate)
	}
}

func TestGenerateWeatherInvalidInputs(t *testing.T) {
	rolls := WeatherRolls{Temperature: 5, Precipitation: 5, Visibility: 5, Wind: 5}
	tests := []struct {
		name string
		cond Conditions
		want error
	}{
		{"bad season", Conditions{Climate: ClimateTemperate, Season: "monsoon", Terrain: TerrainPlains}, ErrInvalidSeason},
		{"bad climate", Conditions{Climate: "arctic", Season: SeasonSummer, Terrain: TerrainPlains}, ErrInvalidClimate},
		{"bad terrain", Conditions{Climate: ClimateTemperate, Season: SeasonSummer, Terrain: "desert"}, ErrInvalidTerrain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateWeather(tt.cond, rolls); !errors.Is(err, tt.want) {
				t.Fatalf("GenerateWeather() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	base := Current{Temperature: TempComfortable, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindStill}

	got, err := Override(base, "wind", "very-strong")
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if got.Wind != WindVeryStrong {
		t.Fatalf("wind = %v, want %v", got.Wind, WindVeryStrong)
	}
	if got.Temperature != base.Temperature {
		t.Fatalf("override touched temperature: %v", got.Temperature)
	}

	if _, err := Override(base, "humidity", "high"); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Override(humidity) error = %v, want %v", err, ErrInvalidField)
	}
	if _, err := Override(base, "temperature", "freezing"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("Override(freezing) error = %v, want %v", err, ErrInvalidCategory)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		current Current
		want    Condition
	}{
		{
			name:    "calm day",
			current: Current{Temperature: TempComfortable, Precipitation: PrecipLight, Visibility: VisClear, Wind: WindGentle},
			want:    ConditionNormal,
		},
		{
			name:    "bitter very heavy is blizzard regardless of wind",
			current: Current{Temperature: TempBitter, Precipitation: PrecipVeryHeavy, Visibility: VisPoor, Wind: WindStill},
			want:    ConditionBlizzard,
		},
		{
			name:    "warm storm",
			current: Current{Temperature: TempHot, Precipitation: PrecipHeavy, Visibility: VisModerate, Wind: WindStrong},
			want:    ConditionThunderStorm,
		},
		{
			name:    "cold storm degrades to blizzard",
			current: Current{Temperature: TempChilly, Precipitation: PrecipHeavy, Visibility: VisModerate, Wind: WindVeryStrong},
			want:    ConditionBlizzard,
		},
		{
			name:    "strong wind alone is normal",
			current: Current{Temperature: TempBitter, Precipitation: PrecipNone, Visibility: VisClear, Wind: WindVeryStrong},
			want:    ConditionNormal,
		},
		{
			name:    "heavy rain without wind is normal",
			current: Current{Temperature: TempChilly, Precipitation: PrecipVeryHeavy, Visibility: VisPoor, Wind: WindGentle},
			want:    ConditionNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.current); got != tt.want {
				t.Fatalf("Classify(%+v) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		condition Condition
		want      string
	}{
		{ConditionNormal, "normal"},
		{ConditionThunderStorm, "thunder-storm"},
		{ConditionExtremeCold, "extreme-cold"},
		{ConditionBlizzard, "blizzard"},
		{Condition(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.condition.String(); got != tt.want {
			t.Fatalf("Condition(%d).String() = %q, want %q", int(tt.condition), got, tt.want)
		}
	}
}
