// Package travel implements the party travel rules: weather generation,
// exposure, weariness conversion, danger ratings, narrative events, and the
// daily tick that ties them together.
package travel

import (
	"fmt"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
)

// Temperature is the generated temperature band, hot end first.
type Temperature string

const (
	TempSweltering  Temperature = "sweltering"
	TempHot         Temperature = "hot"
	TempComfortable Temperature = "comfortable"
	TempChilly      Temperature = "chilly"
	TempBitter      Temperature = "bitter"
)

// Precipitation is the generated precipitation band.
type Precipitation string

const (
	PrecipNone      Precipitation = "none"
	PrecipLight     Precipitation = "light"
	PrecipHeavy     Precipitation = "heavy"
	PrecipVeryHeavy Precipitation = "very-heavy"
)

// Visibility is the generated visibility band.
type Visibility string

const (
	VisClear    Visibility = "clear"
	VisModerate Visibility = "moderate"
	VisPoor     Visibility = "poor"
)

// Wind is the generated wind band.
type Wind string

const (
	WindStill      Wind = "still"
	WindGentle     Wind = "gentle"
	WindModerate   Wind = "moderate"
	WindStrong     Wind = "strong"
	WindVeryStrong Wind = "very-strong"
)

// Season modifies the temperature and precipitation rolls.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Climate modifies the temperature roll.
type Climate string

const (
	ClimateHot       Climate = "hot"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
)

// Terrain modifies the temperature and wind rolls.
type Terrain string

const (
	TerrainPlains    Terrain = "plains"
	TerrainForest    Terrain = "forest"
	TerrainHills     Terrain = "hills"
	TerrainMountains Terrain = "mountains"
	TerrainMarsh     Terrain = "marsh"
	TerrainCoast     Terrain = "coast"
)

// Conditions are the GM-set inputs to weather generation.
type Conditions struct {
	Climate Climate `json:"climate"`
	Season  Season  `json:"season"`
	Terrain Terrain `json:"terrain"`
}

// Current is the generated (or overridden) weather state.
type Current struct {
	Temperature   Temperature   `json:"temperature"`
	Precipitation Precipitation `json:"precipitation"`
	Visibility    Visibility    `json:"visibility"`
	Wind          Wind          `json:"wind"`
}

// Gear flags mitigate weather effects.
type Gear struct {
	WeatherAppropriateGear bool `json:"weatherAppropriateGear"`
	CampSetup              bool `json:"campSetup"`
}

// Sentinel errors for weather inputs.
var (
	ErrInvalidSeason   = apperrors.New(apperrors.CodeWeatherInvalidSeason, "unknown season")
	ErrInvalidClimate  = apperrors.New(apperrors.CodeWeatherInvalidClimate, "unknown climate")
	ErrInvalidTerrain  = apperrors.New(apperrors.CodeWeatherInvalidTerrain, "unknown terrain")
	ErrInvalidField    = apperrors.New(apperrors.CodeWeatherInvalidField, "unknown weather field")
	ErrInvalidCategory = apperrors.New(apperrors.CodeWeatherInvalidCategory, "unknown weather category")
)

// seasonModifiers shift the temperature and precipitation rolls.
var seasonModifiers = map[Season]int{
	SeasonSpring: 2,
	SeasonSummer: 0,
	SeasonAutumn: 2,
	SeasonWinter: 4,
}

// climateModifiers shift the temperature roll.
var climateModifiers = map[Climate]int{
	ClimateHot:       -2,
	ClimateTemperate: 0,
	ClimateCold:      2,
}

var validTerrains = map[Terrain]bool{
	TerrainPlains:    true,
	TerrainForest:    true,
	TerrainHills:     true,
	TerrainMountains: true,
	TerrainMarsh:     true,
	TerrainCoast:     true,
}

// Lookup tables bucket a modified d10 roll. Rows above 12 clamp to the row-12
// category; rows below 1 clamp to row 1.

var temperatureTable = [12]Temperature{
	TempSweltering,
	TempHot, TempHot,
	TempComfortable, TempComfortable, TempComfortable, TempComfortable, TempComfortable,
	TempChilly, TempChilly,
	TempBitter, TempBitter,
}

var precipitationTable = [12]Precipitation{
	PrecipNone, PrecipNone, PrecipNone, PrecipNone,
	PrecipLight, PrecipLight, PrecipLight,
	PrecipHeavy, PrecipHeavy,
	PrecipVeryHeavy, PrecipVeryHeavy,
	PrecipHeavy,
}

var visibilityTable = [12]Visibility{
	VisClear, VisClear, VisClear, VisClear, VisClear,
	VisModerate, VisModerate, VisModerate,
	VisPoor, VisPoor,
	VisModerate, VisModerate,
}

var windTable = [12]Wind{
	WindStill,
	WindGentle,
	WindModerate, WindModerate, WindModerate,
	WindStrong, WindStrong, WindStrong,
	WindVeryStrong, WindVeryStrong,
	WindModerate,
	WindGentle,
}

func tableRow(total int) int {
	if total < 1 {
		return 0
	}
	if total > 12 {
		return 11
	}
	return total - 1
}

// LookupTemperature buckets a modified temperature roll.
func LookupTemperature(total int) Temperature { return temperatureTable[tableRow(total)] }

// LookupPrecipitation buckets a modified precipitation roll.
func LookupPrecipitation(total int) Precipitation { return precipitationTable[tableRow(total)] }

// LookupVisibility buckets a visibility roll.
func LookupVisibility(total int) Visibility { return visibilityTable[tableRow(total)] }

// LookupWind buckets a modified wind roll.
func LookupWind(total int) Wind { return windTable[tableRow(total)] }

// RollBreakdown records one weather roll for auditability.
type RollBreakdown struct {
	Field    string `json:"field"`
	Roll     int    `json:"roll"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
	Category string `json:"category"`
	// Overridden is set when a precipitation or blizzard rule replaced the
	// rolled category.
	Overridden bool `json:"overridden,omitempty"`
}

func (b RollBreakdown) String() string {
	s := fmt.Sprintf("%s: 1d10(%d) %+d = %d -> %s", b.Field, b.Roll, b.Modifier, b.Total, b.Category)
	if b.Overridden {
		s += " (overridden)"
	}
	return s
}

// WeatherRolls are the four raw d10 results feeding generation.
type WeatherRolls struct {
	Temperature   int
	Precipitation int
	Visibility    int
	Wind          int
}

// GeneratedWeather is the outcome of a weather generation.
type GeneratedWeather struct {
	Current   Current
	Condition Condition
	Breakdown []RollBreakdown
}

// GenerateWeather buckets four raw d10 rolls through the weather tables,
// applying the season/climate/terrain modifiers and the visibility override
// rules: heavy precipitation forces moderate visibility, very heavy forces
// poor, and a blizzard forces poor regardless.
func GenerateWeather(cond Conditions, rolls WeatherRolls) (GeneratedWeather, error) {
	seasonMod, ok := seasonModifiers[cond.Season]
	if !ok {
		return GeneratedWeather{}, ErrInvalidSeason
	}
	climateMod, ok := climateModifiers[cond.Climate]
	if !ok {
		return GeneratedWeather{}, ErrInvalidClimate
	}
	if !validTerrains[cond.Terrain] {
		return GeneratedWeather{}, ErrInvalidTerrain
	}
	terrainTempMod := 0
	terrainWindMod := 0
	if cond.Terrain == TerrainMountains {
		terrainTempMod = 1
		terrainWindMod = 2
	}

	tempMod := seasonMod + climateMod + terrainTempMod
	temperature := LookupTemperature(rolls.Temperature + tempMod)
	precipitation := LookupPrecipitation(rolls.Precipitation + seasonMod)
	visibility := LookupVisibility(rolls.Visibility)
	wind := LookupWind(rolls.Wind + terrainWindMod)

	visibilityOverridden := false
	switch precipitation {
	case PrecipHeavy:
		visibility = VisModerate
		visibilityOverridden = true
	case PrecipVeryHeavy:
		visibility = VisPoor
		visibilityOverridden = true
	}

	current := Current{
		Temperature:   temperature,
		Precipitation: precipitation,
		Visibility:    visibility,
		Wind:          wind,
	}
	condition := Classify(current)
	if condition == ConditionBlizzard {
		current.Visibility = VisPoor
		visibilityOverridden = true
	}

	return GeneratedWeather{
		Current:   current,
		Condition: condition,
		Breakdown: []RollBreakdown{
			{Field: "temperature", Roll: rolls.Temperature, Modifier: tempMod, Total: rolls.Temperature + tempMod, Category: string(temperature)},
			{Field: "precipitation", Roll: rolls.Precipitation, Modifier: seasonMod, Total: rolls.Precipitation + seasonMod, Category: string(precipitation)},
			{Field: "visibility", Roll: rolls.Visibility, Modifier: 0, Total: rolls.Visibility, Category: string(current.Visibility), Overridden: visibilityOverridden},
			{Field: "wind", Roll: rolls.Wind, Modifier: terrainWindMod, Total: rolls.Wind + terrainWindMod, Category: string(wind)},
		},
	}, nil
}

// Override replaces one field of the current weather with a manual category.
func Override(current Current, field, category string) (Current, error) {
	switch field {
	case "temperature":
		switch t := Temperature(category); t {
		case TempSweltering, TempHot, TempComfortable, TempChilly, TempBitter:
			current.Temperature = t
		default:
			return Current{}, ErrInvalidCategory
		}
	case "precipitation":
		switch p := Precipitation(category); p {
		case PrecipNone, PrecipLight, PrecipHeavy, PrecipVeryHeavy:
			current.Precipitation = p
		default:
			return Current{}, ErrInvalidCategory
		}
	case "visibility":
		switch v := Visibility(category); v {
		case VisClear, VisModerate, VisPoor:
			current.Visibility = v
		default:
			return Current{}, ErrInvalidCategory
		}
	case "wind":
		switch w := Wind(category); w {
		case WindStill, WindGentle, WindModerate, WindStrong, WindVeryStrong:
			current.Wind = w
		default:
			return Current{}, ErrInvalidCategory
		}
	default:
		return Current{}, ErrInvalidField
	}
	return current, nil
}

// Condition classifies the current weather into extreme bands.
type Condition int

const (
	ConditionNormal Condition = iota
	ConditionThunderStorm
	ConditionExtremeCold
	ConditionBlizzard
)

func (c Condition) String() string {
	switch c {
	case ConditionNormal:
		return "normal"
	case ConditionThunderStorm:
		return "thunder-storm"
	case ConditionExtremeCold:
		return "extreme-cold"
	case ConditionBlizzard:
		return "blizzard"
	default:
		return "unknown"
	}
}

// Classify evaluates the extreme-condition predicates with fixed precedence.
// A bitter very-heavy sky is a blizzard outright; a thunder storm that is
// also extreme cold degrades to a blizzard as well, which resolves the
// overlap between the two lower predicates deterministically.
func Classify(current Current) Condition {
	coldTemp := current.Temperature == TempChilly || current.Temperature == TempBitter
	heavyPrecip := current.Precipitation == PrecipHeavy || current.Precipitation == PrecipVeryHeavy
	strongWind := current.Wind == WindStrong || current.Wind == WindVeryStrong

	thunderStorm := heavyPrecip && strongWind
	extremeCold := coldTemp && heavyPrecip && strongWind
	blizzard := (current.Temperature == TempBitter && current.Precipitation == PrecipVeryHeavy) ||
		(thunderStorm && extremeCold)

	switch {
	case blizzard:
		return ConditionBlizzard
	case extremeCold:
		return ConditionExtremeCold
	case thunderStorm:
		return ConditionThunderStorm
	default:
		return ConditionNormal
	}
}
