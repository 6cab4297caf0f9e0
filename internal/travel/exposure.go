package travel

import "fmt"

// ExposureRates are the per-day exposure gains for each travel status.
type ExposureRates struct {
	Traveling   int
	Camping     int
	Explanation string
}

// ExposureFor derives daily exposure gain from the classified condition, the
// current temperature band, and the party's gear flags.
func ExposureFor(condition Condition, current Current, gear Gear) ExposureRates {
	switch {
	case condition == ConditionBlizzard || condition == ConditionExtremeCold:
		traveling := 3
		if gear.WeatherAppropriateGear {
			traveling = 1
		}
		camping := traveling
		if gear.CampSetup {
			camping = 0
		}
		return ExposureRates{
			Traveling:   traveling,
			Camping:     camping,
			Explanation: fmt.Sprintf("%s: %d exposure/day traveling, %d camping", condition, traveling, camping),
		}
	case current.Temperature == TempBitter || current.Temperature == TempSweltering:
		return temperatureRates(current.Temperature, 2, gear)
	case current.Temperature == TempChilly || current.Temperature == TempHot:
		return temperatureRates(current.Temperature, 1, gear)
	default:
		return ExposureRates{Explanation: "normal conditions: no exposure gain"}
	}
}

func temperatureRates(temp Temperature, base int, gear Gear) ExposureRates {
	traveling := base
	if gear.WeatherAppropriateGear {
		traveling = 0
	}
	camping := base
	if gear.CampSetup {
		camping = 0
	}
	return ExposureRates{
		Traveling:   traveling,
		Camping:     camping,
		Explanation: fmt.Sprintf("%s temperature: %d exposure/day traveling, %d camping", temp, traveling, camping),
	}
}
