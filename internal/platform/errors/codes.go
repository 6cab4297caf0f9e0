package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Party errors
	CodePartyNameEmpty       Code = "PARTY_NAME_EMPTY"
	CodePartyInvalidPhase    Code = "PARTY_INVALID_PHASE"
	CodePartyMemberDuplicate Code = "PARTY_MEMBER_DUPLICATE"
	CodePartyMemberMissing   Code = "PARTY_MEMBER_MISSING"

	// Character errors
	CodeCharacterEmptyName  Code = "CHARACTER_EMPTY_NAME"
	CodeCharacterInvalidTB  Code = "CHARACTER_INVALID_TOUGHNESS_BONUS"
	CodeCharacterBadWounds  Code = "CHARACTER_INVALID_WOUNDS"
	CodeCharacterIDRequired Code = "CHARACTER_ID_REQUIRED"

	// Weather errors
	CodeWeatherInvalidSeason   Code = "WEATHER_INVALID_SEASON"
	CodeWeatherInvalidClimate  Code = "WEATHER_INVALID_CLIMATE"
	CodeWeatherInvalidTerrain  Code = "WEATHER_INVALID_TERRAIN"
	CodeWeatherInvalidField    Code = "WEATHER_INVALID_FIELD"
	CodeWeatherInvalidCategory Code = "WEATHER_INVALID_CATEGORY"

	// Travel rules errors
	CodeTravelUnknownAction    Code = "TRAVEL_UNKNOWN_ACTION"
	CodeTravelInvalidDelta     Code = "TRAVEL_INVALID_DELTA"
	CodeTravelUnknownResource  Code = "TRAVEL_UNKNOWN_RESOURCE"
	CodeTravelEventModifierOOB Code = "TRAVEL_EVENT_MODIFIER_OUT_OF_BOUNDS"
	CodeTravelInvalidPayment   Code = "TRAVEL_INVALID_PAYMENT"

	// Dice errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
