// Package mcp exposes the travel service as MCP tools over stdio.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/wayfarer/internal/party"
	"github.com/louisbranch/wayfarer/internal/service"
	"github.com/louisbranch/wayfarer/internal/storage"
	"github.com/louisbranch/wayfarer/internal/travel"
)

// PartyCreateInput is the input for creating a party.
type PartyCreateInput struct {
	Name string `json:"name" jsonschema:"display name for the travel party"`
}

// PartyResult is the party payload most mutations return.
type PartyResult struct {
	Party *party.Party `json:"party" jsonschema:"the tracked party with its full state"`
}

// PartyCreateTool defines the MCP tool schema for creating a party.
func PartyCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_create",
		Description: "Create a new travel party with default journey state",
	}
}

// PartyListInput is the (empty) input for listing parties.
type PartyListInput struct{}

// PartyListResult is the list of tracked parties.
type PartyListResult struct {
	Parties []*party.Party `json:"parties" jsonschema:"all tracked parties"`
}

// PartyListTool defines the MCP tool schema for listing parties.
func PartyListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_list",
		Description: "List all tracked travel parties",
	}
}

// PartyGetInput is the input for reading a party.
type PartyGetInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
}

// PartyGetResult is the assembled party view.
type PartyGetResult struct {
	View *service.View `json:"view" jsonschema:"party state with resolved roster and derived values"`
}

// PartyGetTool defines the MCP tool schema for reading a party.
func PartyGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_get",
		Description: "Get a party's full state, resolved roster, and derived values (danger rating, weariness threshold, journey pool max, weather condition)",
	}
}

// RosterInput identifies a party/character pair.
type RosterInput struct {
	PartyID     string `json:"party_id" jsonschema:"party identifier"`
	CharacterID string `json:"character_id" jsonschema:"registered character identifier"`
}

// RosterAddTool defines the MCP tool schema for adding a roster member.
func RosterAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roster_add",
		Description: "Add a registered character to a party's roster",
	}
}

// RosterRemoveTool defines the MCP tool schema for removing a roster member.
func RosterRemoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roster_remove",
		Description: "Remove a character from a party's roster",
	}
}

// CharacterRegisterInput is the input for registering a traveler.
type CharacterRegisterInput struct {
	Name           string `json:"name" jsonschema:"character name"`
	ImageRef       string `json:"image_ref,omitempty" jsonschema:"optional token or portrait reference"`
	ToughnessBonus int    `json:"toughness_bonus" jsonschema:"toughness bonus, non-negative"`
	CurrentWounds  int    `json:"current_wounds" jsonschema:"current wounds, 0..max_wounds"`
	MaxWounds      int    `json:"max_wounds" jsonschema:"maximum wounds"`
}

// CharacterRegisterResult is the registered character.
type CharacterRegisterResult struct {
	Character *party.Character `json:"character" jsonschema:"the registered character"`
}

// CharacterRegisterTool defines the MCP tool schema for registering a character.
func CharacterRegisterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_register",
		Description: "Register a character in the travel registry with the stats the travel rules read",
	}
}

// AdvanceDayInput is the input for advancing a travel day.
type AdvanceDayInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Preview bool   `json:"preview,omitempty" jsonschema:"when true, resolve the day without committing any changes"`
}

// AdvanceDayResult is the resolved day.
type AdvanceDayResult struct {
	Report *service.DayReport `json:"report" jsonschema:"day outcome with summary, wound changes, and commit status"`
}

// AdvanceDayTool defines the MCP tool schema for advancing a day.
func AdvanceDayTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "advance_day",
		Description: "Advance one travel day: consume provisions, update hunger and exposure, apply weather strain, convert weariness overflow to travel fatigue, and deal exposure wounds. Use preview to see the outcome without committing",
	}
}

// GenerateWeatherInput is the input for rolling new weather.
type GenerateWeatherInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"optional dice seed for reproducible rolls"`
}

// GenerateWeatherResult is the generated weather with its roll breakdown.
type GenerateWeatherResult struct {
	Current   travel.Current         `json:"current" jsonschema:"the generated weather"`
	Condition string                 `json:"condition" jsonschema:"classified extreme condition"`
	Breakdown []travel.RollBreakdown `json:"breakdown" jsonschema:"per-field roll audit"`
}

// GenerateWeatherTool defines the MCP tool schema for weather generation.
func GenerateWeatherTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_weather",
		Description: "Roll new weather from the party's climate, season, and terrain, applying visibility overrides and extreme-condition rules",
	}
}

// OverrideWeatherInput is the input for a manual weather override.
type OverrideWeatherInput struct {
	PartyID  string `json:"party_id" jsonschema:"party identifier"`
	Field    string `json:"field" jsonschema:"weather field: temperature, precipitation, visibility, or wind"`
	Category string `json:"category" jsonschema:"category to set, e.g. bitter, very-heavy, poor, strong"`
}

// OverrideWeatherTool defines the MCP tool schema for overriding weather.
func OverrideWeatherTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "override_weather",
		Description: "Manually override one field of the current weather",
	}
}

// SetConditionsInput is the input for setting weather generation inputs.
type SetConditionsInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Climate string `json:"climate" jsonschema:"climate: hot, temperate, or cold"`
	Season  string `json:"season" jsonschema:"season: spring, summer, autumn, or winter"`
	Terrain string `json:"terrain" jsonschema:"terrain: plains, forest, hills, mountains, marsh, or coast"`
}

// SetConditionsTool defines the MCP tool schema for setting conditions.
func SetConditionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_conditions",
		Description: "Set the climate, season, and terrain that feed weather generation",
	}
}

// SetGearInput is the input for setting gear flags.
type SetGearInput struct {
	PartyID                string `json:"party_id" jsonschema:"party identifier"`
	WeatherAppropriateGear bool   `json:"weather_appropriate_gear" jsonschema:"party carries weather-appropriate gear"`
	CampSetup              bool   `json:"camp_setup" jsonschema:"a proper camp is set up"`
}

// SetGearTool defines the MCP tool schema for setting gear flags.
func SetGearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_gear",
		Description: "Set the weather gear and camp setup flags that mitigate exposure",
	}
}

// RollEventInput is the input for rolling a narrative event.
type RollEventInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"optional dice seed for reproducible rolls"`
}

// RollEventResult is the rolled event.
type RollEventResult struct {
	Result travel.EventResult `json:"result" jsonschema:"base roll, modifier, total, and the matched event"`
}

// RollEventTool defines the MCP tool schema for rolling an event.
func RollEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_event",
		Description: "Roll a percentile narrative event with the party's GM modifier applied",
	}
}

// SetEventModifierInput is the input for the GM event modifier.
type SetEventModifierInput struct {
	PartyID  string `json:"party_id" jsonschema:"party identifier"`
	Modifier int    `json:"modifier" jsonschema:"event roll modifier in [-50, 50]"`
}

// SetEventModifierTool defines the MCP tool schema for the event modifier.
func SetEventModifierTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_event_modifier",
		Description: "Set the GM modifier added to narrative event rolls (-50 to 50)",
	}
}

// ToggleWatchInput is the input for toggling a member's night watch.
type ToggleWatchInput struct {
	PartyID     string `json:"party_id" jsonschema:"party identifier"`
	CharacterID string `json:"character_id" jsonschema:"roster member identifier"`
}

// ToggleWatchResult is the new watch rotation.
type ToggleWatchResult struct {
	Rotation travel.WatchRotation `json:"rotation" jsonschema:"resulting night-watch rotation and its rest consequences"`
}

// ToggleWatchTool defines the MCP tool schema for toggling watch.
func ToggleWatchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "toggle_watch",
		Description: "Toggle whether a roster member stands night watch and report the resulting rotation",
	}
}

// SetTaskActionInput is the input for assigning a camp or travel action.
type SetTaskActionInput struct {
	PartyID     string `json:"party_id" jsonschema:"party identifier"`
	CharacterID string `json:"character_id" jsonschema:"roster member identifier"`
	Action      string `json:"action,omitempty" jsonschema:"action key, e.g. forage, cook, recuperate; empty clears the assignment"`
}

// SetTaskActionTool defines the MCP tool schema for assigning an action.
func SetTaskActionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_task_action",
		Description: "Assign a camp or travel action to a roster member",
	}
}

// AdjustResourceInput is the input for a manual resource adjustment.
type AdjustResourceInput struct {
	PartyID  string `json:"party_id" jsonschema:"party identifier"`
	Resource string `json:"resource" jsonschema:"resource name: preparednessPool, journeyPool, provisions, mountProvisions, weariness, travelFatigue, hunger, or exposure"`
	Delta    int    `json:"delta" jsonschema:"signed change, non-zero; weariness increases convert overflow to travel fatigue"`
}

// AdjustResourceTool defines the MCP tool schema for adjusting a resource.
func AdjustResourceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "adjust_resource",
		Description: "Apply a manual delta to one party resource, with clamping and weariness overflow conversion. During preparation, provisions and mount provisions charge or refund 1 preparedness pool point each",
	}
}

// BuyConsumableInput is the input for spending preparedness pool.
type BuyConsumableInput struct {
	PartyID    string `json:"party_id" jsonschema:"party identifier"`
	Consumable string `json:"consumable" jsonschema:"consumable key, e.g. campSupplies, spirits, meticulousPlanning"`
}

// BuyConsumableTool defines the MCP tool schema for buying a consumable.
func BuyConsumableTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "buy_consumable",
		Description: "Spend preparedness pool on a consumable during the preparation phase; the pool may go negative",
	}
}

// ResetConsumablesInput is the input for resetting preparations.
type ResetConsumablesInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
}

// ResetConsumablesResult is the refund from a reset.
type ResetConsumablesResult struct {
	Refund int `json:"refund" jsonschema:"preparedness pool points refunded"`
}

// ResetConsumablesTool defines the MCP tool schema for resetting consumables.
func ResetConsumablesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "reset_consumables",
		Description: "Reset provisions, mount provisions, and all stocked consumables to zero, refunding their preparedness pool cost",
	}
}

// RollHexesInput is the input for the hexes-until-event roll.
type RollHexesInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"optional dice seed for reproducible rolls"`
}

// RollHexesResult is the audited countdown roll.
type RollHexesResult struct {
	Roll travel.HexesRoll `json:"roll" jsonschema:"roll, halving, danger modifier, and resulting hex count"`
}

// RollHexesTool defines the MCP tool schema for the hexes roll.
func RollHexesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_hexes",
		Description: "Roll the hexes-until-event countdown against the party's danger rating",
	}
}

// ResolveActionInput is the input for resolving a skill-tested action.
type ResolveActionInput struct {
	PartyID     string `json:"party_id" jsonschema:"party identifier"`
	CharacterID string `json:"character_id" jsonschema:"acting roster member"`
	Action      string `json:"action" jsonschema:"action key, e.g. pathfinding, forage, cook, recuperate"`
	SL          int    `json:"sl" jsonschema:"success levels of the externally rolled skill test"`
	Critical    bool   `json:"critical,omitempty" jsonschema:"the test was a critical"`
	Fumble      bool   `json:"fumble,omitempty" jsonschema:"the test was a fumble"`
	Payment     string `json:"payment,omitempty" jsonschema:"travel action cost: journey-pool (default) or weariness"`
	CookReward  string `json:"cook_reward,omitempty" jsonschema:"excellent cooking reward: clear-weariness (default) or reduce-fatigue"`
	Seed        *int64 `json:"seed,omitempty" jsonschema:"optional seed for the fumble damage die"`
}

// ResolveActionResult is the resolved action.
type ResolveActionResult struct {
	Report *service.ActionReport `json:"report" jsonschema:"action outcome plus rolled damage or healing applied"`
}

// ResolveActionTool defines the MCP tool schema for resolving an action.
func ResolveActionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "resolve_action",
		Description: "Resolve a camp or travel action from a skill test result and apply its consequences",
	}
}

// SetPhaseInput is the input for moving the journey phase.
type SetPhaseInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Phase   string `json:"phase" jsonschema:"journey phase: planning, preparation, travel, or arrival"`
}

// SetPhaseTool defines the MCP tool schema for setting the phase.
func SetPhaseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_phase",
		Description: "Move the party's journey to a new phase",
	}
}

// ToggleStatusInput is the input for flipping travel posture.
type ToggleStatusInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
}

// ToggleStatusTool defines the MCP tool schema for toggling status.
func ToggleStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "toggle_status",
		Description: "Flip the party between traveling and camping; breaking camp discards the prepared site",
	}
}

// SetTravelOptionsInput is the input for the travel toggles.
type SetTravelOptionsInput struct {
	PartyID             string `json:"party_id" jsonschema:"party identifier"`
	HasMounts           *bool  `json:"has_mounts,omitempty" jsonschema:"party travels with mounts"`
	MountsGrazing       *bool  `json:"mounts_grazing,omitempty" jsonschema:"mounts graze instead of eating mount provisions"`
	ForcedMarch         *bool  `json:"forced_march,omitempty" jsonschema:"party is on a forced march"`
	ExtraRations        *bool  `json:"extra_rations,omitempty" jsonschema:"party eats extra rations"`
	HalfRations         *bool  `json:"half_rations,omitempty" jsonschema:"party eats half rations"`
	FairWeatherRecovery *bool  `json:"fair_weather_recovery,omitempty" jsonschema:"exposure clears on days with no exposure gain"`
}

// SetTravelOptionsTool defines the MCP tool schema for travel options.
func SetTravelOptionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_travel_options",
		Description: "Set travel toggles: mounts, grazing, march and ration modifiers, fair-weather recovery",
	}
}

// DangerFactorsInput is the input for replacing the danger factors.
type DangerFactorsInput struct {
	PartyID string               `json:"party_id" jsonschema:"party identifier"`
	Factors travel.DangerFactors `json:"factors" jsonschema:"the full set of boolean danger factors"`
}

// DangerFactorsResult is the new danger rating.
type DangerFactorsResult struct {
	Party        *party.Party `json:"party" jsonschema:"the updated party"`
	DangerRating int          `json:"danger_rating" jsonschema:"derived danger rating"`
}

// DangerFactorsSetTool defines the MCP tool schema for setting danger factors.
func DangerFactorsSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "danger_factors_set",
		Description: "Replace the journey danger factors and return the derived danger rating",
	}
}

// DayLogInput is the input for reading the travel day log.
type DayLogInput struct {
	PartyID string `json:"party_id" jsonschema:"party identifier"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum entries to return, newest first; 0 returns all"`
}

// DayLogResult is the day log.
type DayLogResult struct {
	Entries []storage.DayLogEntry `json:"entries" jsonschema:"committed travel days, newest first"`
}

// DayLogTool defines the MCP tool schema for reading the day log.
func DayLogTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "day_log",
		Description: "List the party's committed travel days, newest first",
	}
}
