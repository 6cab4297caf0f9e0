package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/wayfarer/internal/party"
	"github.com/louisbranch/wayfarer/internal/service"
	"github.com/louisbranch/wayfarer/internal/travel"
)

// PartyCreateHandler creates a party.
func PartyCreateHandler(svc *service.Service) mcp.ToolHandlerFor[PartyCreateInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PartyCreateInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.CreateParty(ctx, input.Name)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// PartyListHandler lists all parties.
func PartyListHandler(svc *service.Service) mcp.ToolHandlerFor[PartyListInput, PartyListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PartyListInput) (*mcp.CallToolResult, PartyListResult, error) {
		parties, err := svc.ListParties(ctx)
		if err != nil {
			return nil, PartyListResult{}, err
		}
		return nil, PartyListResult{Parties: parties}, nil
	}
}

// PartyGetHandler assembles a party view.
func PartyGetHandler(svc *service.Service) mcp.ToolHandlerFor[PartyGetInput, PartyGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PartyGetInput) (*mcp.CallToolResult, PartyGetResult, error) {
		view, err := svc.GetParty(ctx, input.PartyID)
		if err != nil {
			return nil, PartyGetResult{}, err
		}
		return nil, PartyGetResult{View: view}, nil
	}
}

// RosterAddHandler adds a character to a roster.
func RosterAddHandler(svc *service.Service) mcp.ToolHandlerFor[RosterInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RosterInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.AddToRoster(ctx, input.PartyID, input.CharacterID)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// RosterRemoveHandler removes a character from a roster.
func RosterRemoveHandler(svc *service.Service) mcp.ToolHandlerFor[RosterInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RosterInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.RemoveFromRoster(ctx, input.PartyID, input.CharacterID)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// CharacterRegisterHandler registers a traveler.
func CharacterRegisterHandler(svc *service.Service) mcp.ToolHandlerFor[CharacterRegisterInput, CharacterRegisterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterRegisterInput) (*mcp.CallToolResult, CharacterRegisterResult, error) {
		c, err := svc.RegisterCharacter(ctx, input.Name, input.ImageRef, input.ToughnessBonus, input.CurrentWounds, input.MaxWounds)
		if err != nil {
			return nil, CharacterRegisterResult{}, err
		}
		return nil, CharacterRegisterResult{Character: c}, nil
	}
}

// AdvanceDayHandler advances or previews one travel day.
func AdvanceDayHandler(svc *service.Service) mcp.ToolHandlerFor[AdvanceDayInput, AdvanceDayResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AdvanceDayInput) (*mcp.CallToolResult, AdvanceDayResult, error) {
		report, err := svc.AdvanceDay(ctx, input.PartyID, input.Preview)
		if err != nil {
			return nil, AdvanceDayResult{}, err
		}
		return nil, AdvanceDayResult{Report: report}, nil
	}
}

// GenerateWeatherHandler rolls new weather for a party.
func GenerateWeatherHandler(svc *service.Service) mcp.ToolHandlerFor[GenerateWeatherInput, GenerateWeatherResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateWeatherInput) (*mcp.CallToolResult, GenerateWeatherResult, error) {
		generated, err := svc.GenerateWeather(ctx, input.PartyID, input.Seed)
		if err != nil {
			return nil, GenerateWeatherResult{}, err
		}
		return nil, GenerateWeatherResult{
			Current:   generated.Current,
			Condition: generated.Condition.String(),
			Breakdown: generated.Breakdown,
		}, nil
	}
}

// OverrideWeatherHandler overrides one weather field.
func OverrideWeatherHandler(svc *service.Service) mcp.ToolHandlerFor[OverrideWeatherInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OverrideWeatherInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.OverrideWeather(ctx, input.PartyID, input.Field, input.Category)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// SetConditionsHandler sets the weather generation inputs.
func SetConditionsHandler(svc *service.Service) mcp.ToolHandlerFor[SetConditionsInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetConditionsInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetConditions(ctx, input.PartyID, travel.Conditions{
			Climate: travel.Climate(input.Climate),
			Season:  travel.Season(input.Season),
			Terrain: travel.Terrain(input.Terrain),
		})
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// SetGearHandler sets the gear flags.
func SetGearHandler(svc *service.Service) mcp.ToolHandlerFor[SetGearInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetGearInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetGear(ctx, input.PartyID, travel.Gear{
			WeatherAppropriateGear: input.WeatherAppropriateGear,
			CampSetup:              input.CampSetup,
		})
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// RollEventHandler rolls a narrative event.
func RollEventHandler(svc *service.Service) mcp.ToolHandlerFor[RollEventInput, RollEventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollEventInput) (*mcp.CallToolResult, RollEventResult, error) {
		result, err := svc.RollEvent(ctx, input.PartyID, input.Seed)
		if err != nil {
			return nil, RollEventResult{}, err
		}
		return nil, RollEventResult{Result: result}, nil
	}
}

// SetEventModifierHandler sets the GM event modifier.
func SetEventModifierHandler(svc *service.Service) mcp.ToolHandlerFor[SetEventModifierInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetEventModifierInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetEventModifier(ctx, input.PartyID, input.Modifier)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// ToggleWatchHandler toggles a member's night watch.
func ToggleWatchHandler(svc *service.Service) mcp.ToolHandlerFor[ToggleWatchInput, ToggleWatchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ToggleWatchInput) (*mcp.CallToolResult, ToggleWatchResult, error) {
		rotation, err := svc.ToggleWatch(ctx, input.PartyID, input.CharacterID)
		if err != nil {
			return nil, ToggleWatchResult{}, err
		}
		return nil, ToggleWatchResult{Rotation: rotation}, nil
	}
}

// SetTaskActionHandler assigns a camp or travel action.
func SetTaskActionHandler(svc *service.Service) mcp.ToolHandlerFor[SetTaskActionInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetTaskActionInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetTaskAction(ctx, input.PartyID, input.CharacterID, travel.Action(input.Action))
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// AdjustResourceHandler applies a manual resource delta.
func AdjustResourceHandler(svc *service.Service) mcp.ToolHandlerFor[AdjustResourceInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AdjustResourceInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.AdjustResource(ctx, input.PartyID, input.Resource, input.Delta)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// BuyConsumableHandler spends preparedness pool on a consumable.
func BuyConsumableHandler(svc *service.Service) mcp.ToolHandlerFor[BuyConsumableInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuyConsumableInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.BuyConsumable(ctx, input.PartyID, travel.Consumable(input.Consumable))
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// ResetConsumablesHandler refunds held consumables.
func ResetConsumablesHandler(svc *service.Service) mcp.ToolHandlerFor[ResetConsumablesInput, ResetConsumablesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResetConsumablesInput) (*mcp.CallToolResult, ResetConsumablesResult, error) {
		refund, err := svc.ResetConsumables(ctx, input.PartyID)
		if err != nil {
			return nil, ResetConsumablesResult{}, err
		}
		return nil, ResetConsumablesResult{Refund: refund}, nil
	}
}

// RollHexesHandler rolls the hexes-until-event countdown.
func RollHexesHandler(svc *service.Service) mcp.ToolHandlerFor[RollHexesInput, RollHexesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollHexesInput) (*mcp.CallToolResult, RollHexesResult, error) {
		roll, err := svc.RollHexes(ctx, input.PartyID, input.Seed)
		if err != nil {
			return nil, RollHexesResult{}, err
		}
		return nil, RollHexesResult{Roll: roll}, nil
	}
}

// ResolveActionHandler resolves a skill-tested action.
func ResolveActionHandler(svc *service.Service) mcp.ToolHandlerFor[ResolveActionInput, ResolveActionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResolveActionInput) (*mcp.CallToolResult, ResolveActionResult, error) {
		report, err := svc.ResolveAction(ctx, service.ActionRequest{
			PartyID:     input.PartyID,
			CharacterID: input.CharacterID,
			Action:      travel.Action(input.Action),
			Test: travel.TestResult{
				SL:       input.SL,
				Critical: input.Critical,
				Fumble:   input.Fumble,
			},
			Payment:    travel.Payment(input.Payment),
			CookReward: travel.CookReward(input.CookReward),
			DamageSeed: input.Seed,
		})
		if err != nil {
			return nil, ResolveActionResult{}, err
		}
		return nil, ResolveActionResult{Report: report}, nil
	}
}

// SetPhaseHandler moves the journey phase.
func SetPhaseHandler(svc *service.Service) mcp.ToolHandlerFor[SetPhaseInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetPhaseInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetPhase(ctx, input.PartyID, party.Phase(input.Phase))
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// ToggleStatusHandler flips the travel posture.
func ToggleStatusHandler(svc *service.Service) mcp.ToolHandlerFor[ToggleStatusInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ToggleStatusInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.ToggleStatus(ctx, input.PartyID)
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// SetTravelOptionsHandler applies the travel toggles.
func SetTravelOptionsHandler(svc *service.Service) mcp.ToolHandlerFor[SetTravelOptionsInput, PartyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetTravelOptionsInput) (*mcp.CallToolResult, PartyResult, error) {
		p, err := svc.SetTravelOptions(ctx, input.PartyID, service.TravelOptions{
			HasMounts:           input.HasMounts,
			MountsGrazing:       input.MountsGrazing,
			ForcedMarch:         input.ForcedMarch,
			ExtraRations:        input.ExtraRations,
			HalfRations:         input.HalfRations,
			FairWeatherRecovery: input.FairWeatherRecovery,
		})
		if err != nil {
			return nil, PartyResult{}, err
		}
		return nil, PartyResult{Party: p}, nil
	}
}

// DangerFactorsSetHandler replaces the danger factors.
func DangerFactorsSetHandler(svc *service.Service) mcp.ToolHandlerFor[DangerFactorsInput, DangerFactorsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DangerFactorsInput) (*mcp.CallToolResult, DangerFactorsResult, error) {
		p, err := svc.SetDangerFactors(ctx, input.PartyID, input.Factors)
		if err != nil {
			return nil, DangerFactorsResult{}, err
		}
		return nil, DangerFactorsResult{Party: p, DangerRating: p.State.DangerRating()}, nil
	}
}

// DayLogHandler lists committed travel days.
func DayLogHandler(svc *service.Service) mcp.ToolHandlerFor[DayLogInput, DayLogResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DayLogInput) (*mcp.CallToolResult, DayLogResult, error) {
		entries, err := svc.DayLog(ctx, input.PartyID, input.Limit)
		if err != nil {
			return nil, DayLogResult{}, err
		}
		return nil, DayLogResult{Entries: entries}, nil
	}
}
