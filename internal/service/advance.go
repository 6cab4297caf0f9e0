package service

import (
	"context"

	"github.com/louisbranch/wayfarer/internal/party"
	"github.com/louisbranch/wayfarer/internal/storage"
	"github.com/louisbranch/wayfarer/internal/travel"
	"github.com/louisbranch/wayfarer/internal/travel/dice"
)

// DayReport is the result of advancing (or previewing) one travel day.
type DayReport struct {
	Outcome   travel.DayOutcome `json:"outcome"`
	Condition string            `json:"condition"`
	Threshold int               `json:"wearinessThreshold"`
	Committed bool              `json:"committed"`
}

// AdvanceDay resolves one travel day for a party. With preview set the
// resolved outcome is returned without touching the store; otherwise the new
// state, the wound updates, and a day-log entry commit in one transaction.
func (s *Service) AdvanceDay(ctx context.Context, partyID string, preview bool) (*DayReport, error) {
	p, err := s.store.GetParty(ctx, partyID)
	if err != nil {
		return nil, err
	}
	characters, err := s.store.ListCharacters(ctx, p.State.Roster)
	if err != nil {
		return nil, err
	}

	roster := make([]travel.Member, len(characters))
	tbs := make([]int, len(characters))
	for i, c := range characters {
		roster[i] = travel.Member{
			ID:             c.ID,
			Name:           c.Name,
			ToughnessBonus: c.ToughnessBonus,
			CurrentWounds:  c.CurrentWounds,
			MaxWounds:      c.MaxWounds,
		}
		tbs[i] = c.ToughnessBonus
	}

	outcome := travel.ResolveDay(travel.TickInput{
		Weather:             p.State.Weather.Current,
		Gear:                p.State.Weather.Gear,
		Status:              p.State.Travel.Status,
		HasMounts:           p.State.Travel.HasMounts,
		MountsGrazing:       p.State.Travel.MountsGrazing,
		Provisions:          p.State.Resources.Provisions,
		MountProvisions:     p.State.Resources.MountProvisions,
		Hunger:              p.State.Resources.Hunger,
		Exposure:            p.State.Resources.Exposure,
		Weariness:           p.State.Resources.Weariness,
		TravelFatigue:       p.State.Resources.TravelFatigue,
		JourneyPool:         p.State.Resources.JourneyPool,
		DaysOnRoad:          p.State.Journey.DaysOnRoad,
		Roster:              roster,
		FairWeatherRecovery: p.State.Options.FairWeatherRecovery,
	})

	report := &DayReport{
		Outcome:   outcome,
		Condition: outcome.Condition.String(),
		Threshold: travel.WearinessThreshold(tbs, p.State.Travel.HasMounts),
	}
	if preview {
		return report, nil
	}

	state := p.State
	state.Resources.Provisions = outcome.Provisions
	state.Resources.MountProvisions = outcome.MountProvisions
	state.Resources.Hunger = outcome.Hunger
	state.Resources.Exposure = outcome.Exposure
	state.Resources.Weariness = outcome.Weariness
	state.Resources.TravelFatigue = outcome.TravelFatigue
	state.Resources.JourneyPool = outcome.JourneyPool
	state.Journey.DaysOnRoad = outcome.DaysOnRoad
	if state.Journey.HexesUntilEvent > 0 && state.Travel.Status == travel.StatusTraveling {
		state.Journey.HexesUntilEvent--
	}
	state.ClampResources()

	now := s.now()
	err = s.store.CommitDay(ctx, storage.DayCommit{
		PartyID:   p.ID,
		State:     state,
		UpdatedAt: now,
		Wounds:    outcome.Wounds,
		Entry: storage.DayLogEntry{
			PartyID:   p.ID,
			Day:       outcome.DaysOnRoad,
			Condition: outcome.Condition.String(),
			Summary:   outcome.Summary,
			CreatedAt: now,
		},
	})
	if err != nil {
		return nil, err
	}
	report.Committed = true
	return report, nil
}

// DayLog returns the most recent committed days for a party.
func (s *Service) DayLog(ctx context.Context, partyID string, limit int) ([]storage.DayLogEntry, error) {
	if _, err := s.store.GetParty(ctx, partyID); err != nil {
		return nil, err
	}
	return s.store.ListDayLog(ctx, partyID, limit)
}

// ActionRequest carries everything resolve_action needs.
type ActionRequest struct {
	PartyID     string
	CharacterID string
	Action      travel.Action
	Test        travel.TestResult
	// Payment covers the travel-action cost; ignored for camp actions.
	Payment travel.Payment
	// CookReward picks the excellent-cooking reward.
	CookReward travel.CookReward
	// DamageSeed seeds the 1d10 damage roll on a fumbled forage or hunt.
	DamageSeed *int64
}

// ActionReport is a resolved action plus the state changes it caused.
type ActionReport struct {
	Outcome travel.ActionOutcome `json:"outcome"`
	// Damage is the rolled 1d10 damage on a fumble, zero otherwise.
	Damage int `json:"damage,omitempty"`
	// Healed is the wound recovery applied to the acting character.
	Healed int `json:"healed,omitempty"`
}

// ResolveAction resolves a skill-tested action for one roster member and
// applies its consequences to the party and the actor.
func (s *Service) ResolveAction(ctx context.Context, req ActionRequest) (*ActionReport, error) {
	p, err := s.store.GetParty(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if !p.State.HasMember(req.CharacterID) {
		return nil, party.ErrMemberMissing
	}
	actor, err := s.store.GetCharacter(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}
	characters, err := s.store.ListCharacters(ctx, p.State.Roster)
	if err != nil {
		return nil, err
	}
	tbs := make([]int, len(characters))
	for i, c := range characters {
		tbs[i] = c.ToughnessBonus
	}
	threshold := travel.WearinessThreshold(tbs, p.State.Travel.HasMounts)

	spec, err := travel.SpecFor(req.Action)
	if err != nil {
		return nil, err
	}

	outcome, err := travel.ResolveAction(req.Action, req.Test, travel.ActionContext{
		ToughnessBonus: actor.ToughnessBonus,
		// Fellowship is not tracked in the registry; the rulebook minimum
		// keeps raise-spirits criticals meaningful.
		FellowshipBonus: 1,
		JourneyPool:     p.State.Resources.JourneyPool,
		JourneyPoolMax:  p.State.JourneyPoolMax(),
		CookReward:      req.CookReward,
	})
	if err != nil {
		return nil, err
	}

	report := &ActionReport{Outcome: outcome}

	wearinessDelta := outcome.WearinessDelta
	jpDelta := outcome.JourneyPoolDelta
	if spec.TravelAction {
		payment := req.Payment
		if payment == "" {
			payment = travel.PayJourneyPool
		}
		costJP, costWeariness, err := travel.TravelActionCost(p.State.Resources.JourneyPool, payment)
		if err != nil {
			return nil, err
		}
		jpDelta += costJP
		wearinessDelta += costWeariness
	}

	if outcome.RollDamage {
		rolls, err := dice.D10s(1, s.pickSeed(req.DamageSeed))
		if err != nil {
			return nil, err
		}
		report.Damage = rolls[0]
	}

	_, err = s.mutate(ctx, req.PartyID, func(state *party.State) error {
		if outcome.ClearWeariness {
			state.Resources.Weariness = 0
		}
		change := travel.AddWeariness(state.Resources.Weariness, wearinessDelta, threshold)
		state.Resources.Weariness = change.NewWeariness
		state.Resources.TravelFatigue += change.FatigueGained + outcome.FatigueDelta
		state.Resources.Provisions += outcome.ProvisionsDelta
		state.Resources.JourneyPool += jpDelta
		state.Resources.JourneyPoolBonus += outcome.JourneyPoolMaxDelta
		if outcome.SetCampSetup {
			state.Weather.Gear.CampSetup = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if report.Damage > 0 {
		actor.ApplyWounds(actor.CurrentWounds - report.Damage)
		if err := s.store.UpdateCharacterWounds(ctx, actor.ID, actor.CurrentWounds, s.now()); err != nil {
			return nil, err
		}
	}
	if outcome.HealWounds > 0 {
		before := actor.CurrentWounds
		actor.Heal(outcome.HealWounds)
		report.Healed = actor.CurrentWounds - before
		if report.Healed > 0 {
			if err := s.store.UpdateCharacterWounds(ctx, actor.ID, actor.CurrentWounds, s.now()); err != nil {
				return nil, err
			}
		}
	}

	return report, nil
}
