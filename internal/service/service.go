// Package service orchestrates the travel rules over the persistence layer.
package service

import (
	"context"
	"time"

	"github.com/louisbranch/wayfarer/internal/party"
	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
	"github.com/louisbranch/wayfarer/internal/storage"
	"github.com/louisbranch/wayfarer/internal/travel"
	"github.com/louisbranch/wayfarer/internal/travel/dice"
)

// Service wires the travel rules to a store. All mutating operations load the
// party, apply pure rules, clamp, and persist.
type Service struct {
	store storage.Store
	now   func() time.Time
	seed  func() int64
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSeedSource overrides the default dice seed source.
func WithSeedSource(seed func() int64) Option {
	return func(s *Service) { s.seed = seed }
}

// New creates a Service over a store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		seed:  func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) pickSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return s.seed()
}

// View is a party plus everything derived from it.
type View struct {
	Party              *party.Party       `json:"party"`
	Characters         []*party.Character `json:"characters"`
	DangerRating       int                `json:"dangerRating"`
	JourneyPoolMax     int                `json:"journeyPoolMax"`
	WearinessThreshold int                `json:"wearinessThreshold"`
	Condition          string             `json:"condition"`
	Watchers           int                `json:"watchers"`
}

// CreateParty registers a new party with default state.
func (s *Service) CreateParty(ctx context.Context, name string) (*party.Party, error) {
	p, err := party.New(name, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateParty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetParty assembles the party view: state, resolved roster, and derived
// values. Roster entries with no registry record are skipped.
func (s *Service) GetParty(ctx context.Context, id string) (*View, error) {
	p, err := s.store.GetParty(ctx, id)
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
	return &View{
		Party:              p,
		Characters:         characters,
		DangerRating:       p.State.DangerRating(),
		JourneyPoolMax:     p.State.JourneyPoolMax(),
		WearinessThreshold: travel.WearinessThreshold(tbs, p.State.Travel.HasMounts),
		Condition:          travel.Classify(p.State.Weather.Current).String(),
		Watchers:           p.State.Watchers(),
	}, nil
}

// ListParties returns all tracked parties.
func (s *Service) ListParties(ctx context.Context) ([]*party.Party, error) {
	return s.store.ListParties(ctx)
}

// RegisterCharacter adds a traveler to the registry.
func (s *Service) RegisterCharacter(ctx context.Context, name, imageRef string, toughnessBonus, currentWounds, maxWounds int) (*party.Character, error) {
	c, err := party.NewCharacter(name, imageRef, toughnessBonus, currentWounds, maxWounds, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// mutate loads a party, applies fn to its state, clamps, and persists.
func (s *Service) mutate(ctx context.Context, partyID string, fn func(*party.State) error) (*party.Party, error) {
	p, err := s.store.GetParty(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if err := fn(&p.State); err != nil {
		return nil, err
	}
	p.State.ClampResources()
	p.UpdatedAt = s.now()
	if err := s.store.UpdatePartyState(ctx, p.ID, p.State, p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// AddToRoster links a registered character to a party.
func (s *Service) AddToRoster(ctx context.Context, partyID, characterID string) (*party.Party, error) {
	if _, err := s.store.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, partyID, func(state *party.State) error {
		return state.AddMember(characterID)
	})
}

// RemoveFromRoster unlinks a character from a party.
func (s *Service) RemoveFromRoster(ctx context.Context, partyID, characterID string) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		return state.RemoveMember(characterID)
	})
}

// SetPhase moves a party's journey phase.
func (s *Service) SetPhase(ctx context.Context, partyID string, phase party.Phase) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		return state.SetPhase(phase)
	})
}

// ToggleStatus flips the party between traveling and camping.
func (s *Service) ToggleStatus(ctx context.Context, partyID string) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		if state.Travel.Status == travel.StatusTraveling {
			state.Travel.Status = travel.StatusCamping
		} else {
			state.Travel.Status = travel.StatusTraveling
			// Breaking camp discards the prepared site.
			state.Weather.Gear.CampSetup = false
		}
		return nil
	})
}

// TravelOptions are the toggles set_travel_options accepts.
type TravelOptions struct {
	HasMounts           *bool `json:"hasMounts,omitempty"`
	MountsGrazing       *bool `json:"mountsGrazing,omitempty"`
	ForcedMarch         *bool `json:"forcedMarch,omitempty"`
	ExtraRations        *bool `json:"extraRations,omitempty"`
	HalfRations         *bool `json:"halfRations,omitempty"`
	FairWeatherRecovery *bool `json:"fairWeatherRecovery,omitempty"`
}

// SetTravelOptions applies the provided toggles, leaving nil fields alone.
func (s *Service) SetTravelOptions(ctx context.Context, partyID string, opts TravelOptions) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		apply := func(dst *bool, src *bool) {
			if src != nil {
				*dst = *src
			}
		}
		apply(&state.Travel.HasMounts, opts.HasMounts)
		apply(&state.Travel.MountsGrazing, opts.MountsGrazing)
		apply(&state.Travel.ForcedMarch, opts.ForcedMarch)
		apply(&state.Travel.ExtraRations, opts.ExtraRations)
		apply(&state.Travel.HalfRations, opts.HalfRations)
		apply(&state.Options.FairWeatherRecovery, opts.FairWeatherRecovery)
		return nil
	})
}

// SetDangerFactors replaces the journey danger factors and returns the party
// with its new derived rating.
func (s *Service) SetDangerFactors(ctx context.Context, partyID string, factors travel.DangerFactors) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		state.Journey.Factors = factors
		return nil
	})
}

// SetConditions sets the weather generation inputs.
func (s *Service) SetConditions(ctx context.Context, partyID string, cond travel.Conditions) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		// Validate through a throwaway generation with fixed rolls.
		if _, err := travel.GenerateWeather(cond, travel.WeatherRolls{Temperature: 5, Precipitation: 5, Visibility: 5, Wind: 5}); err != nil {
			return err
		}
		state.Weather.Conditions = cond
		return nil
	})
}

// SetGear sets the weather gear flags.
func (s *Service) SetGear(ctx context.Context, partyID string, gear travel.Gear) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		state.Weather.Gear = gear
		return nil
	})
}

// GenerateWeather rolls a new sky for the party and stores it.
func (s *Service) GenerateWeather(ctx context.Context, partyID string, seed *int64) (travel.GeneratedWeather, error) {
	var generated travel.GeneratedWeather
	_, err := s.mutate(ctx, partyID, func(state *party.State) error {
		rolls, err := dice.D10s(4, s.pickSeed(seed))
		if err != nil {
			return err
		}
		generated, err = travel.GenerateWeather(state.Weather.Conditions, travel.WeatherRolls{
			Temperature:   rolls[0],
			Precipitation: rolls[1],
			Visibility:    rolls[2],
			Wind:          rolls[3],
		})
		if err != nil {
			return err
		}
		state.Weather.Current = generated.Current
		return nil
	})
	if err != nil {
		return travel.GeneratedWeather{}, err
	}
	return generated, nil
}

// OverrideWeather replaces one field of the current weather.
func (s *Service) OverrideWeather(ctx context.Context, partyID, field, category string) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		current, err := travel.Override(state.Weather.Current, field, category)
		if err != nil {
			return err
		}
		state.Weather.Current = current
		return nil
	})
}

// SetEventModifier sets the GM event modifier, rejecting values outside
// [-50, 50].
func (s *Service) SetEventModifier(ctx context.Context, partyID string, modifier int) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		if modifier < travel.EventModifierMin || modifier > travel.EventModifierMax {
			return travel.ErrEventModifierOutOfBounds
		}
		state.Events.Modifier = modifier
		return nil
	})
}

// RollEvent rolls a narrative event with the party's modifier and records it.
func (s *Service) RollEvent(ctx context.Context, partyID string, seed *int64) (travel.EventResult, error) {
	var result travel.EventResult
	_, err := s.mutate(ctx, partyID, func(state *party.State) error {
		base, err := dice.D100(s.pickSeed(seed))
		if err != nil {
			return err
		}
		result, err = travel.RollEvent(base, state.Events.Modifier)
		if err != nil {
			return err
		}
		state.Events.LastRoll = &result
		return nil
	})
	if err != nil {
		return travel.EventResult{}, err
	}
	return result, nil
}

// RollHexes rolls the hexes-until-event countdown against the current danger
// rating and stores it.
func (s *Service) RollHexes(ctx context.Context, partyID string, seed *int64) (travel.HexesRoll, error) {
	var roll travel.HexesRoll
	_, err := s.mutate(ctx, partyID, func(state *party.State) error {
		d10s, err := dice.D10s(1, s.pickSeed(seed))
		if err != nil {
			return err
		}
		roll = travel.HexesUntilEvent(d10s[0], state.DangerRating())
		state.Journey.HexesUntilEvent = roll.Hexes
		return nil
	})
	if err != nil {
		return travel.HexesRoll{}, err
	}
	return roll, nil
}

// ToggleWatch flips a roster member's keeping-watch flag and returns the new
// rotation.
func (s *Service) ToggleWatch(ctx context.Context, partyID, characterID string) (travel.WatchRotation, error) {
	var rotation travel.WatchRotation
	_, err := s.mutate(ctx, partyID, func(state *party.State) error {
		if !state.HasMember(characterID) {
			return party.ErrMemberMissing
		}
		task := state.Camp.Tasks[characterID]
		task.KeepingWatch = !task.KeepingWatch
		state.Camp.Tasks[characterID] = task
		rotation = travel.RotationFor(state.Watchers())
		return nil
	})
	if err != nil {
		return travel.WatchRotation{}, err
	}
	return rotation, nil
}

// SetTaskAction assigns a camp or travel action to a roster member. An empty
// action clears the assignment.
func (s *Service) SetTaskAction(ctx context.Context, partyID, characterID string, action travel.Action) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		if !state.HasMember(characterID) {
			return party.ErrMemberMissing
		}
		if action != "" {
			if _, err := travel.SpecFor(action); err != nil {
				return err
			}
		}
		task := state.Camp.Tasks[characterID]
		task.Action = action
		state.Camp.Tasks[characterID] = task
		return nil
	})
}

// resourceFields maps adjust_resource names onto state counters.
func resourceField(state *party.State, resource string) (*int, bool) {
	r := &state.Resources
	switch resource {
	case "preparednessPool":
		return &r.PreparednessPool, true
	case "journeyPool":
		return &r.JourneyPool, true
	case "provisions":
		return &r.Provisions, true
	case "mountProvisions":
		return &r.MountProvisions, true
	case "travelFatigue":
		return &r.TravelFatigue, true
	case "hunger":
		return &r.Hunger, true
	case "exposure":
		return &r.Exposure, true
	}
	return nil, false
}

// AdjustResource applies a manual delta to one resource counter. Weariness
// increases route through the overflow conversion; everything else clamps.
func (s *Service) AdjustResource(ctx context.Context, partyID, resource string, delta int) (*party.Party, error) {
	if delta == 0 {
		return nil, apperrors.New(apperrors.CodeTravelInvalidDelta, "delta must be non-zero")
	}
	p, err := s.store.GetParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if resource == "weariness" {
		characters, err := s.store.ListCharacters(ctx, p.State.Roster)
		if err != nil {
			return nil, err
		}
		tbs := make([]int, len(characters))
		for i, c := range characters {
			tbs[i] = c.ToughnessBonus
		}
		threshold := travel.WearinessThreshold(tbs, p.State.Travel.HasMounts)
		return s.mutate(ctx, partyID, func(state *party.State) error {
			change := travel.AddWeariness(state.Resources.Weariness, delta, threshold)
			state.Resources.Weariness = change.NewWeariness
			state.Resources.TravelFatigue += change.FatigueGained
			return nil
		})
	}

	return s.mutate(ctx, partyID, func(state *party.State) error {
		field, ok := resourceField(state, resource)
		if !ok {
			return apperrors.New(apperrors.CodeTravelUnknownResource, "unknown resource")
		}
		before := *field
		*field += delta
		if state.Journey.Phase == party.PhasePreparation &&
			(resource == "provisions" || resource == "mountProvisions") {
			after := *field
			if after < 0 {
				after = 0
			}
			state.Resources.PreparednessPool -= (after - before) * travel.ProvisionPoolCost
		}
		return nil
	})
}

// BuyConsumable spends preparedness pool on a consumable during preparation.
// The pool may go negative.
func (s *Service) BuyConsumable(ctx context.Context, partyID string, consumable travel.Consumable) (*party.Party, error) {
	return s.mutate(ctx, partyID, func(state *party.State) error {
		if state.Journey.Phase != party.PhasePreparation {
			return apperrors.New(apperrors.CodePartyInvalidPhase, "consumables are bought during preparation")
		}
		cost, err := travel.PoolCost(consumable)
		if err != nil {
			return err
		}
		if state.Resources.Consumables == nil {
			state.Resources.Consumables = travel.Consumables{}
		}
		if consumable == travel.ConsumableMeticulousPlanning &&
			state.Resources.Consumables.Held(consumable) {
			return nil
		}
		state.Resources.Consumables[consumable]++
		state.Resources.PreparednessPool -= cost
		return nil
	})
}

// ResetConsumables zeroes provisions, mount provisions, and every stocked
// consumable, refunding their pool cost, and returns the refund.
func (s *Service) ResetConsumables(ctx context.Context, partyID string) (int, error) {
	refund := 0
	_, err := s.mutate(ctx, partyID, func(state *party.State) error {
		if state.Journey.Phase != party.PhasePreparation {
			return apperrors.New(apperrors.CodePartyInvalidPhase, "consumables reset during preparation")
		}
		refund = state.Resources.Consumables.ResetRefund()
		if state.Resources.Provisions > 0 {
			refund += state.Resources.Provisions * travel.ProvisionPoolCost
		}
		if state.Resources.MountProvisions > 0 {
			refund += state.Resources.MountProvisions * travel.ProvisionPoolCost
		}
		state.Resources.Provisions = 0
		state.Resources.MountProvisions = 0
		state.Resources.PreparednessPool += refund
		state.Resources.Consumables = travel.Consumables{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}
