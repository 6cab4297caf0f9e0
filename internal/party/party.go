// Package party defines the tracked party state: roster, journey progress,
// resources, travel posture, weather, camp tasks, and event odds.
package party

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
	"github.com/louisbranch/wayfarer/internal/travel"
)

// Phase is the journey lifecycle stage.
type Phase string

const (
	PhasePlanning    Phase = "planning"
	PhasePreparation Phase = "preparation"
	PhaseTravel      Phase = "travel"
	PhaseArrival     Phase = "arrival"
)

// baseJourneyPool is the journey pool maximum for a fresh, unfatigued party.
const baseJourneyPool = 10

// Sentinel errors for party mutations.
var (
	ErrNameEmpty       = apperrors.New(apperrors.CodePartyNameEmpty, "party name is required")
	ErrInvalidPhase    = apperrors.New(apperrors.CodePartyInvalidPhase, "unknown journey phase")
	ErrMemberDuplicate = apperrors.New(apperrors.CodePartyMemberDuplicate, "character already in roster")
	ErrMemberMissing   = apperrors.New(apperrors.CodePartyMemberMissing, "character not in roster")
)

// Party is one tracked travel group.
type Party struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	State     State     `json:"state"`
}

// State is the full tracked state of a party.
type State struct {
	Roster    []string  `json:"roster"`
	Journey   Journey   `json:"journey"`
	Resources Resources `json:"resources"`
	Travel    Travel    `json:"travel"`
	Weather   Weather   `json:"weather"`
	Camp      Camp      `json:"camp"`
	Events    Events    `json:"events"`
	Options   Options   `json:"options"`
}

// Journey tracks progress along the route.
type Journey struct {
	Phase           Phase                `json:"phase"`
	HexesUntilEvent int                  `json:"hexesUntilEvent"`
	DaysOnRoad      int                  `json:"daysOnRoad"`
	Factors         travel.DangerFactors `json:"factors"`
}

// Resources are the party's consumable pools and strain counters.
type Resources struct {
	// PreparednessPool may go negative when the party overspends during
	// preparation.
	PreparednessPool int `json:"preparednessPool"`
	JourneyPool      int `json:"journeyPool"`
	// JourneyPoolBonus accumulates planning-action adjustments to the
	// derived journey pool maximum.
	JourneyPoolBonus int `json:"journeyPoolBonus"`
	Provisions       int `json:"provisions"`
	MountProvisions  int `json:"mountProvisions"`
	Weariness        int `json:"weariness"`
	TravelFatigue    int `json:"travelFatigue"`
	Hunger           int `json:"hunger"`
	Exposure         int `json:"exposure"`

	Consumables travel.Consumables `json:"consumables"`
}

// Travel is the party's current travel posture.
type Travel struct {
	Status        travel.Status `json:"status"`
	HasMounts     bool          `json:"hasMounts"`
	MountsGrazing bool          `json:"mountsGrazing"`
	ForcedMarch   bool          `json:"forcedMarch"`
	ExtraRations  bool          `json:"extraRations"`
	HalfRations   bool          `json:"halfRations"`
}

// Weather groups the generation inputs, the current sky, and gear flags.
type Weather struct {
	Conditions travel.Conditions `json:"conditions"`
	Current    travel.Current    `json:"current"`
	Gear       travel.Gear       `json:"gear"`
}

// CampTask is one member's overnight assignment.
type CampTask struct {
	KeepingWatch bool          `json:"keepingWatch"`
	Action       travel.Action `json:"action,omitempty"`
}

// Camp tracks overnight task assignments keyed by character ID.
type Camp struct {
	Tasks map[string]CampTask `json:"tasks"`
}

// Events tracks the GM event modifier and the last roll made.
type Events struct {
	Modifier int                 `json:"modifier"`
	LastRoll *travel.EventResult `json:"lastRoll,omitempty"`
}

// Options are per-party rule toggles.
type Options struct {
	FairWeatherRecovery bool `json:"fairWeatherRecovery"`
}

// New creates a party with a fresh ID and default state.
func New(name string, now time.Time) (*Party, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	return &Party{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		State:     DefaultState(),
	}, nil
}

// DefaultState is the state of a newly created party.
func DefaultState() State {
	return State{
		Journey: Journey{Phase: PhasePlanning},
		Resources: Resources{
			JourneyPool: baseJourneyPool,
			Consumables: travel.Consumables{},
		},
		Travel: Travel{Status: travel.StatusTraveling},
		Weather: Weather{
			Conditions: travel.Conditions{
				Climate: travel.ClimateTemperate,
				Season:  travel.SeasonSpring,
				Terrain: travel.TerrainPlains,
			},
			Current: travel.Current{
				Temperature:   travel.TempComfortable,
				Precipitation: travel.PrecipNone,
				Visibility:    travel.VisClear,
				Wind:          travel.WindGentle,
			},
		},
		Camp: Camp{Tasks: map[string]CampTask{}},
	}
}

// ValidPhase reports whether a phase value is one of the journey stages.
func ValidPhase(phase Phase) bool {
	switch phase {
	case PhasePlanning, PhasePreparation, PhaseTravel, PhaseArrival:
		return true
	}
	return false
}

// SetPhase moves the journey to a new phase.
func (s *State) SetPhase(phase Phase) error {
	if !ValidPhase(phase) {
		return ErrInvalidPhase
	}
	s.Journey.Phase = phase
	return nil
}

// AddMember appends a character to the roster, preserving insertion order.
func (s *State) AddMember(characterID string) error {
	if characterID == "" {
		return apperrors.New(apperrors.CodeCharacterIDRequired, "character id is required")
	}
	for _, id := range s.Roster {
		if id == characterID {
			return ErrMemberDuplicate
		}
	}
	s.Roster = append(s.Roster, characterID)
	return nil
}

// RemoveMember drops a character from the roster and clears its camp task.
func (s *State) RemoveMember(characterID string) error {
	for i, id := range s.Roster {
		if id == characterID {
			s.Roster = append(s.Roster[:i], s.Roster[i+1:]...)
			delete(s.Camp.Tasks, characterID)
			return nil
		}
	}
	return ErrMemberMissing
}

// HasMember reports roster membership.
func (s *State) HasMember(characterID string) bool {
	for _, id := range s.Roster {
		if id == characterID {
			return true
		}
	}
	return false
}

// JourneyPoolMax derives the journey pool ceiling from travel fatigue and any
// planning adjustments. Fatigue eats into the pool a point at a time; the
// ceiling never goes negative.
func (s *State) JourneyPoolMax() int {
	max := baseJourneyPool - s.Resources.TravelFatigue + s.Resources.JourneyPoolBonus
	if max < 0 {
		return 0
	}
	return max
}

// DangerRating derives the current danger rating from the journey factors.
func (s *State) DangerRating() int {
	return travel.DangerRating(s.Journey.Factors)
}

// ClampResources folds every counter back into its legal range. Preparedness
// pool is exempt: overspending during preparation is allowed.
func (s *State) ClampResources() {
	r := &s.Resources
	clampMin := func(v *int, min int) {
		if *v < min {
			*v = min
		}
	}
	clampMin(&r.Provisions, 0)
	clampMin(&r.MountProvisions, 0)
	clampMin(&r.Weariness, 0)
	clampMin(&r.TravelFatigue, 0)
	clampMin(&r.Exposure, 0)
	clampMin(&r.Hunger, 0)
	if r.Hunger > travel.HungerCap {
		r.Hunger = travel.HungerCap
	}
	clampMin(&r.JourneyPool, 0)
	if max := s.JourneyPoolMax(); r.JourneyPool > max {
		r.JourneyPool = max
	}
	if s.Journey.HexesUntilEvent < 0 {
		s.Journey.HexesUntilEvent = 0
	}
	s.Events.Modifier = travel.ClampEventModifier(s.Events.Modifier)
}

// Watchers counts roster members keeping watch tonight, skipping members who
// are recuperating.
func (s *State) Watchers() int {
	count := 0
	for _, id := range s.Roster {
		task, ok := s.Camp.Tasks[id]
		if !ok || !task.KeepingWatch {
			continue
		}
		if task.Action == travel.ActionRecuperate {
			continue
		}
		count++
	}
	return count
}
