package party

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
)

// Character is a registered traveler. The registry replaces the host actor
// sheet as the source of the stats the travel rules read.
type Character struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ImageRef       string    `json:"imageRef,omitempty"`
	ToughnessBonus int       `json:"toughnessBonus"`
	CurrentWounds  int       `json:"currentWounds"`
	MaxWounds      int       `json:"maxWounds"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Sentinel errors for character registration.
var (
	ErrCharacterNameEmpty = apperrors.New(apperrors.CodeCharacterEmptyName, "character name is required")
	ErrCharacterBadTB     = apperrors.New(apperrors.CodeCharacterInvalidTB, "toughness bonus must be non-negative")
	ErrCharacterBadWounds = apperrors.New(apperrors.CodeCharacterBadWounds, "wounds must satisfy 0 <= current <= max")
)

// NewCharacter validates and registers a traveler.
func NewCharacter(name, imageRef string, toughnessBonus, currentWounds, maxWounds int, now time.Time) (*Character, error) {
	c := &Character{
		ID:             uuid.NewString(),
		Name:           name,
		ImageRef:       imageRef,
		ToughnessBonus: toughnessBonus,
		CurrentWounds:  currentWounds,
		MaxWounds:      maxWounds,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the character invariants.
func (c *Character) Validate() error {
	if c.Name == "" {
		return ErrCharacterNameEmpty
	}
	if c.ToughnessBonus < 0 {
		return ErrCharacterBadTB
	}
	if c.CurrentWounds < 0 || c.MaxWounds < 0 || c.CurrentWounds > c.MaxWounds {
		return ErrCharacterBadWounds
	}
	return nil
}

// ApplyWounds sets current wounds, clamped into [0, max].
func (c *Character) ApplyWounds(current int) {
	if current < 0 {
		current = 0
	}
	if current > c.MaxWounds {
		current = c.MaxWounds
	}
	c.CurrentWounds = current
}

// Heal restores wounds up to the maximum.
func (c *Character) Heal(amount int) {
	if amount <= 0 {
		return
	}
	c.ApplyWounds(c.CurrentWounds + amount)
}
