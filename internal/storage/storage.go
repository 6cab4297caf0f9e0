// Package storage defines the persistence interfaces for parties, the
// character registry, and the travel day log.
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/wayfarer/internal/party"
	apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"
	"github.com/louisbranch/wayfarer/internal/travel"
)

// ErrNotFound indicates a missing record.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// DayLogEntry is one committed travel day.
type DayLogEntry struct {
	ID        int64     `json:"id"`
	PartyID   string    `json:"partyId"`
	Day       int       `json:"day"`
	Condition string    `json:"condition"`
	Summary   []string  `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayCommit is the atomic unit a committed day writes: the new party state,
// the wound updates, and the log entry. Stores apply all of it or none.
type DayCommit struct {
	PartyID   string
	State     party.State
	UpdatedAt time.Time
	Wounds    []travel.WoundChange
	Entry     DayLogEntry
}

// PartyStore persists tracked parties.
type PartyStore interface {
	CreateParty(ctx context.Context, p *party.Party) error
	GetParty(ctx context.Context, id string) (*party.Party, error)
	ListParties(ctx context.Context) ([]*party.Party, error)
	UpdatePartyState(ctx context.Context, id string, state party.State, updatedAt time.Time) error
}

// CharacterStore persists the character registry.
type CharacterStore interface {
	CreateCharacter(ctx context.Context, c *party.Character) error
	GetCharacter(ctx context.Context, id string) (*party.Character, error)
	ListCharacters(ctx context.Context, ids []string) ([]*party.Character, error)
	UpdateCharacterWounds(ctx context.Context, id string, currentWounds int, updatedAt time.Time) error
}

// DayLogStore persists and reads back the travel day log.
type DayLogStore interface {
	ListDayLog(ctx context.Context, partyID string, limit int) ([]DayLogEntry, error)
}

// Store is the full persistence surface, including the atomic day commit.
type Store interface {
	PartyStore
	CharacterStore
	DayLogStore

	// CommitDay applies a DayCommit in a single transaction.
	CommitDay(ctx context.Context, commit DayCommit) error

	Close() error
}
