// Package sqlite provides the SQLite-backed wayfarer storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/wayfarer/internal/party"
	"github.com/louisbranch/wayfarer/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/wayfarer/internal/storage"
	"github.com/louisbranch/wayfarer/internal/storage/sqlite/migrations"
)

// Store persists wayfarer state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateParty inserts one party record.
func (s *Store) CreateParty(ctx context.Context, p *party.Party) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("party id is required")
	}
	stateJSON, err := json.Marshal(p.State)
	if err != nil {
		return fmt.Errorf("marshal party state: %w", err)
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO parties (id, name, state_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(stateJSON), toMillis(p.CreatedAt), toMillis(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetParty loads one party by ID.
func (s *Store) GetParty(ctx context.Context, id string) (*party.Party, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, state_json, created_at, updated_at FROM parties WHERE id = ?`,
		id,
	)
	return scanParty(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (*party.Party, error) {
	var p party.Party
	var stateJSON string
	var createdAt, updatedAt int64
	if err := row.Scan(&p.ID, &p.Name, &stateJSON, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan party: %w", err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &p.State); err != nil {
		return nil, fmt.Errorf("unmarshal party state: %w", err)
	}
	if p.State.Camp.Tasks == nil {
		p.State.Camp.Tasks = map[string]party.CampTask{}
	}
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return &p, nil
}

// ListParties returns every tracked party ordered by creation time.
func (s *Store) ListParties(ctx context.Context) ([]*party.Party, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, state_json, created_at, updated_at FROM parties ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []*party.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	return parties, nil
}

// UpdatePartyState replaces a party's state blob.
func (s *Store) UpdatePartyState(ctx context.Context, id string, state party.State, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal party state: %w", err)
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE parties SET state_json = ?, updated_at = ? WHERE id = ?`,
		string(stateJSON), toMillis(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CreateCharacter inserts one registry record.
func (s *Store) CreateCharacter(ctx context.Context, c *party.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("character id is required")
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (id, name, image_ref, toughness_bonus, current_wounds, max_wounds, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.ImageRef, c.ToughnessBonus, c.CurrentWounds, c.MaxWounds,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

// GetCharacter loads one character by ID.
func (s *Store) GetCharacter(ctx context.Context, id string) (*party.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, image_ref, toughness_bonus, current_wounds, max_wounds, created_at, updated_at
		 FROM characters WHERE id = ?`,
		id,
	)
	return scanCharacter(row)
}

func scanCharacter(row rowScanner) (*party.Character, error) {
	var c party.Character
	var createdAt, updatedAt int64
	err := row.Scan(&c.ID, &c.Name, &c.ImageRef, &c.ToughnessBonus, &c.CurrentWounds, &c.MaxWounds, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan character: %w", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return &c, nil
}

// ListCharacters loads characters by ID, preserving the requested order and
// skipping IDs with no record. A nil ids slice lists the whole registry.
func (s *Store) ListCharacters(ctx context.Context, ids []string) ([]*party.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ids == nil {
		rows, err := s.sqlDB.QueryContext(
			ctx,
			`SELECT id, name, image_ref, toughness_bonus, current_wounds, max_wounds, created_at, updated_at
			 FROM characters ORDER BY created_at, id`,
		)
		if err != nil {
			return nil, fmt.Errorf("list characters: %w", err)
		}
		defer rows.Close()

		var characters []*party.Character
		for rows.Next() {
			c, err := scanCharacter(rows)
			if err != nil {
				return nil, err
			}
			characters = append(characters, c)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list characters: %w", err)
		}
		return characters, nil
	}

	characters := make([]*party.Character, 0, len(ids))
	for _, id := range ids {
		c, err := s.GetCharacter(ctx, id)
		if err != nil {
			if err == storage.ErrNotFound {
				continue
			}
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, nil
}

// UpdateCharacterWounds sets one character's current wounds.
func (s *Store) UpdateCharacterWounds(ctx context.Context, id string, currentWounds int, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE characters SET current_wounds = ?, updated_at = ? WHERE id = ?`,
		currentWounds, toMillis(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("update character wounds: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update character wounds: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListDayLog returns the most recent day-log entries for a party, newest
// first. A limit of 0 or less returns everything.
func (s *Store) ListDayLog(ctx context.Context, partyID string, limit int) ([]storage.DayLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := `SELECT id, party_id, day, condition, summary_json, created_at
	          FROM day_log WHERE party_id = ? ORDER BY day DESC, id DESC`
	args := []any{partyID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day log: %w", err)
	}
	defer rows.Close()

	var entries []storage.DayLogEntry
	for rows.Next() {
		var entry storage.DayLogEntry
		var summaryJSON string
		var createdAt int64
		if err := rows.Scan(&entry.ID, &entry.PartyID, &entry.Day, &entry.Condition, &summaryJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan day log: %w", err)
		}
		if err := json.Unmarshal([]byte(summaryJSON), &entry.Summary); err != nil {
			return nil, fmt.Errorf("unmarshal day summary: %w", err)
		}
		entry.CreatedAt = fromMillis(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list day log: %w", err)
	}
	return entries, nil
}

// CommitDay applies the new party state, the wound updates, and the log entry
// in one transaction.
func (s *Store) CommitDay(ctx context.Context, commit storage.DayCommit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stateJSON, err := json.Marshal(commit.State)
	if err != nil {
		return fmt.Errorf("marshal party state: %w", err)
	}
	summaryJSON, err := json.Marshal(commit.Entry.Summary)
	if err != nil {
		return fmt.Errorf("marshal day summary: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin day commit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE parties SET state_json = ?, updated_at = ? WHERE id = ?`,
		string(stateJSON), toMillis(commit.UpdatedAt), commit.PartyID,
	)
	if err != nil {
		return fmt.Errorf("commit party state: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("commit party state: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	for _, wound := range commit.Wounds {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE characters SET current_wounds = ?, updated_at = ? WHERE id = ?`,
			wound.WoundsAfter, toMillis(commit.UpdatedAt), wound.MemberID,
		)
		if err != nil {
			return fmt.Errorf("commit wounds for %s: %w", wound.MemberID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("commit wounds for %s: %w", wound.MemberID, err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO day_log (party_id, day, condition, summary_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		commit.PartyID, commit.Entry.Day, commit.Entry.Condition, string(summaryJSON),
		toMillis(commit.Entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("commit day log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit day: %w", err)
	}
	return nil
}
