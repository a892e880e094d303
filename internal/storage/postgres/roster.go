package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
)

// ErrRosterNotFound is returned when a team has no stored roster.
var ErrRosterNotFound = errors.New("roster not found")

// RosterRepository stores converted teams: their units, cards and warnings.
type RosterRepository struct {
	pool *Pool
}

// NewRosterRepository creates a RosterRepository backed by the given pool.
//
// Precondition: pool must be a valid, open connection pool.
func NewRosterRepository(pool *Pool) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// SaveTeam replaces the stored units and cards for res.TeamID in one
// transaction. An existing roster row keeps its created_at.
//
// Precondition: res.TeamID must be non-empty.
// Postcondition: LoadTeam(res.TeamID) returns an equivalent TeamResult.
func (r *RosterRepository) SaveTeam(ctx context.Context, res tactical.TeamResult) error {
	if res.TeamID == "" {
		return errors.New("saving roster: team id must not be empty")
	}
	warnings, err := json.Marshal(nonNilStrings(res.Warnings))
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}
	var commanderID *string
	if res.Commander != nil {
		id := res.Commander.ID
		commanderID = &id
	}

	return r.pool.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO rosters (team_id, commander_unit_id, warnings)
			VALUES ($1, $2, $3)
			ON CONFLICT (team_id) DO UPDATE
			SET commander_unit_id = EXCLUDED.commander_unit_id,
			    warnings          = EXCLUDED.warnings,
			    updated_at        = NOW()`,
			res.TeamID, commanderID, warnings,
		); err != nil {
			return fmt.Errorf("upserting roster: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM combat_cards WHERE team_id = $1`, res.TeamID); err != nil {
			return fmt.Errorf("clearing cards: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM tactical_units WHERE team_id = $1`, res.TeamID); err != nil {
			return fmt.Errorf("clearing units: %w", err)
		}

		batch := &pgx.Batch{}
		for i, u := range res.Units {
			payload, err := json.Marshal(u)
			if err != nil {
				return fmt.Errorf("encoding unit %s: %w", u.ID, err)
			}
			batch.Queue(`
				INSERT INTO tactical_units (id, team_id, ordinal, character_id, name, unit_type, payload)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				u.ID, res.TeamID, i, u.CharacterID, u.Name, string(u.Type), payload,
			)
		}
		for i, c := range res.Cards {
			payload, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("encoding card %s: %w", c.ID, err)
			}
			batch.Queue(`
				INSERT INTO combat_cards (id, team_id, unit_id, ordinal, name, card_type, rarity, payload)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				c.ID, res.TeamID, c.UnitID, i, c.Name, string(c.Type), string(c.Rarity), payload,
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting units and cards: %w", err)
		}
		return nil
	})
}

// LoadTeam returns the stored roster for teamID.
//
// Postcondition: Returns the TeamResult or ErrRosterNotFound.
func (r *RosterRepository) LoadTeam(ctx context.Context, teamID string) (*tactical.TeamResult, error) {
	db := r.pool.DB()

	var commanderID *string
	var warnings []byte
	err := db.QueryRow(ctx,
		`SELECT commander_unit_id, warnings FROM rosters WHERE team_id = $1`, teamID,
	).Scan(&commanderID, &warnings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRosterNotFound
		}
		return nil, fmt.Errorf("querying roster: %w", err)
	}

	res := &tactical.TeamResult{
		TeamID:   teamID,
		Units:    []tactical.Unit{},
		Cards:    []cards.CombatCard{},
		Warnings: []string{},
	}
	if err := json.Unmarshal(warnings, &res.Warnings); err != nil {
		return nil, fmt.Errorf("decoding warnings: %w", err)
	}

	units, err := db.Query(ctx,
		`SELECT payload FROM tactical_units WHERE team_id = $1 ORDER BY ordinal ASC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer units.Close()
	for units.Next() {
		var payload []byte
		if err := units.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning unit row: %w", err)
		}
		var u tactical.Unit
		if err := json.Unmarshal(payload, &u); err != nil {
			return nil, fmt.Errorf("decoding unit: %w", err)
		}
		res.Units = append(res.Units, u)
	}
	if err := units.Err(); err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}

	cardRows, err := db.Query(ctx,
		`SELECT payload FROM combat_cards WHERE team_id = $1 ORDER BY ordinal ASC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer cardRows.Close()
	for cardRows.Next() {
		var payload []byte
		if err := cardRows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		var c cards.CombatCard
		if err := json.Unmarshal(payload, &c); err != nil {
			return nil, fmt.Errorf("decoding card: %w", err)
		}
		res.Cards = append(res.Cards, c)
	}
	if err := cardRows.Err(); err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	if commanderID != nil {
		for i := range res.Units {
			if res.Units[i].ID == *commanderID {
				res.Commander = &res.Units[i]
				break
			}
		}
	}
	return res, nil
}

// ListTeams returns stored team ids, most recently saved first.
func (r *RosterRepository) ListTeams(ctx context.Context) ([]string, error) {
	rows, err := r.pool.DB().Query(ctx, `SELECT team_id FROM rosters ORDER BY updated_at DESC, team_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing rosters: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning roster ids: %w", err)
	}
	return ids, nil
}

// DeleteTeam removes the stored roster for teamID.
//
// Postcondition: Returns nil on success, ErrRosterNotFound if nothing was stored.
func (r *RosterRepository) DeleteTeam(ctx context.Context, teamID string) error {
	tag, err := r.pool.DB().Exec(ctx, `DELETE FROM rosters WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("deleting roster: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRosterNotFound
	}
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
