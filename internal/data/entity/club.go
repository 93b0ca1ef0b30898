package entity

import (
	"github.com/google/uuid"
)

type Club struct {
	BaseNoDelete
	Name        string  `db:"name"`
	ShortName   *string `db:"short_name"`
	Country     string  `db:"country"`
	Level       *string `db:"level"`
	Logo        *string `db:"logo"`
	Badge       *string `db:"badge"`
	City        *string `db:"city"`
	FoundedYear *int    `db:"founded_year"`
	// PlayerIDs is a derived index of players.club_id, maintained on every
	// player mutation that touches the club reference. Player.ClubID is the
	// source of truth.
	PlayerIDs []uuid.UUID `db:"player_ids"`
}
