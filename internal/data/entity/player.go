package entity

import (
	"github.com/google/uuid"
)

type PlayerGender string

const (
	GenderMale   PlayerGender = "male"
	GenderFemale PlayerGender = "female"
	GenderOther  PlayerGender = "other"
)

type Player struct {
	BaseNoDelete
	Name         string        `db:"name"`
	Age          int           `db:"age"`
	Country      string        `db:"country"`
	Gender       *PlayerGender `db:"gender"`
	Phone        *string       `db:"phone"`
	Email        *string       `db:"email"`
	Photo        *string       `db:"photo"`
	JerseyNumber *int          `db:"jersey_number"`
	PositionID   *uuid.UUID    `db:"position_id"`
	ClubID       *uuid.UUID    `db:"club_id"`
}
