package repository

import (
	"club-roster/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Club     ClubRepository
	Player   PlayerRepository
	Position PositionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Club:     NewClubRepository(db, log),
		Player:   NewPlayerRepository(db, log),
		Position: NewPositionRepository(db, log),
	}
}
