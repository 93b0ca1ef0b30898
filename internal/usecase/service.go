package usecase

import (
	"club-roster/internal/data/repository"
	"club-roster/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Club     ClubService
	Player   PlayerService
	Position PositionService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, log),
		Club:     NewClubService(repo, log),
		Player:   NewPlayerService(repo, log),
		Position: NewPositionService(repo, log),
	}
}
