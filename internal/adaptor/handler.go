package adaptor

import (
	"club-roster/internal/usecase"
	"club-roster/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Club     *ClubHandler
	Player   *PlayerHandler
	Position *PositionHandler
	Mobile   *MobileHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config, log),
		User:     NewUserHandler(service.User, log),
		Club:     NewClubHandler(service.Club, log),
		Player:   NewPlayerHandler(service.Player, log),
		Position: NewPositionHandler(service.Position, log),
		Mobile:   NewMobileHandler(service, config, log),
	}
}
