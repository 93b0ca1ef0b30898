package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/internal/data/entity"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlayer(
	r chi.Router,
	playerHandler *adaptor.PlayerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/players", playerHandler.GetPlayers)
	r.Get("/api/players/{id}", playerHandler.GetPlayerByID)

	// Coach or admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleCoach), string(entity.RoleAdmin)))

		r.Post("/api/players", playerHandler.CreatePlayer)
		r.Patch("/api/players/{id}", playerHandler.UpdatePlayer)
		r.Delete("/api/players/{id}", playerHandler.DeletePlayer)
	})
}
