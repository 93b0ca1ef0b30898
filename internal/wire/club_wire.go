package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/internal/data/entity"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClub(
	r chi.Router,
	clubHandler *adaptor.ClubHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/clubs", clubHandler.GetClubs)
	r.Get("/api/clubs/{id}", clubHandler.GetClubByID)

	// Coach or admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleCoach), string(entity.RoleAdmin)))

		r.Post("/api/clubs", clubHandler.CreateClub)
		r.Patch("/api/clubs/{id}", clubHandler.UpdateClub)
		r.Delete("/api/clubs/{id}", clubHandler.DeleteClub)
	})
}
