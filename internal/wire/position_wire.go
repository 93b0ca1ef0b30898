package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/internal/data/entity"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePosition(
	r chi.Router,
	positionHandler *adaptor.PositionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/positions", positionHandler.GetPositions)
	r.Get("/api/positions/{id}", positionHandler.GetPositionByID)

	// Coach or admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleCoach), string(entity.RoleAdmin)))

		r.Post("/api/positions", positionHandler.CreatePosition)
		r.Patch("/api/positions/{id}", positionHandler.UpdatePosition)
	})

	// Deleting a position can orphan player references, so admin only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin)))

		r.Delete("/api/positions/{id}", positionHandler.DeletePosition)
	})
}
