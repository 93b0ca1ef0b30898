package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/internal/data/entity"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// Listing is admin only; per-user routes check self-or-admin inside
		// the handler because the rule depends on the path param.
		r.With(middleware.RequireRole(string(entity.RoleAdmin))).Get("/", userHandler.GetUsers)

		r.Get("/{id}", userHandler.GetUserByID)
		r.Patch("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
