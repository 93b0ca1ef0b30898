package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/refresh", authHandler.Refresh)

	// Logout needs a valid access token; the original app accepted both verbs.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Post("/api/logout", authHandler.Logout)
		r.Delete("/api/logout", authHandler.Logout)
	})
}
