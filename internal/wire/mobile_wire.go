package wire

import (
	"club-roster/internal/adaptor"
	"club-roster/internal/data/entity"
	"club-roster/pkg/middleware"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireMobile mounts the routes the mobile client calls. They reuse the same
// services as the web API but answer in the mobile envelope.
func wireMobile(
	r chi.Router,
	mobileHandler *adaptor.MobileHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/mobile", func(r chi.Router) {
		// Public
		r.Post("/register", mobileHandler.Register)
		r.Post("/login", mobileHandler.Login)
		r.Post("/refresh", mobileHandler.Refresh)
		r.Get("/clubs", mobileHandler.GetClubs)
		r.Get("/clubs/{id}", mobileHandler.GetClubByID)
		r.Get("/players", mobileHandler.GetPlayers)
		r.Get("/players/{id}", mobileHandler.GetPlayerByID)
		r.Get("/positions", mobileHandler.GetPositions)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.JWT, log))

			r.Post("/logout", mobileHandler.Logout)
			r.With(middleware.RequireRole(string(entity.RoleAdmin))).Get("/users", mobileHandler.GetUsers)
			r.Patch("/users/{id}", mobileHandler.UpdateUser)
			r.Delete("/users/{id}", mobileHandler.DeleteUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(string(entity.RoleCoach), string(entity.RoleAdmin)))

				r.Post("/clubs", mobileHandler.CreateClub)
				r.Patch("/clubs/{id}", mobileHandler.UpdateClub)
				r.Delete("/clubs/{id}", mobileHandler.DeleteClub)
				r.Post("/players", mobileHandler.CreatePlayer)
				r.Patch("/players/{id}", mobileHandler.UpdatePlayer)
				r.Delete("/players/{id}", mobileHandler.DeletePlayer)
				r.Post("/positions", mobileHandler.CreatePosition)
			})
		})
	})
}
