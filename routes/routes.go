package routes

import (
	"github.com/footycomp/tipping-system/handlers"
	"github.com/footycomp/tipping-system/middleware"
	"github.com/footycomp/tipping-system/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes mounts the full HTTP surface. Reads are public; everything
// that mutates competition data requires an authenticated admin.
func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	roundHandler *handlers.RoundHandler,
	teamHandler *handlers.TeamHandler,
	tipperHandler *handlers.TipperHandler,
	tipHandler *handlers.TipHandler,
	reportHandler *handlers.ReportHandler,
	webSocketHandler *handlers.WebSocketHandler,
	jwtSecret string,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	admin := func(r chi.Router) chi.Router {
		return r.With(
			middleware.Authenticate([]byte(jwtSecret)),
			middleware.RequireRole(models.RoleAdmin),
		)
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", roundHandler.ListRounds)
			r.Get("/{roundID}", roundHandler.GetRound)

			admin(r).Post("/", roundHandler.CreateRound)
			admin(r).Put("/{roundID}", roundHandler.UpdateRound)
			admin(r).Delete("/{roundID}", roundHandler.DeleteRound)
		})

		r.Get("/template_round", roundHandler.TemplateRound)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.ListTeams)

			admin(r).Post("/", teamHandler.CreateTeam)
			admin(r).Put("/{teamID}", teamHandler.UpdateTeam)
			admin(r).Delete("/{teamID}", teamHandler.DeleteTeam)
			admin(r).Post("/{teamID}/logo", teamHandler.UploadLogo)
		})

		r.Route("/tippers", func(r chi.Router) {
			r.Get("/", tipperHandler.ListTippers)

			admin(r).Post("/", tipperHandler.CreateTipper)
			admin(r).Put("/{tipperID}", tipperHandler.UpdateTipper)
			admin(r).Delete("/{tipperID}", tipperHandler.DeleteTipper)
		})

		r.Route("/tips", func(r chi.Router) {
			r.Get("/{tipperID}/{roundID}", tipHandler.GetTips)
			r.Get("/exists/round/{roundID}", tipHandler.TipsExist)

			admin(r).Post("/{tipperID}/{roundID}", tipHandler.SaveTips)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/leaderboard", reportHandler.Leaderboard)
			r.Get("/round/{roundID}", reportHandler.RoundLeaderboard)
		})
	})

	router.Get("/ws/rounds/{roundID}", webSocketHandler.ServeWs)
}
