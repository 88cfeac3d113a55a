package service

import (
	"game_store/internal/app"
	"game_store/internal/pkg/auth"
	"game_store/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Stores groups the client stores the view server reads from and mutates.
type Stores struct {
	Session   *app.Session
	Catalog   *app.Catalog
	Purchases *app.Purchases
	Comments  *app.Comments
}

// Service encapsulates the view server configuration: the stores behind the page
// contracts, the HTTP handlers, the run address and a logger.
type Service struct {
	handlers   *handlers
	stores     Stores
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
func NewService(stores Stores, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(stores, l)
	return &Service{handlers: handlers, stores: stores, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router with the page and form routes.
// Logging middleware applies globally; routes that need a logged-in session sit
// behind auth.RequireSession.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	router.Route("/api", func(r chi.Router) {
		r.Post("/login", service.handlers.loginHandler)
		r.Post("/register", service.handlers.registerHandler)
		r.Post("/logout", service.handlers.logoutHandler)
		r.Get("/session", service.handlers.sessionHandler)
		r.Get("/games", service.handlers.homeHandler)
		r.Post("/games/refresh", service.handlers.refreshGamesHandler)
		r.Get("/games/{id}", service.handlers.gameDetailsHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(service.stores.Session))
			r.Get("/users", service.handlers.usersHandler)
			r.Post("/session/refresh", service.handlers.refreshSessionHandler)
			r.Get("/games/mine", service.handlers.myGamesHandler)
			r.Get("/bought-games", service.handlers.boughtGamesHandler)
			r.Post("/games", service.handlers.createGameHandler)
			r.Put("/games/{id}", service.handlers.editGameHandler)
			r.Delete("/games/{id}", service.handlers.deleteGameHandler)
			r.Post("/games/{id}/buy", service.handlers.buyGameHandler)
			r.Post("/games/{id}/comments", service.handlers.addCommentHandler)
			r.Delete("/games/{id}/comments/{commentID}", service.handlers.deleteCommentHandler)
			r.Patch("/profile", service.handlers.updateProfileHandler)
			r.Delete("/profile", service.handlers.deleteProfileHandler)
		})
	})
	return router
}
