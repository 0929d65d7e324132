package api

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/md-editor-be/internal/api/handlers"
	"github.com/isdelr/md-editor-be/internal/auth"
	"github.com/isdelr/md-editor-be/internal/services"
)

// NewRouter creates and configures a new Chi router. Registration, login and
// refresh are the only anonymous entry points into the data layer; every
// /posts route and /auth/me pass through the bearer-token middleware first.
func NewRouter(
	db *sql.DB,
	issuer *auth.Issuer,
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, issuer)
	postHandler := handlers.NewPostHandler(postService)
	healthHandler := handlers.NewHealthHandler(db)

	r.Get("/healthz", healthHandler.Check)
	r.Get("/apispec.json", handlers.APISpec)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(issuer.Middleware())
			r.Get("/me", authHandler.GetMe)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Use(issuer.Middleware())
		r.Post("/", postHandler.Create)
		r.Get("/", postHandler.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", postHandler.Get)
			r.Put("/", postHandler.Update)
			r.Delete("/", postHandler.Delete)
		})
	})

	return r
}
