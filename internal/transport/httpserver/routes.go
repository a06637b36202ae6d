package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"school-link-go/internal/config"
	"school-link-go/internal/transport/httpserver/handler"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/feed", handlers.Feed)

		r.Post("/messages", handlers.CreateMessage)
		r.Post("/messages/{message_id}/replies", handlers.AddReply)
		r.Post("/messages/{message_id}/poll", handlers.RespondToPoll)
		r.Get("/messages/{message_id}/export", handlers.Export)

		r.Get("/tables/{table_id}", handlers.GetTable)
		r.Post("/tables/{table_id}/register", handlers.Register)

		r.Get("/users", handlers.ListUsers)
		r.Post("/users", handlers.CreateUser)
		r.Patch("/users/{target_id}", handlers.UpdateUser)
		r.Delete("/users/{target_id}", handlers.DeleteUser)

		r.Get("/groups", handlers.ListGroups)
		r.Post("/groups", handlers.CreateGroup)
		r.Patch("/groups/{group_id}", handlers.UpdateGroup)
		r.Delete("/groups/{group_id}", handlers.DeleteGroup)
	})

	return r
}
