package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/authgate/authgate-go/internal/middleware"
	"github.com/authgate/authgate-go/internal/service"
	"github.com/authgate/authgate-go/internal/session"
)

// NewRouter assembles the full middleware chain and route table.
func NewRouter(auth *service.AuthService, sessions *session.Manager, csrf *session.CSRF, renderer *Renderer) http.Handler {
	authHandler := NewAuthHandler(auth, sessions, csrf, renderer)
	pageHandler := NewPageHandler(csrf, renderer)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CurrentUser(sessions, auth))

	r.Get("/", pageHandler.HandleIndex)
	r.Get("/register", authHandler.HandleRegisterForm)
	r.Get("/login", authHandler.HandleLoginForm)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRFProtect(csrf))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.LoginRequired)
		r.Get("/dashboard", pageHandler.HandleDashboard)
	})

	return r
}
