package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/authgate/authgate-go/internal/middleware"
	"github.com/authgate/authgate-go/internal/model"
	"github.com/authgate/authgate-go/internal/service"
	"github.com/authgate/authgate-go/internal/session"
)

const (
	msgEmailTaken     = "Email already taken."
	msgBadCredentials = "Incorrect credentials."
	msgGenericFailure = "Something went wrong. Please try again."
)

// AuthHandler handles the registration, login and logout routes.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	csrf     *session.CSRF
	renderer *Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager, csrf *session.CSRF, renderer *Renderer) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		csrf:     csrf,
		renderer: renderer,
	}
}

// HandleRegisterForm handles GET /register. An already-authenticated
// user has nothing to do here and is sent to the dashboard.
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.renderForm(w, r, "register", "")
}

// HandleLoginForm handles GET /login.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.renderForm(w, r, "login", "")
}

// HandleRegister handles POST /register. CSRF has already been
// verified by the middleware by the time this runs.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	form := model.RegisterForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	}

	user, err := h.auth.Register(r.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			h.renderForm(w, r, "register", msgEmailTaken)
		case service.IsValidationError(err):
			h.renderForm(w, r, "register", msgGenericFailure)
		default:
			h.serverError(w, "registration failed", err)
		}
		return
	}

	h.signIn(w, r, user.ID)
}

// HandleLogin handles POST /login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	form := model.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.auth.Authenticate(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.renderForm(w, r, "login", msgBadCredentials)
			return
		}
		h.serverError(w, "login failed", err)
		return
	}

	h.signIn(w, r, user.ID)
}

// HandleLogout handles POST /logout.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request, userID int64) {
	if err := h.sessions.Issue(w, userID); err != nil {
		h.serverError(w, "issuing session failed", err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// renderForm renders a login/register page with a fresh CSRF token so
// the (re-)rendered form can be submitted.
func (h *AuthHandler) renderForm(w http.ResponseWriter, r *http.Request, name, errMsg string) {
	token, err := h.csrf.Issue(w)
	if err != nil {
		h.serverError(w, "issuing csrf token failed", err)
		return
	}
	h.renderer.Render(w, http.StatusOK, name, PageData{
		Error:     errMsg,
		CSRFToken: token,
	})
}

func (h *AuthHandler) serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	h.renderer.Render(w, http.StatusInternalServerError, "error", PageData{})
}
