package handler

import (
	"log/slog"
	"net/http"

	"github.com/authgate/authgate-go/internal/middleware"
	"github.com/authgate/authgate-go/internal/session"
)

// PageHandler handles the plain page routes.
type PageHandler struct {
	csrf     *session.CSRF
	renderer *Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(csrf *session.CSRF, renderer *Renderer) *PageHandler {
	return &PageHandler{csrf: csrf, renderer: renderer}
}

// HandleIndex handles GET /, accessible in either state.
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{}
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		data.User = &user
	}
	h.renderer.Render(w, http.StatusOK, "index", data)
}

// HandleDashboard handles GET /dashboard. The LoginRequired guard has
// already run, so the context always carries a user; the page is
// rendered exactly once.
func (h *PageHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	// The logout form on the page needs a token.
	token, err := h.csrf.Issue(w)
	if err != nil {
		slog.Error("issuing csrf token failed", "error", err)
		h.renderer.Render(w, http.StatusInternalServerError, "error", PageData{})
		return
	}

	h.renderer.Render(w, http.StatusOK, "dashboard", PageData{
		User:      &user,
		CSRFToken: token,
	})
}
