package middleware

import (
	"net/http"

	"github.com/authgate/authgate-go/internal/session"
)

// csrfFormField is the hidden input rendered into every form.
const csrfFormField = "_csrf"

// CSRFProtect rejects state-mutating requests whose form token does
// not match the sealed cookie copy. The check runs before any handler
// logic; safe methods pass through untouched.
func CSRFProtect(csrf *session.CSRF) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form data", http.StatusBadRequest)
				return
			}

			if err := csrf.Verify(r, r.PostFormValue(csrfFormField)); err != nil {
				http.Error(w, "invalid csrf token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
