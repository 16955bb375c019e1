package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
)

// CSRFCookieName holds the sealed copy of the form token.
const CSRFCookieName = "csrf_token"

var (
	ErrCSRFMissing = errors.New("missing csrf token")
	ErrCSRFInvalid = errors.New("invalid csrf token")
)

// CSRF implements double-submit CSRF protection: each form render gets
// a fresh random token, sent both as a hidden field and inside a
// sealed cookie. A forged cross-site POST can echo neither. The cookie
// is sealed with the same securecookie keys as the session, so it
// works before any auth session exists (register and login forms).
type CSRF struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewCSRF creates a CSRF token issuer/verifier.
func NewCSRF(hashKey, blockKey []byte, secure bool) *CSRF {
	return &CSRF{
		sc:     securecookie.New(hashKey, blockKey),
		secure: secure,
	}
}

// Issue generates a fresh token, sets its sealed cookie on the
// response, and returns the token for embedding in the form.
func (c *CSRF) Issue(w http.ResponseWriter) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	encoded, err := c.sc.Encode(CSRFCookieName, token)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

// Verify checks the submitted token against the sealed cookie copy
// using a constant-time comparison.
func (c *CSRF) Verify(r *http.Request, submitted string) error {
	if submitted == "" {
		return ErrCSRFMissing
	}

	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil {
		return ErrCSRFMissing
	}

	var expected string
	if err := c.sc.Decode(CSRFCookieName, cookie.Value, &expected); err != nil {
		return ErrCSRFInvalid
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) != 1 {
		return ErrCSRFInvalid
	}
	return nil
}
