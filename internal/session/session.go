package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName matches the cookie name the original deployment used.
const CookieName = "session"

var (
	ErrNoSession      = errors.New("no session cookie")
	ErrInvalidSession = errors.New("invalid session cookie")
	ErrSessionExpired = errors.New("session expired")
)

// payload is the server-side view of a session. It round-trips inside
// the cookie, signed and encrypted, so the client can neither read nor
// forge the user ID.
type payload struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Manager issues and reads stateless cookie sessions. There is no
// server-side session store: rotating the keys is the only way to
// invalidate all sessions at once.
type Manager struct {
	sc     *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewManager creates a session manager. hashKey signs the cookie
// (32 or 64 bytes), blockKey encrypts it (16, 24 or 32 bytes for
// AES-128/192/256), ttl is the absolute session lifetime.
func NewManager(hashKey, blockKey []byte, ttl time.Duration, secure bool) *Manager {
	sc := securecookie.New(hashKey, blockKey)
	// Expiry is enforced against the sealed payload below, so Expired
	// and Invalid stay distinguishable to callers.
	sc.MaxAge(0)

	return &Manager{
		sc:     sc,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Issue creates a session for the user and sets the cookie on the
// response.
func (m *Manager) Issue(w http.ResponseWriter, userID int64) error {
	now := m.now()
	encoded, err := m.sc.Encode(CookieName, payload{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read resolves the session cookie on the request to a user ID. It
// returns ErrNoSession when the cookie is absent, ErrInvalidSession
// when it cannot be decoded (tampered or signed with other keys), and
// ErrSessionExpired when the sealed expiry has passed. The cookie's own
// MaxAge is client-controlled and is not trusted for expiry.
func (m *Manager) Read(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return 0, ErrNoSession
	}

	var p payload
	if err := m.sc.Decode(CookieName, cookie.Value, &p); err != nil {
		return 0, ErrInvalidSession
	}

	if !m.now().Before(p.ExpiresAt) {
		return 0, ErrSessionExpired
	}

	return p.UserID, nil
}

// Clear instructs the client to drop the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
