package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var (
	testHashKey  = []byte("0123456789abcdef0123456789abcdef")
	testBlockKey = []byte("fedcba9876543210fedcba9876543210")
)

func newTestManager() *Manager {
	return NewManager(testHashKey, testBlockKey, 24*time.Hour, false)
}

func issueCookie(t *testing.T, m *Manager, userID int64) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := m.Issue(rec, userID); err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("Issue() did not set a session cookie")
	return nil
}

func TestIssueReadRoundTrip(t *testing.T) {
	m := newTestManager()
	cookie := issueCookie(t, m, 42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	userID, err := m.Read(req)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	if userID != 42 {
		t.Errorf("Read() userID = %d, want 42", userID)
	}
}

func TestIssueSetsCookieAttributes(t *testing.T) {
	m := NewManager(testHashKey, testBlockKey, 24*time.Hour, true)
	cookie := issueCookie(t, m, 1)

	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if !cookie.Secure {
		t.Error("session cookie should be Secure")
	}
	if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("session cookie MaxAge = %d, want %d", cookie.MaxAge, int((24*time.Hour).Seconds()))
	}
	if cookie.Value == "" {
		t.Error("session cookie value should not be empty")
	}
}

func TestReadNoCookie(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := m.Read(req); !errors.Is(err, ErrNoSession) {
		t.Errorf("Read() error = %v, want ErrNoSession", err)
	}
}

func TestReadTamperedCookie(t *testing.T) {
	m := newTestManager()
	cookie := issueCookie(t, m, 42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie.Value + "x"})

	if _, err := m.Read(req); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Read() error = %v, want ErrInvalidSession", err)
	}
}

func TestReadForeignKeys(t *testing.T) {
	m := newTestManager()
	cookie := issueCookie(t, m, 42)

	other := NewManager([]byte("another-hash-key-32-bytes-long!!"), testBlockKey, 24*time.Hour, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if _, err := other.Read(req); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Read() with rotated keys error = %v, want ErrInvalidSession", err)
	}
}

func TestReadExpired(t *testing.T) {
	m := newTestManager()
	cookie := issueCookie(t, m, 42)

	m.now = func() time.Time { return time.Now().Add(24*time.Hour + time.Minute) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if _, err := m.Read(req); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Read() error = %v, want ErrSessionExpired", err)
	}
}

func TestClearDeletesCookie(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	m.Clear(rec)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			found = true
			if c.MaxAge != -1 {
				t.Errorf("cleared cookie MaxAge = %d, want -1", c.MaxAge)
			}
			if c.Value != "" {
				t.Errorf("cleared cookie value = %q, want empty", c.Value)
			}
		}
	}
	if !found {
		t.Fatal("Clear() did not set a deletion cookie")
	}
}

func TestCookieValueIsOpaque(t *testing.T) {
	m := newTestManager()
	cookie := issueCookie(t, m, 987654321)

	// The encoded value must not reveal the user ID in any readable form.
	if strings.Contains(cookie.Value, "987654321") {
		t.Error("session cookie value exposes the user ID")
	}
}
