package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestCSRF() *CSRF {
	return NewCSRF(testHashKey, testBlockKey, false)
}

func issueCSRF(t *testing.T, c *CSRF) (string, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	token, err := c.Issue(rec)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CSRFCookieName {
			return token, cookie
		}
	}
	t.Fatal("Issue() did not set a csrf cookie")
	return "", nil
}

func TestCSRFRoundTrip(t *testing.T) {
	c := newTestCSRF()
	token, cookie := issueCSRF(t, c)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(cookie)

	if err := c.Verify(req, token); err != nil {
		t.Errorf("Verify() unexpected error: %v", err)
	}
}

func TestCSRFWrongToken(t *testing.T) {
	c := newTestCSRF()
	_, cookie := issueCSRF(t, c)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(cookie)

	if err := c.Verify(req, "not-the-token"); !errors.Is(err, ErrCSRFInvalid) {
		t.Errorf("Verify() error = %v, want ErrCSRFInvalid", err)
	}
}

func TestCSRFMissingCookie(t *testing.T) {
	c := newTestCSRF()
	token, _ := issueCSRF(t, c)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)

	if err := c.Verify(req, token); !errors.Is(err, ErrCSRFMissing) {
		t.Errorf("Verify() error = %v, want ErrCSRFMissing", err)
	}
}

func TestCSRFEmptySubmission(t *testing.T) {
	c := newTestCSRF()
	_, cookie := issueCSRF(t, c)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(cookie)

	if err := c.Verify(req, ""); !errors.Is(err, ErrCSRFMissing) {
		t.Errorf("Verify() error = %v, want ErrCSRFMissing", err)
	}
}

func TestCSRFTokensDiffer(t *testing.T) {
	c := newTestCSRF()

	t1, _ := issueCSRF(t, c)
	t2, _ := issueCSRF(t, c)

	if t1 == t2 {
		t.Error("Issue() produced identical tokens for separate renders")
	}
}
