package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func run(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var seen string
	_ = mw(func(c echo.Context) error {
		seen, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen
}

func TestIssueParse(t *testing.T) {
	s := NewSessions("secret", time.Hour)
	tok, err := s.Issue("farmer-7")
	if err != nil {
		t.Fatal(err)
	}
	if uid, err := s.Parse(tok); err != nil || uid != "farmer-7" {
		t.Fatalf("uid = %q, err = %v", uid, err)
	}
	if _, err := NewSessions("other", time.Hour).Parse(tok); err == nil {
		t.Fatal("token accepted with wrong secret")
	}

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := s.Parse(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestDevLoginAssignsSession(t *testing.T) {
	s := NewSessions("secret", time.Hour)

	rec, uid := run(DevLogin(s, "farmer-dev"), httptest.NewRequest(http.MethodGet, "/", nil))
	if uid != "farmer-dev" {
		t.Fatalf("uid = %q", uid)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/?uid=ignored", nil)
	req.AddCookie(cookies[0])
	rec, uid = run(DevLogin(s, "farmer-dev"), req)
	if uid != "farmer-dev" || len(rec.Result().Cookies()) != 0 {
		t.Fatalf("existing session not reused: uid=%q", uid)
	}

	_, uid = run(DevLogin(s, "farmer-dev"), httptest.NewRequest(http.MethodGet, "/?uid=selvi", nil))
	if uid != "selvi" {
		t.Fatalf("query uid = %q", uid)
	}
}

func TestSessionRequiresToken(t *testing.T) {
	s := NewSessions("secret", time.Hour)

	rec, _ := run(Session(s), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	if rec, _ := run(Session(s), req); rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d", rec.Code)
	}

	tok, _ := s.Issue("murugan")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec, uid := run(Session(s), req)
	if rec.Code != http.StatusOK || uid != "murugan" {
		t.Fatalf("status = %d uid = %q", rec.Code, uid)
	}
}
