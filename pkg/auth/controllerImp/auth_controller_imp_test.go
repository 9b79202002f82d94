package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/middleware"
)

func TestDevLoginSetsSignedCookie(t *testing.T) {
	s := middleware.NewSessions("secret", time.Hour)
	h := NewAuthController(s, "farmer-dev")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/devlogin?uid=selvi", nil), rec)
	if err := h.DevLogin(c); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Body.String(), `"uid":"selvi"`) {
		t.Fatalf("body = %s", rec.Body)
	}
	ck := rec.Result().Cookies()
	if len(ck) != 1 {
		t.Fatalf("cookies = %+v", ck)
	}
	if uid, err := s.Parse(ck[0].Value); err != nil || uid != "selvi" {
		t.Fatalf("cookie uid = %q, %v", uid, err)
	}
}

func TestWhoAmI(t *testing.T) {
	h := NewAuthController(middleware.NewSessions("secret", time.Hour), "farmer-dev")
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/whoami", nil), rec)
	c.Set("uid", "murugan")
	_ = h.WhoAmI(c)
	if !strings.Contains(rec.Body.String(), `"uid":"murugan"`) {
		t.Fatalf("body = %s", rec.Body)
	}
}
