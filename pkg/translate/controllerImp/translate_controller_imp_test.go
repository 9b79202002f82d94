package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = New().Translate(echo.New().NewContext(req, rec))
	return rec
}

func TestTranslateHandler(t *testing.T) {
	rec := post(`{"text":"soil","language":"hindi"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"text":"मिट्टी"`) {
		t.Fatalf("got %d %s", rec.Code, rec.Body)
	}
	if rec := post(`{"text":"soil","language":"klingon"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown language = %d", rec.Code)
	}
}
