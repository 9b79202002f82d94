package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/weather"
)

func call(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec))
	return rec
}

func TestStatusMapping(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	tests := []struct {
		name   string
		ctrl   *WeatherCtrl
		target string
		want   int
	}{
		{"missing location", New(weather.New(down.URL, "k")), "/weather/current", http.StatusBadRequest},
		{"no key", New(weather.New(down.URL, "")), "/weather/current?location=Salem", http.StatusServiceUnavailable},
		{"upstream down", New(weather.New(down.URL, "k")), "/weather/forecast?location=Salem", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.ctrl.Current
			if strings.HasPrefix(tt.target, "/weather/forecast") {
				h = tt.ctrl.Forecast
			}
			if rec := call(h, tt.target); rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
