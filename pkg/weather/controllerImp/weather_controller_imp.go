package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/weather"
)

type WeatherCtrl struct{ c *weather.Client }

func New(c *weather.Client) *WeatherCtrl { return &WeatherCtrl{c} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	loc := strings.TrimSpace(c.QueryParam("location"))
	if loc == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "location is required"})
	}
	out, err := h.c.Current(c.Request().Context(), loc)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	loc := strings.TrimSpace(c.QueryParam("location"))
	if loc == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "location is required"})
	}
	out, err := h.c.Forecast(c.Request().Context(), loc)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func upstreamError(c echo.Context, err error) error {
	if errors.Is(err, weather.ErrNotConfigured) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	log.Printf("[weather] %v", err)
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch weather data"})
}
