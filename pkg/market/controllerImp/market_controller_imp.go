package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/market"
)

type MarketCtrl struct{ now func() time.Time }

// New stamps prices with the current date in loc.
func New(loc *time.Location) *MarketCtrl {
	return &MarketCtrl{now: func() time.Time { return time.Now().In(loc) }}
}

func (h *MarketCtrl) Prices(c echo.Context) error {
	return c.JSON(http.StatusOK, market.Prices(h.now()))
}
