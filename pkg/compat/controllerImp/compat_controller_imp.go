package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/compat"
)

type CompatCtrl struct{ t *compat.Table }

func New(t *compat.Table) *CompatCtrl { return &CompatCtrl{t} }

type cropItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *CompatCtrl) Crops(c echo.Context) error {
	crops := h.t.Crops()
	out := make([]cropItem, len(crops))
	for i, p := range crops {
		out[i] = cropItem{ID: p.ID, Name: p.Name}
	}
	return c.JSON(http.StatusOK, out)
}

// Check serves /crops/:id/compatibility. An unknown crop is still a 200 with
// the not-found issue in the result.
func (h *CompatCtrl) Check(c echo.Context) error {
	var cond compat.Conditions
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &cond); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad query"})
	}
	return c.JSON(http.StatusOK, h.t.Evaluate(c.Param("id"), cond))
}

func (h *CompatCtrl) Recommend(c echo.Context) error {
	var cond compat.Conditions
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &cond); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad query"})
	}
	return c.JSON(http.StatusOK, map[string]any{"recommendations": h.t.Recommend(cond)})
}
