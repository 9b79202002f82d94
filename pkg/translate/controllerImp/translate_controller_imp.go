package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/translate"
)

type TranslateCtrl struct{}

func New() *TranslateCtrl { return &TranslateCtrl{} }

type translateReq struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (h *TranslateCtrl) Translate(c echo.Context) error {
	var req translateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := translate.Translate(req.Text, req.Language)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"text": out, "language": req.Language})
}

func (h *TranslateCtrl) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, translate.Languages())
}
