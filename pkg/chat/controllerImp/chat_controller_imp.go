package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/chat"
	"farmassist/pkg/chat/service"
)

type ChatCtrl struct{ svc service.ChatService }

func New(svc service.ChatService) *ChatCtrl { return &ChatCtrl{svc} }

type askReq struct {
	Message string `json:"message"`
}

func (h *ChatCtrl) Ask(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req askReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	msg, err := h.svc.Ask(c.Request().Context(), uid, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ChatCtrl) History(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.History(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChatCtrl) Clear(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Clear(uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ChatCtrl) Suggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Suggestions())
}
