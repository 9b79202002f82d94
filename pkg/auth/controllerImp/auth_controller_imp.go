package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/auth/controller"
	"farmassist/pkg/middleware"
)

type authCtrl struct {
	sessions   *middleware.Sessions
	defaultUID string
}

func NewAuthController(s *middleware.Sessions, defaultUID string) controller.AuthController {
	return &authCtrl{sessions: s, defaultUID: defaultUID}
}

// DevLogin switches the browser to the farmer named by ?uid.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = h.defaultUID
	}
	if err := h.sessions.SetCookie(c, uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
