package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	Ask(c echo.Context) error
	History(c echo.Context) error
	Clear(c echo.Context) error
	Suggestions(c echo.Context) error
}
