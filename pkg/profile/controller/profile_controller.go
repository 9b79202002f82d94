package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Questions(c echo.Context) error
	Save(c echo.Context) error
	Get(c echo.Context) error
	Compatibility(c echo.Context) error
}
