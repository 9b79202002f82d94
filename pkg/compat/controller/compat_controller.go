package controller

import "github.com/labstack/echo/v4"

type CompatController interface {
	Crops(c echo.Context) error
	Check(c echo.Context) error
	Recommend(c echo.Context) error
}
