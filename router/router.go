package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "farmassist/pkg/auth/controller"
	chatCtrl "farmassist/pkg/chat/controller"
	compatCtrl "farmassist/pkg/compat/controller"
	datasetCtrl "farmassist/pkg/dataset/controller"
	kbCtrl "farmassist/pkg/kb/controller"
	"farmassist/pkg/middleware"
	profileCtrl "farmassist/pkg/profile/controller"
	weatherCtrl "farmassist/pkg/weather/controller"
)

type Controllers struct {
	Auth      authCtrl.AuthController
	Profile   profileCtrl.ProfileController
	Dataset   datasetCtrl.DatasetController
	Compat    compatCtrl.CompatController
	Chat      chatCtrl.ChatController
	Weather   weatherCtrl.WeatherController
	KB        kbCtrl.KBController
	Market    interface{ Prices(echo.Context) error }
	Translate interface {
		Translate(echo.Context) error
		Languages(echo.Context) error
	}
	Health interface{ Health(echo.Context) error }
}

// Identity selects how requests get a farmer id: Session rejects requests
// without a signed token, DevLogin hands one out.
type Identity struct {
	Sessions   *middleware.Sessions
	EnableAuth bool
	DevUID     string
}

func New(e *echo.Echo, id Identity, h Controllers) *echo.Echo {
	e.GET("/health", h.Health.Health)
	e.GET("/translate/languages", h.Translate.Languages)
	e.GET("/questionnaire", h.Profile.Questions)
	e.GET("/crops", h.Compat.Crops)
	e.GET("/crops/recommendations", h.Compat.Recommend)
	e.GET("/crops/:id/compatibility", h.Compat.Check)
	e.GET("/market/prices", h.Market.Prices)
	e.POST("/translate", h.Translate.Translate)

	var api *echo.Group
	if id.EnableAuth {
		api = e.Group("", middleware.Session(id.Sessions))
	} else {
		e.GET("/devlogin", h.Auth.DevLogin)
		api = e.Group("", middleware.DevLogin(id.Sessions, id.DevUID))
	}

	api.GET("/whoami", h.Auth.WhoAmI)

	api.PUT("/profile", h.Profile.Save)
	api.GET("/profile", h.Profile.Get)
	api.GET("/profile/compatibility", h.Profile.Compatibility)

	api.POST("/datasets", h.Dataset.Upload)
	api.GET("/datasets", h.Dataset.List)
	api.GET("/datasets/insights", h.Dataset.Insights)
	api.DELETE("/datasets/:id", h.Dataset.Delete)

	api.POST("/chat", h.Chat.Ask)
	api.GET("/chat/history", h.Chat.History)
	api.DELETE("/chat/history", h.Chat.Clear)
	api.GET("/chat/suggestions", h.Chat.Suggestions)

	api.GET("/weather/current", h.Weather.Current)
	api.GET("/weather/forecast", h.Weather.Forecast)

	// KB
	api.POST("/kb/ingest", h.KB.IngestText)
	api.POST("/kb/ingest/url", h.KB.IngestURL)
	api.GET("/kb/search", h.KB.Search)
	api.GET("/kb/docs", h.KB.Docs)
	return e
}
