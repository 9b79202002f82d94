package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmassist/config"
	"farmassist/database"
	"farmassist/router"

	// Auth
	authCtrlImp "farmassist/pkg/auth/controllerImp"
	"farmassist/pkg/middleware"

	// Profile
	profileCtrlImp "farmassist/pkg/profile/controllerImp"
	profileRepoImp "farmassist/pkg/profile/repositoryImp"
	profileSvcImp "farmassist/pkg/profile/serviceImp"

	// Dataset
	datasetCtrlImp "farmassist/pkg/dataset/controllerImp"
	datasetRepoImp "farmassist/pkg/dataset/repositoryImp"
	datasetSvcImp "farmassist/pkg/dataset/serviceImp"

	// Compatibility / LLM
	"farmassist/pkg/ai"
	"farmassist/pkg/compat"
	compatCtrlImp "farmassist/pkg/compat/controllerImp"

	// Chat
	chatCtrlImp "farmassist/pkg/chat/controllerImp"
	chatRepoImp "farmassist/pkg/chat/repositoryImp"
	chatSvcImp "farmassist/pkg/chat/serviceImp"

	// KB
	kbCtrlImp "farmassist/pkg/kb/controllerImp"
	kbRepoImp "farmassist/pkg/kb/repositoryImp"
	kbServiceImp "farmassist/pkg/kb/serviceImp"

	// Weather, market, translation
	marketCtrlImp "farmassist/pkg/market/controllerImp"
	translateCtrlImp "farmassist/pkg/translate/controllerImp"
	"farmassist/pkg/weather"
	weatherCtrlImp "farmassist/pkg/weather/controllerImp"

	// Health
	healthCtrlImp "farmassist/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[cfg] timezone %q: %v, using UTC", cfg.Timezone, err)
		loc = time.UTC
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// 4) Crop reference table
	crops := compat.Default()
	if cfg.CropTablePath != "" {
		t, err := compat.LoadTable(cfg.CropTablePath)
		if err != nil {
			log.Printf("[compat] crop table %s: %v, using built-in table", cfg.CropTablePath, err)
		} else {
			crops = t
		}
	}
	if d := crops.Dangling(); len(d) > 0 {
		log.Printf("[compat] alternatives without a profile: %v", d)
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTemperature, cfg.LLMMaxTokens)
	} else {
		log.Printf("[ai] LLM_API_KEY not set, answering from built-in tips")
		llm = ai.NewMock()
	}

	// 6) KB
	kbSvc := kbServiceImp.New(kbRepoImp.New(db))
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBAllowedDomains, cfg.KBMaxBytes)

	// 7) Repos/Services/Controllers
	pRepo := profileRepoImp.New(db)
	dRepo := datasetRepoImp.New(db)
	pSvc := profileSvcImp.NewProfileService(pRepo, crops)
	dSvc := datasetSvcImp.NewDatasetService(dRepo)
	cSvc := chatSvcImp.NewChatService(llm, chatRepoImp.New(db), pRepo, dRepo, kbSvc)
	wx := weather.New(cfg.WeatherEndpoint, cfg.WeatherAPIKey)

	// Auth + Health
	sessions := middleware.NewSessions(cfg.SessionSecret, cfg.SessionTTL)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, healthCtrlImp.Upstreams{LLM: cfg.LLMAPIKey != "", Weather: wx.Configured()})

	// 8) Router
	r := router.New(e,
		router.Identity{Sessions: sessions, EnableAuth: cfg.EnableAuth, DevUID: cfg.DevUID},
		router.Controllers{
			Auth:      authCtrlImp.NewAuthController(sessions, cfg.DevUID),
			Profile:   profileCtrlImp.New(pSvc, crops),
			Dataset:   datasetCtrlImp.New(dSvc),
			Compat:    compatCtrlImp.New(crops),
			Chat:      chatCtrlImp.New(cSvc),
			Weather:   weatherCtrlImp.New(wx),
			KB:        kbCtrl,
			Market:    marketCtrlImp.New(loc),
			Translate: translateCtrlImp.New(),
			Health:    hCtrl,
		},
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
