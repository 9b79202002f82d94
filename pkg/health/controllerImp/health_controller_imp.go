package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Upstreams reports which optional external services have credentials.
type Upstreams struct {
	LLM     bool
	Weather bool
}

type HealthCtrl struct {
	db *gorm.DB
	up Upstreams
}

func NewHealthCtrl(db *gorm.DB, up Upstreams) *HealthCtrl { return &HealthCtrl{db: db, up: up} }

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health fails only on the database. Missing upstream keys degrade features
// (mock answers, no weather) and are reported, not fatal.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db == nil {
		db = sub{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = sub{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = sub{Err: "ping: " + err.Error()}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"llm":      map[string]bool{"configured": h.up.LLM},
			"weather":  map[string]bool{"configured": h.up.Weather},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
