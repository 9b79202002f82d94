package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmassist/entities"
	"farmassist/pkg/compat"
	"farmassist/pkg/profile"
	"farmassist/pkg/profile/service"
)

type ProfileCtrl struct {
	svc   service.ProfileService
	crops *compat.Table
}

func New(svc service.ProfileService, crops *compat.Table) *ProfileCtrl {
	return &ProfileCtrl{svc: svc, crops: crops}
}

// saveReq uses the questionnaire ids as keys.
type saveReq struct {
	Name           string   `json:"name"`
	FarmSize       string   `json:"farmSize"`
	CropTypes      []string `json:"cropTypes"`
	Location       string   `json:"location"`
	Experience     string   `json:"experience"`
	MainChallenges []string `json:"mainChallenges"`
	SoilType       string   `json:"soilType"`
	PlantingDate   string   `json:"plantingDate"`
	PlantingSeason string   `json:"plantingSeason"`
	IrrigationType string   `json:"irrigationType"`
	Language       string   `json:"language"`
}

func (h *ProfileCtrl) Questions(c echo.Context) error {
	return c.JSON(http.StatusOK, profile.Questions(h.crops))
}

func (h *ProfileCtrl) Save(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req saveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p := &entities.FarmerProfile{
		Name: req.Name, FarmSize: req.FarmSize, CropTypes: req.CropTypes, Location: req.Location,
		Experience: req.Experience, MainChallenges: req.MainChallenges, SoilType: req.SoilType,
		PlantingSeason: req.PlantingSeason, IrrigationType: req.IrrigationType, Language: req.Language,
	}
	if req.PlantingDate != "" {
		pd, err := time.Parse("2006-01-02", req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting date must be YYYY-MM-DD"})
		}
		p.PlantingDate = &pd
	}

	saved, reports, err := h.svc.Save(uid, p)
	if err != nil {
		if errors.Is(err, profile.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": saved, "compatibility": reports})
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.svc.Get(uid)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Compatibility(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.Compatibility(uid)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, profile.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
