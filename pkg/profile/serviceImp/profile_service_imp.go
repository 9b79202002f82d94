package serviceImp

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"farmassist/entities"
	"farmassist/pkg/compat"
	"farmassist/pkg/profile"
	repo "farmassist/pkg/profile/repository"
	"farmassist/pkg/profile/service"
)

type profileSvc struct {
	r     repo.ProfileRepository
	crops *compat.Table
}

func NewProfileService(r repo.ProfileRepository, crops *compat.Table) service.ProfileService {
	return &profileSvc{r: r, crops: crops}
}

func (s *profileSvc) Save(uid string, p *entities.FarmerProfile) (*entities.FarmerProfile, []service.CropReport, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Location = strings.TrimSpace(p.Location)
	if p.Name == "" {
		return nil, nil, fmt.Errorf("%w: name is required", profile.ErrInvalid)
	}
	if p.Location == "" {
		return nil, nil, fmt.Errorf("%w: location is required", profile.ErrInvalid)
	}
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	if p.Language == "" {
		p.Language = "english"
	}
	if !slices.Contains(profile.Languages, p.Language) {
		return nil, nil, fmt.Errorf("%w: unsupported language %q", profile.ErrInvalid, p.Language)
	}
	if p.PlantingSeason == "" && p.PlantingDate != nil {
		p.PlantingSeason = profile.SeasonFor(*p.PlantingDate)
	}

	p.UserID = uid
	if err := s.r.Upsert(p); err != nil {
		return nil, nil, fmt.Errorf("save profile: %w", err)
	}
	reports := s.report(p)
	log.Printf("[profile] %s saved (%d crop(s))", uid, len(reports))
	return p, reports, nil
}

func (s *profileSvc) Get(uid string) (*entities.FarmerProfile, error) {
	return s.r.FindByUser(uid)
}

func (s *profileSvc) Compatibility(uid string) ([]service.CropReport, error) {
	p, err := s.r.FindByUser(uid)
	if err != nil {
		return nil, err
	}
	return s.report(p), nil
}

// report evaluates every listed crop. Names are matched against crop ids and
// display names; anything unmatched gets the evaluator's not-found verdict.
func (s *profileSvc) report(p *entities.FarmerProfile) []service.CropReport {
	cond := compat.Conditions{
		SoilType:         p.SoilType,
		IrrigationMethod: p.IrrigationType,
		Location:         p.Location,
		Season:           p.PlantingSeason,
	}
	out := make([]service.CropReport, 0, len(p.CropTypes))
	for _, name := range p.CropTypes {
		id := name
		if crop, ok := s.crops.Resolve(name); ok {
			id = crop.ID
		}
		out = append(out, service.CropReport{Crop: name, Result: s.crops.Evaluate(id, cond)})
	}
	return out
}
