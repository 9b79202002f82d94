package serviceImp

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/dataset"
	repo "farmassist/pkg/dataset/repository"
	"farmassist/pkg/dataset/service"
	"farmassist/pkg/predict"
)

type datasetSvc struct{ r repo.DatasetRepository }

func NewDatasetService(r repo.DatasetRepository) service.DatasetService { return &datasetSvc{r} }

func (s *datasetSvc) Upload(uid, filename string, data []byte) (*entities.Dataset, error) {
	ds, err := dataset.Parse(filename, data)
	if err != nil {
		return nil, err
	}
	ds.UserID = uid
	if err := s.r.Create(ds); err != nil {
		return nil, fmt.Errorf("store dataset: %w", err)
	}
	log.Printf("[dataset] %s uploaded %s (%d rows, %d columns)", uid, ds.Name, len(ds.Rows), len(ds.Columns))
	return ds, nil
}

func (s *datasetSvc) List(uid string) ([]entities.Dataset, error) {
	return s.r.ListByUser(uid)
}

func (s *datasetSvc) Delete(uid string, id uint) error {
	ok, err := s.r.Delete(id, uid)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *datasetSvc) Insights(uid string) ([]string, error) {
	ds, err := s.r.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	return predict.SummarizeDatasets(dataset.ForPredict(ds)), nil
}
