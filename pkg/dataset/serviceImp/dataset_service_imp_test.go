package serviceImp

import (
	"testing"

	"farmassist/database"
	"farmassist/pkg/dataset/repositoryImp"
)

func TestUploadKeepsMissingValues(t *testing.T) {
	db, err := database.Open("file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	svc := NewDatasetService(repositoryImp.New(db))

	for _, body := range []string{
		"year,yield\n2021,30\n2022,NaN\n",
		"year,yield\n2021,30\n2022,inf\n",
	} {
		if _, err := svc.Upload("u1", "h.csv", []byte(body)); err != nil {
			t.Fatalf("upload %q: %v", body, err)
		}
	}
	list, err := svc.List("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("datasets = %d", len(list))
	}
	for _, ds := range list {
		if len(ds.Rows) != 2 || ds.Rows[0]["yield"] != 30.0 {
			t.Fatalf("rows = %v", ds.Rows)
		}
	}
}
