package serviceImp

import (
	"strings"
	"testing"

	"farmassist/database"
	"farmassist/pkg/kb/repositoryImp"
)

func newSvc(t *testing.T) *Svc {
	t.Helper()
	db, err := database.Open("file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	return New(repositoryImp.New(db))
}

func TestSearchRanksByTermHits(t *testing.T) {
	s := newSvc(t)
	docs := []struct{ title, text string }{
		{"Paddy", "Transplant paddy seedlings at 21 days. Keep 5 cm of water in the paddy."},
		{"Drip", "Drip irrigation delivers water to the root zone. Drip lines save water and water-soluble fertilizer."},
		{"Neem", "Neem oil spray controls aphids."},
	}
	for _, d := range docs {
		if _, n, err := s.Ingest(d.title, d.text, ""); err != nil || n != 1 {
			t.Fatalf("ingest %s: n=%d err=%v", d.title, n, err)
		}
	}

	got, err := s.Search("How much WATER for drip?", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("hits = %d", len(got))
	}
	if !strings.HasPrefix(got[0].Text, "Drip") || !strings.HasPrefix(got[1].Text, "Transplant") {
		t.Fatalf("order = %q, %q", got[0].Text, got[1].Text)
	}

	meta, err := s.DocsMeta([]uint{got[0].DocID})
	if err != nil || meta[got[0].DocID].Title != "Drip" {
		t.Fatalf("meta = %+v, %v", meta, err)
	}

	if got, _ := s.Search("is it ok", 5); len(got) != 0 {
		t.Fatalf("short words matched: %+v", got)
	}
}

func TestIngestRejectsEmpty(t *testing.T) {
	if _, _, err := newSvc(t).Ingest("x", "  \n ", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestChunkText(t *testing.T) {
	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 3) + "\n" + "tail"
	got := chunkText(text, 5)
	if len(got) != 2 || got[0] != "aaaaaaaa\n" || got[1] != "bbb\ntail" {
		t.Fatalf("chunks = %q", got)
	}
}

func TestIngestLinksChunksToDocument(t *testing.T) {
	s := newSvc(t)
	text := strings.Repeat("Sow ragi after the first monsoon rain.\n", 40)
	doc, n, err := s.Ingest("Ragi sowing", text, "https://agritech.tnau.ac.in/ragi")
	if err != nil {
		t.Fatal(err)
	}
	if n < 2 || doc.DocID == 0 {
		t.Fatalf("doc = %+v, chunks = %d", doc, n)
	}
	hits, err := s.Search("ragi monsoon", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != n {
		t.Fatalf("hits = %d, want %d", len(hits), n)
	}
	for i, h := range hits {
		if h.DocID != doc.DocID || h.Ord != i {
			t.Fatalf("chunk %d = doc %d ord %d", i, h.DocID, h.Ord)
		}
	}
	docs, _ := s.ListDocs()
	if len(docs) != 1 || docs[0].SourceURL != "https://agritech.tnau.ac.in/ragi" {
		t.Fatalf("docs = %+v", docs)
	}
}
