package serviceImp

import (
	"errors"
	"log"
	"sort"
	"strings"
	"unicode"

	"farmassist/entities"
	"farmassist/pkg/kb/repository"
)

const chunkRunes = 1000

// terms shorter than this are ignored when scoring
const minTermLen = 3

type Svc struct{ r repository.KBRepository }

func New(r repository.KBRepository) *Svc { return &Svc{r: r} }

// chunkText cuts at the first newline after maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) Ingest(title, text, sourceURL string) (*entities.KBDocument, int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, 0, errors.New("empty document")
	}
	d := &entities.KBDocument{Title: title, SourceURL: sourceURL}
	chs := chunkText(text, chunkRunes)
	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		rows[i] = entities.KBChunk{Ord: i, Text: chs[i]}
	}
	if err := s.r.SaveDocument(d, rows); err != nil {
		return nil, 0, err
	}
	log.Printf("[kb] stored %q as %d chunk(s)", title, len(rows))
	return d, len(rows), nil
}

// Search ranks chunks by how often the query's words occur in them. Chunks
// with no hits are left out; ties keep insertion order.
func (s *Svc) Search(query string, k int) ([]entities.KBChunk, error) {
	terms := queryTerms(query)
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.Chunks()
	if err != nil {
		return nil, err
	}

	type scored struct {
		ch entities.KBChunk
		sc int
	}
	var hits []scored
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		sc := 0
		for _, t := range terms {
			sc += strings.Count(low, t)
		}
		if sc > 0 {
			hits = append(hits, scored{ch, sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].sc > hits[j].sc })

	out := make([]entities.KBChunk, 0, min(k, len(hits)))
	for i := 0; i < len(hits) && i < k; i++ {
		out = append(out, hits[i].ch)
	}
	return out, nil
}

func queryTerms(q string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len([]rune(w)) < minTermLen || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.r.DocumentsByID(ids)
}

func (s *Svc) ListDocs() ([]entities.KBDocument, error) { return s.r.ListDocuments() }
