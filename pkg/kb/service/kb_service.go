package service

import "farmassist/entities"

type KBService interface {
	// Ingest chunks an article and returns the stored document with its chunk count.
	Ingest(title, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(query string, k int) ([]entities.KBChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
	ListDocs() ([]entities.KBDocument, error)
}
