package repository

import "farmassist/entities"

// KBRepository stores farming reference articles split into text chunks.
type KBRepository interface {
	// SaveDocument writes the document and its chunks together; DocID is set
	// on both.
	SaveDocument(doc *entities.KBDocument, chunks []entities.KBChunk) error
	ListDocuments() ([]entities.KBDocument, error)
	Chunks() ([]entities.KBChunk, error)
	DocumentsByID(ids []uint) (map[uint]entities.KBDocument, error)
}
