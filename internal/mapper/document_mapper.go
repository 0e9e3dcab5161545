package mapper

import (
	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) IndexedDocumentToEntity(d *model.IndexedDocument) *entity.IndexedDocument {
	if d == nil {
		return nil
	}

	return &entity.IndexedDocument{
		Id:   d.Id,
		Name: d.Name,
		Path: d.Path,
		Type: d.Type,
		Date: d.Date,
	}
}

func (m *DocumentMapper) IndexedDocumentToModel(d *entity.IndexedDocument) *model.IndexedDocument {
	if d == nil {
		return nil
	}

	return &model.IndexedDocument{
		Id:   d.Id,
		Name: d.Name,
		Path: d.Path,
		Type: d.Type,
		Date: d.Date,
	}
}
