package implementation

import (
	"context"

	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/mapper"
	"ai-chatdesk-be/internal/model"
	"ai-chatdesk-be/internal/repository/contract"
	"ai-chatdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentIndexRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentIndexRepository(db *gorm.DB) contract.DocumentIndexRepository {
	return &DocumentIndexRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentIndexRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentIndexRepositoryImpl) Create(ctx context.Context, document *entity.IndexedDocument) error {
	m := r.mapper.IndexedDocumentToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.IndexedDocumentToEntity(m)
	return nil
}

func (r *DocumentIndexRepositoryImpl) FindAll(ctx context.Context) ([]*entity.IndexedDocument, error) {
	var models []*model.IndexedDocument
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.IndexedDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.IndexedDocumentToEntity(m)
	}
	return entities, nil
}

func (r *DocumentIndexRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.IndexedDocument{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
