package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/pkg/logger"
	"ai-chatdesk-be/internal/repository/contract"
	"ai-chatdesk-be/pkg/backend"
	"ai-chatdesk-be/pkg/events"
	"ai-chatdesk-be/pkg/pathresolver"
	"ai-chatdesk-be/pkg/staging"

	"github.com/google/uuid"
)

type IUploadService interface {
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)
	GetDocumentIndex(ctx context.Context) ([]*dto.IndexedDocumentResponse, error)
	GetFilters(ctx context.Context) (*dto.UploadFiltersResponse, error)
}

type uploadService struct {
	resolver      *pathresolver.Resolver
	provider      backend.Provider
	indexRepo     contract.DocumentIndexRepository
	staging       *staging.Area
	streamService IStreamService
	logger        logger.ILogger
}

func NewUploadService(
	resolver *pathresolver.Resolver,
	provider backend.Provider,
	indexRepo contract.DocumentIndexRepository,
	stagingArea *staging.Area,
	streamService IStreamService,
	log logger.ILogger,
) IUploadService {
	return &uploadService{
		resolver:      resolver,
		provider:      provider,
		indexRepo:     indexRepo,
		staging:       stagingArea,
		streamService: streamService,
		logger:        log,
	}
}

// Upload resolves a selection, hands the files to the backend for
// indexing and records them in the local document registry. A canceled
// selection mutates nothing.
func (c *uploadService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	selection := pathresolver.Selection{
		Mode:     pathresolver.ModeFiles,
		Paths:    req.Paths,
		Canceled: req.Canceled,
	}
	if req.Directory != "" {
		selection.Mode = pathresolver.ModeDirectory
		selection.Paths = []string{req.Directory}
	}

	resolved, err := c.resolver.Resolve(ctx, selection)
	if err != nil {
		return nil, err
	}
	if resolved.Canceled {
		return &dto.UploadResponse{
			Canceled: true,
			Message:  "Selection canceled",
			Files:    []dto.UploadedFileDTO{},
		}, nil
	}
	if len(resolved.Paths) == 0 {
		return &dto.UploadResponse{
			Message: "No files selected",
			Files:   []dto.UploadedFileDTO{},
		}, nil
	}

	ingest, err := c.provider.IngestDocuments(ctx, resolved.Paths, req.Category)
	if err != nil {
		return nil, err
	}
	if !ingest.Success {
		return nil, fmt.Errorf("backend rejected ingestion: %s", ingest.Message)
	}

	now := time.Now()
	files := make([]dto.UploadedFileDTO, 0, len(resolved.Paths))
	staged := make([]entity.StagedAttachment, 0, len(resolved.Paths))
	for _, path := range resolved.Paths {
		doc := entity.IndexedDocument{
			Id:   uuid.New(),
			Name: filepath.Base(path),
			Path: path,
			Type: req.Category,
			Date: now,
		}
		if err := c.indexRepo.Create(ctx, &doc); err != nil {
			return nil, err
		}
		c.streamService.PublishDocumentIngested(ctx, events.DocumentIngestedPayload{
			Name: doc.Name,
			Path: doc.Path,
			Type: doc.Type,
			Date: doc.Date.Format(time.RFC3339),
		})

		files = append(files, dto.UploadedFileDTO{
			Name: doc.Name,
			Path: doc.Path,
			Type: doc.Type,
		})
		staged = append(staged, entity.StagedAttachment{
			Name: doc.Name,
			Type: doc.Type,
			Path: doc.Path,
		})
	}

	if req.Stage {
		c.staging.Append(staged...)
	}

	c.logger.Info("UploadService", "Documents ingested", map[string]interface{}{
		"count":    len(files),
		"category": req.Category,
	})

	return &dto.UploadResponse{
		Message: ingest.Message,
		Files:   files,
	}, nil
}

// GetDocumentIndex lists ingested documents, most recent first.
// Re-uploads show up as separate entries.
func (c *uploadService) GetDocumentIndex(ctx context.Context) ([]*dto.IndexedDocumentResponse, error) {
	docs, err := c.indexRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.IndexedDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, &dto.IndexedDocumentResponse{
			Name: doc.Name,
			Path: doc.Path,
			Type: doc.Type,
			Date: doc.Date,
		})
	}
	return result, nil
}

func (c *uploadService) GetFilters(_ context.Context) (*dto.UploadFiltersResponse, error) {
	return &dto.UploadFiltersResponse{
		Categories: pathresolver.Categories(),
	}, nil
}
