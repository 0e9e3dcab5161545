package service

import (
	"context"
	"errors"

	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/pkg/staging"
)

var ErrStagedItemNotFound = errors.New("staged attachment not found")

type IStagingService interface {
	Get(ctx context.Context) (*dto.GetStagingResponse, error)
	Stage(ctx context.Context, req *dto.StageFilesRequest) (*dto.GetStagingResponse, error)
	StageRecording(ctx context.Context, name string, payload []byte) (*dto.GetStagingResponse, error)
	Remove(ctx context.Context, index int) (*dto.GetStagingResponse, error)
	Clear(ctx context.Context) error
}

type stagingService struct {
	area *staging.Area
}

func NewStagingService(area *staging.Area) IStagingService {
	return &stagingService{area: area}
}

func (c *stagingService) snapshot() *dto.GetStagingResponse {
	items := c.area.List()
	result := make([]dto.StagedAttachmentDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dto.StagedAttachmentDTO{
			Name:     item.Name,
			Type:     item.Type,
			Path:     item.Path,
			Recorded: item.PendingAudio(),
		})
	}
	return &dto.GetStagingResponse{
		Items:           result,
		HasPendingAudio: c.area.HasPendingAudio(),
	}
}

func (c *stagingService) Get(_ context.Context) (*dto.GetStagingResponse, error) {
	return c.snapshot(), nil
}

func (c *stagingService) Stage(_ context.Context, req *dto.StageFilesRequest) (*dto.GetStagingResponse, error) {
	for _, file := range req.Files {
		c.area.Append(entityFromDTO(file))
	}
	return c.snapshot(), nil
}

func (c *stagingService) StageRecording(_ context.Context, name string, payload []byte) (*dto.GetStagingResponse, error) {
	c.area.AppendRecording(name, payload)
	return c.snapshot(), nil
}

func (c *stagingService) Remove(_ context.Context, index int) (*dto.GetStagingResponse, error) {
	if !c.area.RemoveAt(index) {
		return nil, ErrStagedItemNotFound
	}
	return c.snapshot(), nil
}

func (c *stagingService) Clear(_ context.Context) error {
	c.area.Clear()
	return nil
}

func entityFromDTO(file dto.UploadedFileDTO) entity.StagedAttachment {
	return entity.StagedAttachment{
		Name: file.Name,
		Type: file.Type,
		Path: file.Path,
	}
}
