package service

import (
	"context"

	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/pkg/logger"
	"ai-chatdesk-be/pkg/resource"
)

type IResourceService interface {
	Fetch(ctx context.Context, resourceId string) ([]byte, string, error)
	Open(ctx context.Context, req *dto.OpenResourceRequest) error
}

type resourceService struct {
	locator *resource.Locator
	logger  logger.ILogger
}

func NewResourceService(locator *resource.Locator, log logger.ILogger) IResourceService {
	return &resourceService{
		locator: locator,
		logger:  log,
	}
}

func (c *resourceService) Fetch(_ context.Context, resourceId string) ([]byte, string, error) {
	data, contentType, err := c.locator.Fetch(resourceId)
	if err != nil {
		c.logger.Warn("ResourceService", "Resource fetch failed", map[string]interface{}{
			"resource_id": resourceId,
			"error":       err.Error(),
		})
		return nil, "", err
	}
	return data, contentType, nil
}

func (c *resourceService) Open(_ context.Context, req *dto.OpenResourceRequest) error {
	return resource.OpenExternal(req.Path)
}
