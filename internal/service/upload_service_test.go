package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ai-chatdesk-be/internal/constant"
	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/repository/memory"
	"ai-chatdesk-be/pkg/pathresolver"
	"ai-chatdesk-be/pkg/staging"

	"github.com/stretchr/testify/assert"
)

type uploadFixture struct {
	service  IUploadService
	provider *fakeProvider
	area     *staging.Area
}

func newUploadFixture() *uploadFixture {
	provider := &fakeProvider{ingestSuccess: true, ingestMessage: "indexed"}
	area := staging.New()
	svc := NewUploadService(
		pathresolver.New(),
		provider,
		memory.NewDocumentIndex(),
		area,
		nopStream{},
		nopLogger{},
	)
	return &uploadFixture{service: svc, provider: provider, area: area}
}

func writeTempFiles(t *testing.T, names ...string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return dir, paths
}

func TestUploadIngestsAndIndexes(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	_, paths := writeTempFiles(t, "a.pdf", "b.pdf")

	res, err := f.service.Upload(ctx, &dto.UploadRequest{
		Paths:    paths,
		Category: constant.AttachmentTypeDocument,
	})
	assert.NoError(t, err)
	assert.False(t, res.Canceled)
	assert.Equal(t, "indexed", res.Message)
	assert.Len(t, res.Files, 2)
	assert.Equal(t, paths, f.provider.ingestPaths)

	docs, err := f.service.GetDocumentIndex(ctx)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestUploadDirectoryModeWalksTree(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	dir, _ := writeTempFiles(t, "a.pdf", filepath.Join("sub", "b.pdf"))

	res, err := f.service.Upload(ctx, &dto.UploadRequest{
		Directory: dir,
		Category:  constant.AttachmentTypeDocument,
	})
	assert.NoError(t, err)
	assert.Len(t, res.Files, 2)
}

func TestUploadCanceledMutatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()

	res, err := f.service.Upload(ctx, &dto.UploadRequest{
		Category: constant.AttachmentTypeDocument,
		Canceled: true,
	})
	assert.NoError(t, err)
	assert.True(t, res.Canceled)
	assert.Empty(t, res.Files)
	assert.Zero(t, f.provider.ingestCalls)

	docs, _ := f.service.GetDocumentIndex(ctx)
	assert.Empty(t, docs)
}

func TestUploadIngestRejectionSkipsIndex(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	f.provider.ingestSuccess = false
	f.provider.ingestMessage = "unsupported format"
	_, paths := writeTempFiles(t, "a.pdf")

	_, err := f.service.Upload(ctx, &dto.UploadRequest{
		Paths:    paths,
		Category: constant.AttachmentTypeDocument,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	docs, _ := f.service.GetDocumentIndex(ctx)
	assert.Empty(t, docs)
}

func TestUploadBackendErrorSkipsIndex(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	f.provider.ingestErr = errors.New("connection refused")
	_, paths := writeTempFiles(t, "a.pdf")

	_, err := f.service.Upload(ctx, &dto.UploadRequest{
		Paths:    paths,
		Category: constant.AttachmentTypeDocument,
	})
	assert.Error(t, err)

	docs, _ := f.service.GetDocumentIndex(ctx)
	assert.Empty(t, docs)
}

func TestUploadReingestCreatesDuplicateEntries(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	_, paths := writeTempFiles(t, "a.pdf")

	for i := 0; i < 2; i++ {
		_, err := f.service.Upload(ctx, &dto.UploadRequest{
			Paths:    paths,
			Category: constant.AttachmentTypeDocument,
		})
		assert.NoError(t, err)
	}

	docs, _ := f.service.GetDocumentIndex(ctx)
	assert.Len(t, docs, 2)
}

func TestUploadStageFlagStagesAttachments(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	_, paths := writeTempFiles(t, "a.pdf")

	_, err := f.service.Upload(ctx, &dto.UploadRequest{
		Paths:    paths,
		Category: constant.AttachmentTypeDocument,
		Stage:    true,
	})
	assert.NoError(t, err)

	staged := f.area.List()
	assert.Len(t, staged, 1)
	assert.Equal(t, "a.pdf", staged[0].Name)
	assert.Equal(t, constant.AttachmentTypeDocument, staged[0].Type)
	assert.False(t, staged[0].PendingAudio())
}

func TestUploadWithoutStageFlagLeavesStagingAlone(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture()
	_, paths := writeTempFiles(t, "a.pdf")

	_, err := f.service.Upload(ctx, &dto.UploadRequest{
		Paths:    paths,
		Category: constant.AttachmentTypeDocument,
	})
	assert.NoError(t, err)
	assert.Zero(t, f.area.Len())
}

func TestGetFiltersListsAllCategories(t *testing.T) {
	f := newUploadFixture()

	res, err := f.service.GetFilters(context.Background())
	assert.NoError(t, err)
	for _, category := range []string{
		constant.AttachmentTypeDocument,
		constant.AttachmentTypeVideo,
		constant.AttachmentTypeAudio,
		constant.AttachmentTypeImage,
	} {
		assert.NotEmpty(t, res.Categories[category])
	}
}
