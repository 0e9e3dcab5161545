package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/pkg/resource"
)

// HTTPProvider talks to the knowledge backend over its local REST
// surface.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

var _ Provider = (*HTTPProvider)(nil)

func NewHTTPProvider(baseURL string, timeoutSeconds int) *HTTPProvider {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 120
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

// wireSource decodes the two source shapes the backend may emit: a bare
// string (display-only citation) or an object with a name and an
// absolute local path (interactive citation).
type wireSource struct {
	ref entity.SourceRef
}

func (w *wireSource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name == "" {
			return &ResponseValidationError{Field: "sources", Reason: "holds an empty string entry"}
		}
		w.ref = entity.SourceRef{Kind: entity.SourceDisplayOnly, Name: name}
		return nil
	}

	var obj struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return &ResponseValidationError{Field: "sources", Reason: "holds a malformed entry"}
	}
	if obj.Name == "" {
		return &ResponseValidationError{Field: "sources", Reason: "holds an object entry without a name"}
	}
	if obj.Path == "" {
		w.ref = entity.SourceRef{Kind: entity.SourceDisplayOnly, Name: obj.Name}
		return nil
	}
	if !resource.IsAbsPath(obj.Path) {
		return &ResponseValidationError{Field: "sources", Reason: fmt.Sprintf("holds non-absolute path %q", obj.Path)}
	}
	w.ref = entity.SourceRef{Kind: entity.SourceInteractive, Name: obj.Name, Path: obj.Path}
	return nil
}

type queryResponse struct {
	Text    *string      `json:"text"`
	Sources []wireSource `json:"sources"`
}

func (r *queryResponse) toResult() (*QueryResult, error) {
	if r.Text == nil {
		return nil, &ResponseValidationError{Field: "text", Reason: "is missing"}
	}
	result := &QueryResult{Text: *r.Text}
	for _, src := range r.Sources {
		result.Sources = append(result.Sources, src.ref)
	}
	return result, nil
}

func (p *HTTPProvider) QueryText(ctx context.Context, query string) (*QueryResult, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var decoded queryResponse
	if err := p.do(req, &decoded); err != nil {
		return nil, err
	}
	return decoded.toResult()
}

func (p *HTTPProvider) QuerySpeech(ctx context.Context, filename string, audio []byte) (*QueryResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build speech form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("write speech payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish speech form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/speech", &buf)
	if err != nil {
		return nil, fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var decoded queryResponse
	if err := p.do(req, &decoded); err != nil {
		return nil, err
	}
	return decoded.toResult()
}

func (p *HTTPProvider) IngestDocuments(ctx context.Context, filePaths []string, category string) (*IngestResult, error) {
	body, err := json.Marshal(map[string]any{
		"file_paths": filePaths,
		"type":       category,
	})
	if err != nil {
		return nil, fmt.Errorf("encode ingest request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/ingest", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build ingest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var decoded struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := p.do(req, &decoded); err != nil {
		return nil, err
	}
	if decoded.Success == nil {
		return nil, &ResponseValidationError{Field: "success", Reason: "is missing"}
	}
	return &IngestResult{Success: *decoded.Success, Message: decoded.Message}, nil
}

func (p *HTTPProvider) do(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		var vErr *ResponseValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		return &ResponseValidationError{Field: "body", Reason: "is not valid JSON"}
	}
	return nil
}
