package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chatdesk-be/internal/entity"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *HTTPProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPProvider(srv.URL, 5)
}

func TestQueryTextDecodesMixedSources(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			t.Errorf("path = %q, want /query", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["query"] != "what is in the report?" {
			t.Errorf("query = %q", body["query"])
		}
		w.Write([]byte(`{
			"text": "The report covers Q3.",
			"sources": [
				"legacy-citation.pdf",
				{"name": "report.pdf", "path": "/home/user/report.pdf"},
				{"name": "orphan.pdf"}
			]
		}`))
	})

	res, err := p.QueryText(context.Background(), "what is in the report?")
	if err != nil {
		t.Fatalf("QueryText: %v", err)
	}
	if res.Text != "The report covers Q3." {
		t.Errorf("Text = %q", res.Text)
	}
	if len(res.Sources) != 3 {
		t.Fatalf("Sources = %v, want 3", res.Sources)
	}

	if res.Sources[0].Kind != entity.SourceDisplayOnly || res.Sources[0].Name != "legacy-citation.pdf" {
		t.Errorf("bare string source decoded as %+v", res.Sources[0])
	}
	if res.Sources[1].Kind != entity.SourceInteractive || res.Sources[1].Path != "/home/user/report.pdf" {
		t.Errorf("object source decoded as %+v", res.Sources[1])
	}
	if res.Sources[2].Kind != entity.SourceDisplayOnly {
		t.Errorf("pathless object should be display-only, got %+v", res.Sources[2])
	}
}

func TestQueryTextMissingTextIsValidationError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sources": []}`))
	})

	_, err := p.QueryText(context.Background(), "q")
	var vErr *ResponseValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ResponseValidationError", err)
	}
	if vErr.Field != "text" {
		t.Errorf("Field = %q, want text", vErr.Field)
	}
}

func TestQueryTextRejectsRelativeSourcePath(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": "ok", "sources": [{"name": "a.pdf", "path": "docs/a.pdf"}]}`))
	})

	_, err := p.QueryText(context.Background(), "q")
	var vErr *ResponseValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ResponseValidationError", err)
	}
}

func TestQueryTextBackendDown(t *testing.T) {
	p := NewHTTPProvider("http://127.0.0.1:1", 1)
	if _, err := p.QueryText(context.Background(), "q"); err == nil {
		t.Error("expected transport error")
	}
}

func TestQueryTextNon2xx(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	if _, err := p.QueryText(context.Background(), "q"); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestQuerySpeechSendsMultipart(t *testing.T) {
	audio := []byte{0x52, 0x49, 0x46, 0x46}

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/speech" {
			t.Errorf("path = %q, want /speech", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "recording.wav" {
			t.Errorf("filename = %q", header.Filename)
		}
		w.Write([]byte(`{"text": "transcribed answer", "sources": []}`))
	})

	res, err := p.QuerySpeech(context.Background(), "recording.wav", audio)
	if err != nil {
		t.Fatalf("QuerySpeech: %v", err)
	}
	if res.Text != "transcribed answer" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestIngestDocuments(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ingest" {
			t.Errorf("path = %q, want /ingest", r.URL.Path)
		}
		var body struct {
			FilePaths []string `json:"file_paths"`
			Type      string   `json:"type"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.FilePaths) != 2 || body.Type != "document" {
			t.Errorf("body = %+v", body)
		}
		w.Write([]byte(`{"success": true, "message": "2 files indexed"}`))
	})

	res, err := p.IngestDocuments(context.Background(), []string{"/a.pdf", "/b.pdf"}, "document")
	if err != nil {
		t.Fatalf("IngestDocuments: %v", err)
	}
	if !res.Success || res.Message != "2 files indexed" {
		t.Errorf("res = %+v", res)
	}
}

func TestIngestDocumentsMissingSuccess(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "??"}`))
	})

	_, err := p.IngestDocuments(context.Background(), []string{"/a.pdf"}, "document")
	var vErr *ResponseValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ResponseValidationError", err)
	}
}
