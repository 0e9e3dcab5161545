package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocatorFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	id, err := PathToResourceID(path)
	if err != nil {
		t.Fatal(err)
	}

	l := NewLocator()
	data, contentType, err := l.Fetch(id)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "contents" {
		t.Errorf("data = %q", data)
	}
	if contentType == "" {
		t.Error("content type not guessed")
	}

	// Second fetch hits the decoded-path cache.
	if _, _, err := l.Fetch(id); err != nil {
		t.Errorf("cached fetch: %v", err)
	}
}

func TestLocatorFetchMissingFile(t *testing.T) {
	id, err := PathToResourceID(filepath.Join(t.TempDir(), "gone.pdf"))
	if err != nil {
		t.Fatal(err)
	}

	l := NewLocator()
	if _, _, err := l.Fetch(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLocatorFetchMalformedID(t *testing.T) {
	l := NewLocator()
	if _, _, err := l.Fetch("not-a-resource-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLocatorFetchUnknownExtensionFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.zzz")
	if err := os.WriteFile(path, []byte{0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	id, _ := PathToResourceID(path)

	l := NewLocator()
	_, contentType, err := l.Fetch(id)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("contentType = %q, want application/octet-stream", contentType)
	}
}
