package resource

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrNotFound marks a resolution failure (missing file, permission
// denied). Callers surface it as a 404-equivalent; it never crashes a
// session.
var ErrNotFound = errors.New("resource not found")

// Locator resolves resource ids to file contents. Decoded id -> path
// mappings are cached; contents are read fresh on every fetch.
type Locator struct {
	paths *cache.Cache
}

func NewLocator() *Locator {
	// Ids are immutable encodings, the TTL only bounds memory.
	return &Locator{
		paths: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (l *Locator) resolve(id string) (string, error) {
	if x, found := l.paths.Get(id); found {
		return x.(string), nil
	}
	path, err := ResourceIDToPath(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	l.paths.Set(id, path, cache.DefaultExpiration)
	return path, nil
}

// Fetch returns the bytes behind a resource id along with a content type
// guessed from the extension.
func (l *Locator) Fetch(id string) ([]byte, string, error) {
	path, err := l.resolve(id)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}
