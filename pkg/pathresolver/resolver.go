package pathresolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Mode tells the resolver how to interpret a selection.
type Mode string

const (
	ModeFiles     Mode = "files"
	ModeDirectory Mode = "directory"
)

// Selection is what the picker surface hands over: either explicit file
// paths or directory roots, plus a cancellation marker.
type Selection struct {
	Mode     Mode
	Paths    []string
	Canceled bool
}

// Result carries the resolved absolute file paths. A canceled selection
// yields Canceled=true and no paths, never an error.
type Result struct {
	Canceled bool
	Paths    []string
}

type Resolver struct{}

func New() *Resolver {
	return &Resolver{}
}

// Resolve turns a selection into absolute file paths. Directory mode
// walks each root recursively and collects every regular file beneath
// it; file mode normalizes the given paths in order.
func (r *Resolver) Resolve(ctx context.Context, selection Selection) (Result, error) {
	if selection.Canceled {
		return Result{Canceled: true}, nil
	}

	switch selection.Mode {
	case ModeFiles:
		paths := make([]string, 0, len(selection.Paths))
		for _, p := range selection.Paths {
			abs, err := filepath.Abs(p)
			if err != nil {
				return Result{}, fmt.Errorf("resolve path %q: %w", p, err)
			}
			paths = append(paths, abs)
		}
		return Result{Paths: paths}, nil

	case ModeDirectory:
		var paths []string
		visited := make(map[string]struct{})
		for _, root := range selection.Paths {
			abs, err := filepath.Abs(root)
			if err != nil {
				return Result{}, fmt.Errorf("resolve directory %q: %w", root, err)
			}
			if err := walk(ctx, abs, visited, &paths); err != nil {
				return Result{}, err
			}
		}
		return Result{Paths: paths}, nil

	default:
		return Result{}, fmt.Errorf("unknown selection mode %q", selection.Mode)
	}
}

// walk collects regular files under dir. Directory entries are visited
// in name order, so traversal is deterministic. Symlinked directories
// are followed, with a resolved-path set guarding against cycles.
func walk(ctx context.Context, dir string, visited map[string]struct{}, out *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("resolve directory %q: %w", dir, err)
	}
	if _, seen := visited[real]; seen {
		return nil
	}
	visited[real] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		info, err := os.Stat(full)
		if err != nil {
			// Dangling symlink or a file that vanished mid-walk.
			continue
		}
		switch {
		case info.IsDir():
			if err := walk(ctx, full, visited, out); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			*out = append(*out, full)
		}
	}
	return nil
}
