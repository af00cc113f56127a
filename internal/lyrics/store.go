package lyrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is returned when a lyrics reference does not resolve to content.
var ErrNotFound = errors.New("lyrics not found")

// Fetcher resolves a lyrics reference to raw text.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, ref string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, ref string) (string, error) {
	return f(ctx, ref)
}

// DirStore reads lyric files from a directory. References are relative paths
// and may not escape the directory.
type DirStore struct {
	dir string
}

var _ Fetcher = DirStore{}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string) DirStore {
	return DirStore{dir: dir}
}

// Fetch reads the file named by ref.
func (s DirStore) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: lyrics dir %s missing", ErrNotFound, s.dir)
		}
		return "", fmt.Errorf("open lyrics dir: %w", err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(ref)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return "", fmt.Errorf("open lyrics %s: %w", ref, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read lyrics %s: %w", ref, err)
	}
	return string(data), nil
}
