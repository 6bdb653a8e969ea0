package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local reads attachments from the local filesystem.
type Local struct {
	root string
}

// NewLocal creates a local source. A non-empty root confines all paths to
// that directory; an empty root resolves paths as the caller wrote them.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open implements herald.FileSource.
func (l *Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	resolved := path
	if l.root != "" {
		resolved = filepath.Join(l.root, filepath.Clean("/"+path))
		if !strings.HasPrefix(resolved, filepath.Clean(l.root)+string(os.PathSeparator)) {
			return nil, fmt.Errorf("%w: %s escapes root", ErrAccessDenied, path)
		}
	}

	f, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	return f, nil
}
