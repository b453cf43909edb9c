package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/withseekbar/internal/apperrors"
)

// RejectSymlinkPath returns a KindUnsafePath error if path or any existing
// ancestor directory is a symlink or, on Windows, a reparse point. Missing
// components end the walk since nothing below them can be a link yet.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.Write("Style file path is empty.", nil)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return apperrors.Write("", fmt.Errorf("resolve %s: %w", path, err))
	}

	for _, p := range ancestors(abs) {
		info, err := os.Lstat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return apperrors.Write("", fmt.Errorf("inspect %s: %w", p, err))
		}
		link, err := isLink(p, info)
		if err != nil {
			return apperrors.Write("", fmt.Errorf("inspect %s: %w", p, err))
		}
		if link {
			return apperrors.UnsafePath(fmt.Sprintf("Refusing to write %s: %s is a symlink.", path, p))
		}
	}
	return nil
}

// ancestors lists abs and its parents from the root down, excluding the
// root itself.
func ancestors(abs string) []string {
	var out []string
	for p := filepath.Clean(abs); ; {
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		out = append(out, p)
		p = parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
