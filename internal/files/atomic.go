// Package files writes style files in place without leaving partial output.
package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oukeidos/withseekbar/internal/apperrors"
	"github.com/oukeidos/withseekbar/internal/logger"
)

// WriteAtomic streams write into a temp file next to path and renames it into
// place. path and its parents must not be symlinks. Errors from write are
// returned unchanged; filesystem failures carry apperrors.KindWrite.
func WriteAtomic(path string, perms os.FileMode, write func(io.Writer) error) error {
	if err := RejectSymlinkPath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".seekbar-*.tmp")
	if err != nil {
		return apperrors.Write("", fmt.Errorf("create temp file in %s: %w", dir, err))
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(perms); err != nil {
		return apperrors.Write("", fmt.Errorf("chmod %s: %w", tmpPath, err))
	}
	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return apperrors.Write("", fmt.Errorf("write %s: %w", tmpPath, err))
	}
	if err := tmp.Sync(); err != nil {
		return apperrors.Write("", fmt.Errorf("sync %s: %w", tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Write("", fmt.Errorf("close %s: %w", tmpPath, err))
	}
	if err := replaceFile(tmpPath, path); err != nil {
		return apperrors.Write("", fmt.Errorf("replace %s: %w", path, err))
	}
	done = true

	if err := syncDir(dir); err != nil {
		logger.Warn("Directory fsync failed", "path", dir, "error", err)
	}
	return nil
}
