//go:build !windows

package files

import (
	"io/fs"
	"os"
)

func isLink(_ string, info fs.FileInfo) (bool, error) {
	return info.Mode()&fs.ModeSymlink != 0, nil
}

func replaceFile(tmpPath, path string) error {
	return os.Rename(tmpPath, path)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
