package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oukeidos/withseekbar/internal/apperrors"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestRejectSymlinkPath_Target(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target.toml")
	if err := os.WriteFile(target, []byte("max = 1\n"), 0600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "bar.toml")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := RejectSymlinkPath(link); err == nil {
		t.Fatalf("expected symlink rejection")
	}
}

func TestRejectSymlinkPath_AncestorDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	realDir := filepath.Join(tmp, "real", "nested")
	if err := os.MkdirAll(realDir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	linkDir := filepath.Join(tmp, "link")
	if err := os.Symlink(filepath.Join(tmp, "real"), linkDir); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}

	if err := RejectSymlinkPath(filepath.Join(linkDir, "nested", "bar.toml")); err == nil {
		t.Fatalf("expected ancestor symlink rejection")
	}
	if err := RejectSymlinkPath(filepath.Join(realDir, "bar.toml")); err != nil {
		t.Fatalf("plain path rejected: %v", err)
	}
}

func TestWriteAtomic_ReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.toml")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteAtomic(path, 0644, writeString("max = 5\n")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "max = 5\n" {
		t.Fatalf("content = %q", data)
	}
}

func TestWriteAtomic_FailedWriteKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bar.toml")
	if err := os.WriteFile(path, []byte("original"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	boom := errors.New("boom")
	err := WriteAtomic(path, 0600, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Fatalf("original replaced: %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestWriteAtomic_RejectsSymlinkTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target.toml")
	if err := os.WriteFile(target, []byte("original"), 0600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "bar.toml")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	err := WriteAtomic(link, 0600, writeString("new"))
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindUnsafePath {
		t.Fatalf("kind = %q, want unsafe_path (err=%v)", kind, err)
	}
	if msg := apperrors.PublicMessage(err); !strings.Contains(msg, "bar.toml") || !strings.Contains(msg, "is a symlink") {
		t.Fatalf("public message = %q", msg)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "original" {
		t.Fatalf("target modified via symlink: %s", string(data))
	}
}

func TestWriteAtomic_EmptyPathAndMissingDir(t *testing.T) {
	if kind, _ := apperrors.KindOf(WriteAtomic(" ", 0600, writeString("x"))); kind != apperrors.KindWrite {
		t.Fatalf("empty path kind = %q, want write", kind)
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "bar.toml")
	if kind, _ := apperrors.KindOf(WriteAtomic(missing, 0600, writeString("x"))); kind != apperrors.KindWrite {
		t.Fatalf("missing dir kind = %q, want write", kind)
	}
}

func TestAncestors(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(os.PathSeparator)
	got := ancestors(filepath.Join(root, "a", "b", "c.toml"))
	want := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "b", "c.toml"),
	}
	if len(got) != len(want) {
		t.Fatalf("ancestors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ancestors = %v, want %v", got, want)
		}
	}
}
