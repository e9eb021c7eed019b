package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/jmgilman/go/pathlib/fs/fstest"
)

// TestLocalFS_Constructor verifies NewLocal creates a valid storage.
func TestLocalFS_Constructor(t *testing.T) {
	fs := NewLocal()
	if fs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewLocal() bfs field is nil")
	}
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid storage.
func TestMemoryFS_Constructor(t *testing.T) {
	fs := NewMemory()
	if fs == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewMemory() bfs field is nil")
	}
}

// TestMemoryFS_Unwrap verifies Unwrap returns the underlying billy.Filesystem.
func TestMemoryFS_Unwrap(t *testing.T) {
	fs := NewMemory()
	billyFS := fs.Unwrap()
	if billyFS == nil {
		t.Fatal("Unwrap() returned nil")
	}

	// Writes through billy are visible through the storage
	f, err := billyFS.Create("/test.txt")
	if err != nil {
		t.Fatalf("Failed to use unwrapped filesystem: %v", err)
	}
	_ = f.Close()

	ok, err := fs.Exists("test.txt")
	if err != nil || !ok {
		t.Errorf("Exists(test.txt) = %v, %v; want true, nil", ok, err)
	}
}

func TestFS_Type(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("NewLocal().Type() = %v, want %v", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("NewMemory().Type() = %v, want %v", got, core.FSTypeMemory)
	}
}

// TestNormalize verifies names are made absolute before reaching billy.
func TestNormalize(t *testing.T) {
	mem := NewMemory()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative", "a/b", filepath.FromSlash("/a/b")},
		{"absolute", "/a/b", filepath.FromSlash("/a/b")},
		{"dot segments", "/a/./b/../c", filepath.FromSlash("/a/c")},
		{"empty", "", string(filepath.Separator)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mem.normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): %v", err)
	}
	if got := NewLocal().normalize("x"); got != filepath.Join(wd, "x") {
		t.Errorf("local normalize(%q) = %q, want %q", "x", got, filepath.Join(wd, "x"))
	}
}

// TestDirEntry_Methods verifies the FileInfo to DirEntry conversion.
func TestDirEntry_Methods(t *testing.T) {
	fs := NewMemory()
	if err := fs.MkdirAll("/d/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(): %v", err)
	}
	if err := fs.WriteFile("/d/file.txt", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	entries, err := fs.ReadDir("/d")
	if err != nil {
		t.Fatalf("ReadDir(): %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatalf("Info(): %v", err)
		}
		switch e.Name() {
		case "sub":
			if !e.IsDir() || e.Type()&iofs.ModeDir == 0 {
				t.Errorf("entry %q: want directory", e.Name())
			}
		case "file.txt":
			if e.IsDir() || info.Size() != 3 {
				t.Errorf("entry %q: IsDir() = %v, Size() = %d; want false, 3", e.Name(), e.IsDir(), info.Size())
			}
		default:
			t.Errorf("unexpected entry %q", e.Name())
		}
	}
}

// TestMemoryFS_MkdirParentIsFile verifies Mkdir refuses a file parent.
func TestMemoryFS_MkdirParentIsFile(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/file", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	err := fs.Mkdir("/file/child", 0o755)
	if err == nil {
		t.Fatal("Mkdir(/file/child): got nil error, want error")
	}
	if errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Mkdir(/file/child): got %v, want a non-ErrNotExist error", err)
	}
}

// TestMemoryFS_Chmod verifies memory storage reports no permission model.
func TestMemoryFS_Chmod(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/f", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	if err := fs.Chmod("/f", 0o600); err != nil && !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("Chmod(): got %v, want nil or %v", err, core.ErrUnsupported)
	}
}

// TestLocalFS_GlobBracketedDir verifies metacharacters in the directory
// are matched literally.
func TestLocalFS_GlobBracketedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x[ab]")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(): %v", err)
	}
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(): %v", err)
		}
	}

	matches, err := NewLocal().Glob(dir, "*.txt")
	if err != nil {
		t.Fatalf("Glob(%q): %v", dir, err)
	}
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	slices.Sort(matches)
	if !slices.Equal(matches, want) {
		t.Errorf("Glob(%q) = %v, want %v", dir, matches, want)
	}
}

// TestMemoryFS_GlobNotADirectory verifies a file or missing dir has no matches.
func TestMemoryFS_GlobNotADirectory(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	for _, dir := range []string{"/f.txt", "/missing"} {
		matches, err := fs.Glob(dir, "*")
		if err != nil {
			t.Errorf("Glob(%q): got error %v, want nil", dir, err)
		}
		if len(matches) != 0 {
			t.Errorf("Glob(%q) = %v, want no matches", dir, matches)
		}
	}
}

// TestLocalFS runs the conformance suite against disk-backed storage.
func TestLocalFS(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func() core.Storage {
		return NewLocal()
	}, fstest.LocalTestConfig())
}

// TestMemoryFS runs the conformance suite against in-memory storage.
func TestMemoryFS(t *testing.T) {
	fstest.TestSuite(t, func() core.Storage {
		return NewMemory()
	})
}
