package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
)

// TestWriteStorage tests write primitives: WriteFile, Mkdir, MkdirAll.
// Uses MemoryTestConfig() by default.
func TestWriteStorage(t *testing.T, s core.Storage) {
	TestWriteStorageWithConfig(t, s, MemoryTestConfig())
}

// TestWriteStorageWithConfig tests write primitives with behavior configuration.
func TestWriteStorageWithConfig(t *testing.T, s core.Storage, config StorageTestConfig) {
	root := config.Root(t, s)

	const group = "WriteStorage"
	config.run(t, group, "WriteFile", func(t *testing.T) {
		name := filepath.Join(root, "write.txt")
		want := []byte("hello")
		if err := s.WriteFile(name, want, 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
		}
		got, err := s.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
		}
	})
	config.run(t, group, "WriteFileTruncates", func(t *testing.T) {
		name := filepath.Join(root, "truncate.txt")
		if err := s.WriteFile(name, []byte("a much longer first version"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
		want := []byte("short")
		if err := s.WriteFile(name, want, 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
		}
		got, err := s.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
		}
	})
	config.run(t, group, "Mkdir", func(t *testing.T) {
		name := filepath.Join(root, "single")
		if err := s.Mkdir(name, 0o755); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", name, err)
		}
		info, err := s.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", name)
		}
	})
	config.run(t, group, "MkdirExists", func(t *testing.T) {
		name := filepath.Join(root, "twice")
		if err := s.Mkdir(name, 0o755); err != nil {
			t.Fatalf("Mkdir(%q): setup failed: %v", name, err)
		}
		if err := s.Mkdir(name, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q): got error %v, want %v", name, err, fs.ErrExist)
		}
	})
	config.run(t, group, "MkdirMissingParent", func(t *testing.T) {
		name := filepath.Join(root, "missing", "child")
		if err := s.Mkdir(name, 0o755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(%q): got error %v, want %v", name, err, fs.ErrNotExist)
		}
		if ok, _ := s.Exists(filepath.Dir(name)); ok {
			t.Errorf("Mkdir(%q): parent was created, want no side effect", name)
		}
	})
	config.run(t, group, "MkdirAll", func(t *testing.T) {
		name := filepath.Join(root, "a", "b", "c")
		if err := s.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", name, err)
		}
		for _, p := range []string{filepath.Join(root, "a"), filepath.Join(root, "a", "b"), name} {
			info, err := s.Stat(p)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", p, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", p)
			}
		}
		if err := s.MkdirAll(name, 0o755); err != nil {
			t.Errorf("MkdirAll(%q) on existing directory: got error %v, want nil", name, err)
		}
	})
}
