package fstest

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
)

// TestReadStorage tests read-only primitives: Stat, Exists, ReadFile,
// ReadDir, Glob and Canonicalize.
// Uses MemoryTestConfig() by default.
func TestReadStorage(t *testing.T, s core.Storage) {
	TestReadStorageWithConfig(t, s, MemoryTestConfig())
}

// TestReadStorageWithConfig tests read-only primitives with behavior configuration.
func TestReadStorageWithConfig(t *testing.T, s core.Storage, config StorageTestConfig) {
	root := config.Root(t, s)
	content := []byte("test file content")

	// Setup: root/testdir/{test1.txt,test2.txt,other.log,sub/}
	dir := filepath.Join(root, "testdir")
	if err := s.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	for _, name := range []string{"test1.txt", "test2.txt", "other.log"} {
		if err := s.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	const group = "ReadStorage"
	config.run(t, group, "StatFile", func(t *testing.T) {
		name := filepath.Join(dir, "test1.txt")
		info, err := s.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", name)
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", name, info.Size(), len(content))
		}
	})
	config.run(t, group, "StatDir", func(t *testing.T) {
		info, err := s.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})
	config.run(t, group, "Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			filepath.Join(dir, "test1.txt"): true,
			dir:                             true,
			filepath.Join(dir, "missing"):   false,
		} {
			got, err := s.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q) = %v, want %v", name, got, want)
			}
		}
	})
	config.run(t, group, "ReadFile", func(t *testing.T) {
		name := filepath.Join(dir, "test2.txt")
		got, err := s.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("ReadFile(%q) = %q, want %q", name, got, content)
		}
	})
	config.run(t, group, "ReadFileNotExist", func(t *testing.T) {
		name := filepath.Join(dir, "missing.txt")
		if _, err := s.ReadFile(name); err == nil {
			t.Errorf("ReadFile(%q): got nil error, want error", name)
		}
	})
	config.run(t, group, "ReadDir", func(t *testing.T) {
		entries, err := s.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", dir, err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
			if e.Name() == "sub" && !e.IsDir() {
				t.Errorf("ReadDir(%q): entry %q IsDir() = false, want true", dir, e.Name())
			}
		}
		slices.Sort(names)
		want := []string{"other.log", "sub", "test1.txt", "test2.txt"}
		if !slices.Equal(names, want) {
			t.Errorf("ReadDir(%q) = %v, want %v", dir, names, want)
		}
	})
	config.run(t, group, "Glob", func(t *testing.T) {
		matches, err := s.Glob(dir, "*.txt")
		if err != nil {
			t.Fatalf("Glob(%q, %q): got error %v, want nil", dir, "*.txt", err)
		}
		slices.Sort(matches)
		want := []string{filepath.Join(dir, "test1.txt"), filepath.Join(dir, "test2.txt")}
		if !sameBaseNames(matches, want) {
			t.Errorf("Glob(%q, %q) = %v, want %v", dir, "*.txt", matches, want)
		}
	})
	config.run(t, group, "GlobNoMatch", func(t *testing.T) {
		matches, err := s.Glob(dir, "*.md")
		if err != nil {
			t.Fatalf("Glob(%q, %q): got error %v, want nil", dir, "*.md", err)
		}
		if len(matches) != 0 {
			t.Errorf("Glob(%q, %q) = %v, want no matches", dir, "*.md", matches)
		}
	})
	config.run(t, group, "GlobBadPattern", func(t *testing.T) {
		_, err := s.Glob(dir, "[")
		if !errors.Is(err, filepath.ErrBadPattern) {
			t.Errorf("Glob(%q, %q): got error %v, want %v", dir, "[", err, filepath.ErrBadPattern)
		}
	})
	config.run(t, group, "GlobBracketedDir", func(t *testing.T) {
		bracketed := filepath.Join(root, "data[1]")
		if err := s.MkdirAll(bracketed, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", bracketed, err)
		}
		for _, name := range []string{"a.txt", "b.log"} {
			if err := s.WriteFile(filepath.Join(bracketed, name), content, 0o644); err != nil {
				t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
			}
		}
		matches, err := s.Glob(bracketed, "*.txt")
		if err != nil {
			t.Fatalf("Glob(%q, %q): got error %v, want nil", bracketed, "*.txt", err)
		}
		want := []string{filepath.Join(bracketed, "a.txt")}
		if !sameBaseNames(matches, want) {
			t.Errorf("Glob(%q, %q) = %v, want %v", bracketed, "*.txt", matches, want)
		}
	})
	config.run(t, group, "Canonicalize", func(t *testing.T) {
		name := filepath.Join(dir, "sub", "..", "test1.txt")
		got, err := s.Canonicalize(name)
		if err != nil {
			t.Fatalf("Canonicalize(%q): got error %v, want nil", name, err)
		}
		if filepath.Base(got) != "test1.txt" || !filepath.IsAbs(got) {
			t.Errorf("Canonicalize(%q) = %q, want absolute path ending in test1.txt", name, got)
		}
		again, err := s.Canonicalize(got)
		if err != nil {
			t.Fatalf("Canonicalize(%q): got error %v, want nil", got, err)
		}
		if again != got {
			t.Errorf("Canonicalize(%q) = %q, want idempotent result", got, again)
		}
	})
	config.run(t, group, "CanonicalizeNotExist", func(t *testing.T) {
		name := filepath.Join(dir, "missing")
		if _, err := s.Canonicalize(name); err == nil {
			t.Errorf("Canonicalize(%q): got nil error, want error", name)
		}
	})
}

// sameBaseNames compares two sorted path lists by their final element.
// Canonical temp roots may differ from the names the test built (e.g. a
// symlinked /tmp), so only the matched entries are compared.
func sameBaseNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if filepath.Base(got[i]) != filepath.Base(want[i]) {
			return false
		}
	}
	return true
}
