package fstest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
)

// TestManageStorage tests management primitives: Remove, Chmod.
// Uses MemoryTestConfig() by default.
func TestManageStorage(t *testing.T, s core.Storage) {
	TestManageStorageWithConfig(t, s, MemoryTestConfig())
}

// TestManageStorageWithConfig tests management primitives with behavior configuration.
func TestManageStorageWithConfig(t *testing.T, s core.Storage, config StorageTestConfig) {
	root := config.Root(t, s)

	const group = "ManageStorage"
	config.run(t, group, "RemoveFile", func(t *testing.T) {
		name := filepath.Join(root, "remove.txt")
		if err := s.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
		if err := s.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if ok, _ := s.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove = true, want false", name)
		}
	})
	config.run(t, group, "RemoveEmptyDir", func(t *testing.T) {
		name := filepath.Join(root, "emptydir")
		if err := s.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", name, err)
		}
		if err := s.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if ok, _ := s.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove = true, want false", name)
		}
	})
	config.run(t, group, "RemoveNonEmptyDir", func(t *testing.T) {
		name := filepath.Join(root, "full")
		child := filepath.Join(name, "child.txt")
		if err := s.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", name, err)
		}
		if err := s.WriteFile(child, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", child, err)
		}
		if err := s.Remove(name); err == nil {
			t.Errorf("Remove(%q) on non-empty directory: got nil error, want error", name)
		}
		if ok, _ := s.Exists(child); !ok {
			t.Errorf("Exists(%q) after failed Remove = false, want true", child)
		}
	})
	config.run(t, group, "RemoveNotExist", func(t *testing.T) {
		name := filepath.Join(root, "never")
		if err := s.Remove(name); err == nil {
			t.Errorf("Remove(%q): got nil error, want error", name)
		}
	})
	config.run(t, group, "Chmod", func(t *testing.T) {
		name := filepath.Join(root, "mode.txt")
		if err := s.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
		err := s.Chmod(name, 0o600)
		if !config.PermissionModel {
			if err != nil && !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chmod(%q): got error %v, want nil or %v", name, err, core.ErrUnsupported)
			}
			return
		}
		if err != nil {
			t.Fatalf("Chmod(%q): got error %v, want nil", name, err)
		}
		info, err := s.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if got := info.Mode().Perm(); got != 0o600 {
			t.Errorf("Stat(%q): Mode().Perm() = %o, want %o", name, got, 0o600)
		}
	})
}
