// Package fstest provides a conformance test suite for validating storage
// provider implementations against the core.Storage interface contracts.
//
// This package contains test functions that can be imported and executed by
// storage provider packages to verify they honor the primitives the path
// gateway relies on: single-level Mkdir, empty-only Remove, non-recursive
// Glob and Canonicalize.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.Storage {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
)

// StorageTestConfig configures the test suite to match storage behavior characteristics.
type StorageTestConfig struct {
	// Root returns a fresh, empty, writable directory on s. Every test
	// group works beneath the directory it returns.
	Root func(t *testing.T, s core.Storage) string

	// PermissionModel indicates Chmod changes observable permission bits.
	// When false, Chmod may return core.ErrUnsupported.
	PermissionModel bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group" or "Group/SubTest" (e.g., "ManageStorage/Chmod").
	SkipTests []string
}

// LocalTestConfig returns configuration for disk-backed storage.
// Tests run inside t.TempDir().
func LocalTestConfig() StorageTestConfig {
	return StorageTestConfig{
		Root: func(t *testing.T, _ core.Storage) string {
			return t.TempDir()
		},
		PermissionModel: true,
	}
}

// MemoryTestConfig returns configuration for in-memory storage.
// Tests run inside a directory created on the storage itself.
func MemoryTestConfig() StorageTestConfig {
	return StorageTestConfig{
		Root: func(t *testing.T, s core.Storage) string {
			root := filepath.Join(string(filepath.Separator), "fstest")
			if err := s.MkdirAll(root, 0o755); err != nil {
				t.Fatalf("MkdirAll(%q): setup failed: %v", root, err)
			}
			return root
		},
	}
}

// TestSuite runs all conformance tests against a storage.
// The newStorage function should return a fresh storage for each group.
// Uses MemoryTestConfig() by default.
func TestSuite(t *testing.T, newStorage func() core.Storage) {
	TestSuiteWithConfig(t, newStorage, MemoryTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newStorage func() core.Storage, config StorageTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.Storage, StorageTestConfig)
	}{
		{"ReadStorage", TestReadStorageWithConfig},
		{"WriteStorage", TestWriteStorageWithConfig},
		{"ManageStorage", TestManageStorageWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newStorage(), config)
		})
	}
}

func (c StorageTestConfig) shouldSkip(name string) bool {
	return slices.Contains(c.SkipTests, name)
}

// run executes a subtest unless it is listed in SkipTests.
func (c StorageTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if c.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}
