package core_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/pathlib/fs/billy"
	"github.com/jmgilman/go/pathlib/fs/core"
)

// TestSeed verifies a fixture tree is copied below the destination root.
func TestSeed(t *testing.T) {
	src := fstest.MapFS{
		"fixtures/a.txt":        {Data: []byte("a"), Mode: 0o644},
		"fixtures/nested/b.txt": {Data: []byte("b"), Mode: 0o600},
		"fixtures/empty/.keep":  {Data: nil, Mode: 0o644},
		"elsewhere/ignored.txt": {Data: []byte("x"), Mode: 0o644},
	}
	dst := billy.NewMemory()
	root := filepath.FromSlash("/sandbox")

	if err := core.Seed(src, dst, "fixtures", root); err != nil {
		t.Fatalf("Seed(): got error %v, want nil", err)
	}

	for name, want := range map[string]string{"a.txt": "a", "nested/b.txt": "b"} {
		got, err := dst.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
		}
		if string(got) != want {
			t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
		}
	}

	if ok, _ := dst.Exists(filepath.Join(root, "ignored.txt")); ok {
		t.Error("Seed copied a file outside srcRoot")
	}
	if ok, _ := dst.Exists(filepath.Join(root, "empty")); !ok {
		t.Error("Seed did not create the empty directory")
	}
}
