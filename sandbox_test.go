package pathlib

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/pathlib/errors"
	"github.com/jmgilman/go/pathlib/fs/afero"
	"github.com/jmgilman/go/pathlib/fs/billy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLocalGateway returns a gateway over local disk whose temporary root
// is a per-test directory.
func newLocalGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(billy.NewLocal(), WithEnvironment(&StaticEnvironment{Temp: t.TempDir()}))
}

func TestSandbox_Containment(t *testing.T) {
	g := newLocalGateway(t)
	sb, err := g.BeginSandbox("contain-")
	require.NoError(t, err)
	defer sb.Close()

	logical := New("/etc/pathlib-sandbox-test/app.conf")
	require.NoError(t, g.WriteText(logical, "contained"))
	assert.True(t, g.Exists(logical))

	real := filepath.Join(sb.Root(), "etc", "pathlib-sandbox-test", "app.conf")
	data, err := os.ReadFile(real)
	require.NoError(t, err, "file must exist under the sandbox root")
	assert.Equal(t, "contained", string(data))

	_, err = os.Stat(filepath.FromSlash("/etc/pathlib-sandbox-test"))
	assert.True(t, os.IsNotExist(err), "nothing may be written outside the sandbox")

	resolved, err := g.Resolve(logical)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash(logical.String()), resolved.String())
}

func TestSandbox_Isolation(t *testing.T) {
	g := newLocalGateway(t)
	p := New("/shared/state.txt")

	first, err := g.BeginSandbox("iso-")
	require.NoError(t, err)
	require.NoError(t, g.WriteText(p, "first"))
	firstRoot := first.Root()
	require.NoError(t, first.Close())

	_, err = os.Stat(firstRoot)
	assert.True(t, os.IsNotExist(err), "sandbox directory must be deleted")

	second, err := g.BeginSandbox("iso-")
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, firstRoot, second.Root())
	assert.False(t, g.Exists(p))
}

func TestSandbox_ResultsAreLogical(t *testing.T) {
	g := newLocalGateway(t)
	sb, err := g.BeginSandbox("logical-")
	require.NoError(t, err)
	defer sb.Close()

	for _, name := range []string{"test1.txt", "test2.txt", "other.log"} {
		require.NoError(t, g.WriteText(New("/data").Join(name), "x"))
	}

	matches, err := g.Glob(New("/data"), "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/test1.txt", "/data/test2.txt"}, sortedStrings(matches))

	entries, err := g.IterDir(New("/data"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/other.log", "/data/test1.txt", "/data/test2.txt"}, sortedStrings(entries))
}

func TestSandbox_GlobWithPatternPrefix(t *testing.T) {
	for name, g := range map[string]*Gateway{
		"memory": newMemoryGateway(t),
		"local":  newLocalGateway(t),
	} {
		t.Run(name, func(t *testing.T) {
			sb, err := g.BeginSandbox("t[x]-")
			require.NoError(t, err)
			defer sb.Close()

			for _, f := range []string{"test1.txt", "test2.txt", "other.log"} {
				require.NoError(t, g.WriteText(New("/data").Join(f), "x"))
			}
			matches, err := g.Glob(New("/data"), "*.txt")
			require.NoError(t, err)
			assert.Equal(t, []string{"/data/test1.txt", "/data/test2.txt"}, sortedStrings(matches))

			matches, err = g.Glob(New("/data/other.log"), "")
			require.NoError(t, err)
			assert.Equal(t, []string{"/data/other.log"}, sortedStrings(matches))
		})
	}
}

func TestSandbox_BeginWhileActive(t *testing.T) {
	g := newMemoryGateway(t)
	sb, err := g.BeginSandbox("one-")
	require.NoError(t, err)
	defer sb.Close()

	_, err = g.BeginSandbox("two-")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeSandboxActive))

	root, ok := g.Redirection().SandboxRoot()
	assert.True(t, ok)
	assert.Equal(t, sb.Root(), root)
}

func TestSandbox_SharedRedirection(t *testing.T) {
	r := NewRedirection()
	a := newMemoryGateway(t, WithRedirection(r))
	b := newMemoryGateway(t, WithRedirection(r))

	sb, err := a.BeginSandbox("shared-")
	require.NoError(t, err)
	defer sb.Close()

	_, err = b.BeginSandbox("shared-")
	assert.True(t, errors.HasCode(err, errors.CodeSandboxActive))
	assert.Equal(t, filepath.Join(sb.Root(), "x"), b.ActualPath(New("/x")))
}

func TestSandbox_CloseIdempotent(t *testing.T) {
	g := newMemoryGateway(t)
	sb, err := g.BeginSandbox("close-")
	require.NoError(t, err)
	require.NoError(t, g.WriteText(New("/a/b/c.txt"), "x"))

	require.NoError(t, sb.Close())
	require.NoError(t, sb.Close())

	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active)
	ok, err := g.Storage().Exists(sb.Root())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSandbox_EndSandbox(t *testing.T) {
	g := newMemoryGateway(t)
	require.NoError(t, g.EndSandbox(), "ending without a sandbox is a no-op")

	sb, err := g.BeginSandbox("end-")
	require.NoError(t, err)
	require.NoError(t, g.EndSandbox())

	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active)
	assert.NoError(t, sb.Close(), "closing an ended sandbox is a no-op")
}

func TestSandbox_StaleGuardLeavesNewSandbox(t *testing.T) {
	g := newMemoryGateway(t)
	old, err := g.BeginSandbox("old-")
	require.NoError(t, err)
	require.NoError(t, g.EndSandbox())

	current, err := g.BeginSandbox("new-")
	require.NoError(t, err)
	defer current.Close()

	require.NoError(t, old.Close())
	root, ok := g.Redirection().SandboxRoot()
	assert.True(t, ok)
	assert.Equal(t, current.Root(), root)
}

func TestSandbox_WithSandbox(t *testing.T) {
	g := newMemoryGateway(t)
	var root string
	err := g.WithSandbox("scoped-", func(sb *Sandbox) error {
		root = sb.Root()
		return g.WriteText(New("/x"), "y")
	})
	require.NoError(t, err)
	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active)
	assert.False(t, g.Exists(New(filepath.ToSlash(root))))

	boom := stderrors.New("boom")
	err = g.WithSandbox("scoped-", func(*Sandbox) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, active = g.Redirection().SandboxRoot()
	assert.False(t, active, "sandbox must end on the error path")
}

func TestSandbox_SetupFailure(t *testing.T) {
	m := delegatingMock(billy.NewMemory())
	m.MkdirFunc = func(string, fs.FileMode) error { return errDisk }
	g := NewGateway(m, WithEnvironment(&StaticEnvironment{Temp: "/tmp"}))

	_, err := g.BeginSandbox("fail-")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeSandboxSetup))
	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active)
}

func TestSandbox_TeardownFailure(t *testing.T) {
	m := delegatingMock(billy.NewMemory())
	g := NewGateway(m, WithEnvironment(&StaticEnvironment{Temp: "/tmp"}))
	sb, err := g.BeginSandbox("stuck-")
	require.NoError(t, err)
	require.NoError(t, g.WriteText(New("/f"), "x"))

	m.RemoveFunc = func(string) error { return errDisk }
	err = sb.Close()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIO))
	assert.ErrorIs(t, err, errDisk)

	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active, "redirection is cleared even when deletion fails")
	// one failed attempt plus one retry
	assert.Len(t, m.RemoveCalls(), 2)
	assert.NotEmpty(t, m.ChmodCalls())
}

func TestSandbox_TeardownForcesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits")
	}
	g := newLocalGateway(t)
	sb, err := g.BeginSandbox("perm-")
	require.NoError(t, err)

	require.NoError(t, g.WriteText(New("/locked/file.txt"), "x"))
	locked := filepath.Join(sb.Root(), "locked")
	require.NoError(t, os.Chmod(locked, 0o500))

	require.NoError(t, sb.Close())
	_, err = os.Stat(sb.Root())
	assert.True(t, os.IsNotExist(err))
}

func TestSandbox_Seed(t *testing.T) {
	g := newMemoryGateway(t)
	sb, err := g.BeginSandbox("seed-")
	require.NoError(t, err)
	defer sb.Close()

	src := fstest.MapFS{
		"fixtures/config.yaml":  {Data: []byte("key: value"), Mode: 0o644},
		"fixtures/nested/a.txt": {Data: []byte("a"), Mode: 0o644},
		"unrelated/ignored.txt": {Data: []byte("no"), Mode: 0o644},
	}
	require.NoError(t, sb.Seed(src, "fixtures", New("/etc/app")))

	text, err := g.ReadText(New("/etc/app/config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "key: value", text)
	assert.True(t, g.IsFile(New("/etc/app/nested/a.txt")))
	assert.False(t, g.Exists(New("/etc/app/ignored.txt")))
}

func TestSandbox_AferoStorage(t *testing.T) {
	g := NewGateway(afero.NewMemory(), WithEnvironment(&StaticEnvironment{Temp: "/tmp"}))
	err := g.WithSandbox("afero-", func(sb *Sandbox) error {
		if err := g.Mkdir(New("/a/b"), false, 0o755); !errors.HasCode(err, errors.CodeMissingParent) {
			t.Errorf("Mkdir without parents: got %v, want %s", err, errors.CodeMissingParent)
		}
		if err := g.WriteText(New("/a/b/c.txt"), "x"); err != nil {
			return err
		}
		matches, err := g.Glob(New("/a/b"), "*.txt")
		if err != nil {
			return err
		}
		assert.Equal(t, []string{"/a/b/c.txt"}, sortedStrings(matches))
		return nil
	})
	require.NoError(t, err)

	ok, err := g.Storage().Exists("/tmp")
	require.NoError(t, err)
	assert.True(t, ok)
	entries, err := g.Storage().ReadDir("/tmp")
	require.NoError(t, err)
	assert.Empty(t, entries, "sandbox directory must be gone")
}

func TestSandbox_Logging(t *testing.T) {
	var buf bytes.Buffer
	g := newMemoryGateway(t, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, g.WithSandbox("log-", func(*Sandbox) error { return nil }))

	out := buf.String()
	assert.Contains(t, out, "sandbox started")
	assert.Contains(t, out, "sandbox removed")
}
