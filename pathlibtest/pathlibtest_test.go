package pathlibtest

import (
	"testing"

	"github.com/jmgilman/go/pathlib"
	"github.com/jmgilman/go/pathlib/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "TestX_sub_case-", prefix("TestX/sub case"))
	assert.Equal(t, "-", prefix(""))
}

func TestMemoryGateway(t *testing.T) {
	var root string
	t.Run("inner", func(t *testing.T) {
		g, sb := MemoryGateway(t)
		root = sb.Root()
		assert.Contains(t, root, "TestMemoryGateway_inner-")

		require.NoError(t, g.WriteText(pathlib.New("/etc/hosts"), "127.0.0.1 localhost"))
		active, ok := g.Redirection().SandboxRoot()
		require.True(t, ok)
		assert.Equal(t, root, active)
	})
	assert.NotEmpty(t, root)
}

func TestSandbox_EndsOnCleanup(t *testing.T) {
	g := pathlib.NewGateway(billy.NewMemory(), pathlib.WithEnvironment(&pathlib.StaticEnvironment{Temp: "/tmp"}))
	var root string
	t.Run("scoped", func(t *testing.T) {
		root = Sandbox(t, g).Root()
		assert.True(t, g.Exists(pathlib.New("/")))
	})

	_, active := g.Redirection().SandboxRoot()
	assert.False(t, active)
	ok, err := g.Storage().Exists(root)
	require.NoError(t, err)
	assert.False(t, ok)
}
