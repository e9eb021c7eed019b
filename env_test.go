package pathlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathlib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEnvironment(t *testing.T) {
	env := &StaticEnvironment{Home: "/home/me", Temp: "/scratch", Tokens: []string{"one", "two"}}

	home, err := env.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/me", home)
	assert.Equal(t, "/scratch", env.TempDir())

	assert.Equal(t, "one", env.UniqueToken())
	assert.Equal(t, "two", env.UniqueToken())
	third, fourth := env.UniqueToken(), env.UniqueToken()
	assert.NotEmpty(t, third)
	assert.NotEqual(t, third, fourth)
}

func TestStaticEnvironment_Defaults(t *testing.T) {
	env := &StaticEnvironment{}

	_, err := env.HomeDir()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.Equal(t, os.TempDir(), env.TempDir())
}

func TestSystemEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	env := SystemEnvironment{}
	got, err := env.HomeDir()
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, os.TempDir(), env.TempDir())

	seen := make(map[string]bool)
	for range 100 {
		token := env.UniqueToken()
		require.False(t, seen[token], "token %q repeated", token)
		seen[token] = true
	}
}

func TestSandbox_UsesEnvironmentToken(t *testing.T) {
	g := newMemoryGateway(t, WithEnvironment(&StaticEnvironment{Temp: "/scratch", Tokens: []string{"fixed"}}))
	sb, err := g.BeginSandbox("tok-")
	require.NoError(t, err)
	defer sb.Close()

	assert.Equal(t, filepath.Join("/scratch", "tok-fixed"), sb.Root())
}
