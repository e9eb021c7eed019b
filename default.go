package pathlib

import (
	"io/fs"
	"sync"

	"github.com/jmgilman/go/pathlib/fs/billy"
)

var (
	defaultMu      sync.RWMutex
	defaultGateway *Gateway
)

// Default returns the process-wide gateway used by the package-level
// functions and by Path.ExpandUser and Path.Resolve. Unless replaced with
// SetDefault it is a gateway over local disk storage.
func Default() *Gateway {
	defaultMu.RLock()
	g := defaultGateway
	defaultMu.RUnlock()
	if g != nil {
		return g
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGateway == nil {
		defaultGateway = NewGateway(billy.NewLocal())
	}
	return defaultGateway
}

// SetDefault replaces the process-wide gateway and returns the previous
// one. Passing nil restores the local-disk default on next use.
func SetDefault(g *Gateway) *Gateway {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultGateway
	defaultGateway = g
	return prev
}

// Exists calls Default().Exists.
func Exists(p Path) bool { return Default().Exists(p) }

// IsFile calls Default().IsFile.
func IsFile(p Path) bool { return Default().IsFile(p) }

// IsDir calls Default().IsDir.
func IsDir(p Path) bool { return Default().IsDir(p) }

// ReadText calls Default().ReadText.
func ReadText(p Path) (string, error) { return Default().ReadText(p) }

// WriteText calls Default().WriteText.
func WriteText(p Path, content string) error { return Default().WriteText(p, content) }

// Mkdir calls Default().Mkdir.
func Mkdir(p Path, parents bool, mode fs.FileMode) error { return Default().Mkdir(p, parents, mode) }

// IterDir calls Default().IterDir.
func IterDir(p Path) ([]Path, error) { return Default().IterDir(p) }

// Glob calls Default().Glob.
func Glob(p Path, pattern string) ([]Path, error) { return Default().Glob(p, pattern) }

// BeginSandbox calls Default().BeginSandbox.
func BeginSandbox(prefix string) (*Sandbox, error) { return Default().BeginSandbox(prefix) }

// EndSandbox calls Default().EndSandbox.
func EndSandbox() error { return Default().EndSandbox() }

// WithSandbox calls Default().WithSandbox.
func WithSandbox(prefix string, fn func(*Sandbox) error) error {
	return Default().WithSandbox(prefix, fn)
}
