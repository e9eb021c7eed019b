package pathlib

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/jmgilman/go/pathlib/errors"
	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/jmgilman/go/pathlib/internal/pathutil"
)

const (
	sandboxDirMode fs.FileMode = 0o700
	permissiveMode fs.FileMode = 0o700
)

// Sandbox is the handle returned by BeginSandbox. While it is active every
// path the gateway touches lives under Root.
//
// Close ends the sandbox. It runs once however often it is called, so it
// is safe to both defer it and call it explicitly.
type Sandbox struct {
	g    *Gateway
	root string

	once sync.Once
	err  error
}

// BeginSandbox creates <TempDir>/<prefix><token> and redirects the gateway
// into it.
//
// Only one sandbox may be active per Redirection: a second call before the
// first ends fails with CodeSandboxActive. Failing to create the directory
// is CodeSandboxSetup.
func (g *Gateway) BeginSandbox(prefix string) (*Sandbox, error) {
	if active, ok := g.redirect.SandboxRoot(); ok {
		return nil, errors.WithContext(
			errors.ForPath(errors.CodeSandboxActive, "begin sandbox", prefix, "a sandbox is already active"),
			"active", active,
		)
	}

	tempRoot := g.env.TempDir()
	if err := g.storage.MkdirAll(tempRoot, defaultDirMode); err != nil {
		return nil, errors.WrapPath(err, errors.CodeSandboxSetup, "begin sandbox", tempRoot, "temporary root unavailable")
	}

	root := filepath.Join(tempRoot, prefix+g.env.UniqueToken())
	if err := g.storage.Mkdir(root, sandboxDirMode); err != nil {
		return nil, errors.WrapPath(err, errors.CodeSandboxSetup, "begin sandbox", root, "creating sandbox directory failed")
	}
	if !g.isDir(root) {
		return nil, errors.ForPath(errors.CodeSandboxSetup, "begin sandbox", root, "sandbox root is not a directory")
	}

	canonical, err := g.storage.Canonicalize(root)
	if err != nil {
		canonical = root
	}
	if err := g.redirect.activate(root, canonical); err != nil {
		_ = g.storage.Remove(root)
		return nil, err
	}

	g.logger.Debug().Str("root", root).Msg("sandbox started")
	return &Sandbox{g: g, root: root}, nil
}

// EndSandbox deactivates the active sandbox and deletes its directory
// tree. The redirection is cleared before deletion starts, so it never
// points at a half-deleted directory. Without an active sandbox it does
// nothing.
//
// Deletion is best effort: an entry that cannot be removed has its own
// and its parent's permissions opened up and is retried once. Entries
// that still fail are reported together as CodeIO.
func (g *Gateway) EndSandbox() error {
	root := g.redirect.clear()
	if root == "" {
		return nil
	}
	return g.teardown(root)
}

// WithSandbox runs fn inside a fresh sandbox and ends it on every return
// path, including panics. The error from fn takes precedence; a teardown
// failure is joined to it.
func (g *Gateway) WithSandbox(prefix string, fn func(*Sandbox) error) (err error) {
	sb, err := g.BeginSandbox(prefix)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, sb.Close())
	}()
	return fn(sb)
}

// Root returns the actual directory backing the sandbox.
func (s *Sandbox) Root() string {
	return s.root
}

// Gateway returns the gateway the sandbox redirects.
func (s *Sandbox) Gateway() *Gateway {
	return s.g
}

// Close ends the sandbox. Calls after the first return the first result.
// If the gateway already moved on to another sandbox, only this sandbox's
// directory is deleted; the redirection is left alone.
func (s *Sandbox) Close() error {
	s.once.Do(func() {
		if !s.g.redirect.clearIf(s.root) {
			if ok, _ := s.g.storage.Exists(s.root); !ok {
				return
			}
		}
		s.err = s.g.teardown(s.root)
	})
	return s.err
}

// Seed copies the tree below srcRoot in src into the sandbox at the
// logical path dst, e.g. fixtures from an embed.FS.
func (s *Sandbox) Seed(src fs.FS, srcRoot string, dst Path) error {
	actual := pathutil.Rebase(s.root, pathutil.ToHost(dst.raw))
	if err := core.Seed(src, s.g.storage, srcRoot, actual); err != nil {
		return errors.WithContext(errors.WrapPath(err, errors.CodeIO, "seed", dst.raw, "seeding sandbox failed"), "actual", actual)
	}
	return nil
}

func (g *Gateway) teardown(root string) error {
	errs := g.removeTree(root)
	if len(errs) == 0 {
		g.logger.Debug().Str("root", root).Msg("sandbox removed")
		return nil
	}
	return errors.WithContext(
		errors.WrapPath(errors.Join(errs...), errors.CodeIO, "end sandbox", root, "sandbox not fully removed"),
		"failures", len(errs),
	)
}

// removeTree deletes dir bottom-up and returns one error per entry it
// could not remove.
func (g *Gateway) removeTree(dir string) []error {
	entries, err := g.storage.ReadDir(dir)
	if err != nil {
		_ = g.storage.Chmod(dir, permissiveMode)
		if entries, err = g.storage.ReadDir(dir); err != nil {
			g.logger.Warn().Err(err).Str("path", dir).Msg("sandbox directory unreadable")
			return []error{err}
		}
	}

	var errs []error
	for _, e := range entries {
		child := filepath.Join(dir, e.Name())
		if e.IsDir() {
			errs = append(errs, g.removeTree(child)...)
			continue
		}
		if err := g.removeEntry(child); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if err := g.removeEntry(dir); err != nil {
		return []error{err}
	}
	return nil
}

func (g *Gateway) removeEntry(name string) error {
	if err := g.storage.Remove(name); err == nil {
		return nil
	}
	_ = g.storage.Chmod(filepath.Dir(name), permissiveMode)
	_ = g.storage.Chmod(name, permissiveMode)
	if err := g.storage.Remove(name); err != nil {
		g.logger.Warn().Err(err).Str("path", name).Msg("sandbox entry not removed")
		return err
	}
	return nil
}
