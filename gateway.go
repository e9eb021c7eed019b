package pathlib

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/pathlib/errors"
	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/jmgilman/go/pathlib/internal/pathutil"
	"github.com/rs/zerolog"
)

const (
	defaultFileMode fs.FileMode = 0o644
	defaultDirMode  fs.FileMode = 0o755
)

// Gateway performs file operations for logical Paths. Every operation
// first computes the actual path with ActualPath and then calls exactly
// the storage primitives it needs; paths returned to the caller are always
// logical.
//
// Example usage:
//
//	g := pathlib.NewGateway(billy.NewLocal())
//	cfg := pathlib.New("~/.config/app/config.yaml")
//	if g.IsFile(cfg) {
//	    text, err := g.ReadText(cfg)
//	    ...
//	}
type Gateway struct {
	storage  core.Storage
	redirect *Redirection
	env      Environment
	logger   zerolog.Logger
}

// NewGateway creates a Gateway over storage.
func NewGateway(storage core.Storage, opts ...Option) *Gateway {
	cfg := newConfig(opts)
	return &Gateway{
		storage:  storage,
		redirect: cfg.redirect,
		env:      cfg.env,
		logger:   cfg.logger,
	}
}

// Storage returns the underlying storage.
func (g *Gateway) Storage() core.Storage {
	return g.storage
}

// Redirection returns the redirection state the gateway consults.
func (g *Gateway) Redirection() *Redirection {
	return g.redirect
}

// Environment returns the gateway's environment.
func (g *Gateway) Environment() Environment {
	return g.env
}

// ActualPath returns the string handed to storage for p. A leading "~" is
// expanded when auto-expansion is on, separators become the host's, and
// when a sandbox is active the result is rebased under the sandbox root.
// Rebasing applies to absolute and relative paths alike and cleans the
// remainder, so no logical path reaches outside the sandbox.
func (g *Gateway) ActualPath(p Path) string {
	state := g.redirect.snapshot()
	s := p.raw
	if state.expand && hasTilde(s) {
		if home, err := g.env.HomeDir(); err == nil {
			s = pathutil.ExpandTilde(s, home)
		} else {
			g.logger.Debug().Err(err).Str("path", p.raw).Msg("tilde left unexpanded")
		}
	}
	s = pathutil.ToHost(s)
	if state.root == "" {
		return s
	}
	return pathutil.Rebase(state.root, s)
}

// Exists reports whether p exists. Errors read as false.
func (g *Gateway) Exists(p Path) bool {
	ok, err := g.storage.Exists(g.ActualPath(p))
	return err == nil && ok
}

// IsFile reports whether p is a regular file.
func (g *Gateway) IsFile(p Path) bool {
	return g.isFile(g.ActualPath(p))
}

// IsDir reports whether p is a directory.
func (g *Gateway) IsDir(p Path) bool {
	return g.isDir(g.ActualPath(p))
}

func (g *Gateway) isFile(actual string) bool {
	info, err := g.storage.Stat(actual)
	return err == nil && info.Mode().IsRegular()
}

func (g *Gateway) isDir(actual string) bool {
	info, err := g.storage.Stat(actual)
	return err == nil && info.IsDir()
}

// ReadText returns the content of the file at p.
// It fails with CodeNotAFile when p is missing or not a regular file, and
// with CodeIO when the read itself fails.
func (g *Gateway) ReadText(p Path) (string, error) {
	data, err := g.ReadBytes(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBytes is ReadText without the string conversion.
func (g *Gateway) ReadBytes(p Path) ([]byte, error) {
	actual := g.ActualPath(p)
	if !g.isFile(actual) {
		return nil, withActual(errors.ForPath(errors.CodeNotAFile, "read", p.raw, "not a regular file"), actual)
	}
	data, err := g.storage.ReadFile(actual)
	if err != nil {
		return nil, withActual(errors.WrapPath(err, errors.CodeIO, "read", p.raw, "read failed"), actual)
	}
	return data, nil
}

// WriteText writes content to p, replacing anything already there.
// Missing parent directories are created first. Failures are CodeIO.
func (g *Gateway) WriteText(p Path, content string) error {
	return g.WriteBytes(p, []byte(content))
}

// WriteBytes is WriteText for raw bytes.
func (g *Gateway) WriteBytes(p Path, data []byte) error {
	actual := g.ActualPath(p)
	if err := g.storage.MkdirAll(filepath.Dir(actual), defaultDirMode); err != nil {
		return withActual(errors.WrapPath(err, errors.CodeIO, "write", p.raw, "creating parent directories failed"), actual)
	}
	if err := g.storage.WriteFile(actual, data, defaultFileMode); err != nil {
		return withActual(errors.WrapPath(err, errors.CodeIO, "write", p.raw, "write failed"), actual)
	}
	return nil
}

// Mkdir creates the directory p. An existing directory is a no-op.
//
// Errors:
//   - CodeAlreadyExists when a non-directory occupies p
//   - CodeMissingParent when parents is false and the parent is absent
//   - CodeIO when the storage primitive fails
//
// mode is advisory; storage without a permission model ignores it.
func (g *Gateway) Mkdir(p Path, parents bool, mode fs.FileMode) error {
	actual := g.ActualPath(p)
	if info, err := g.storage.Stat(actual); err == nil {
		if info.IsDir() {
			return nil
		}
		return withActual(errors.ForPath(errors.CodeAlreadyExists, "mkdir", p.raw, "path exists and is not a directory"), actual)
	}

	if parents {
		if err := g.storage.MkdirAll(actual, mode); err != nil {
			return withActual(errors.WrapPath(err, errors.CodeIO, "mkdir", p.raw, "mkdir failed"), actual)
		}
		return nil
	}

	err := g.storage.Mkdir(actual, mode)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return withActual(errors.WrapPath(err, errors.CodeMissingParent, "mkdir", p.raw, "parent directory does not exist"), actual)
	case errors.Is(err, fs.ErrExist) && g.isDir(actual):
		return nil
	default:
		return withActual(errors.WrapPath(err, errors.CodeIO, "mkdir", p.raw, "mkdir failed"), actual)
	}
}

// IterDir lists the directory p. Each entry is p joined with the entry's
// name; order is whatever storage yields. It fails with CodeNotADirectory
// when p is not a directory.
func (g *Gateway) IterDir(p Path) ([]Path, error) {
	actual := g.ActualPath(p)
	if !g.isDir(actual) {
		return nil, withActual(errors.ForPath(errors.CodeNotADirectory, "iterdir", p.raw, "not a directory"), actual)
	}
	entries, err := g.storage.ReadDir(actual)
	if err != nil {
		return nil, withActual(errors.WrapPath(err, errors.CodeIO, "iterdir", p.raw, "listing failed"), actual)
	}
	out := make([]Path, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); name != "." && name != ".." {
			out = append(out, p.Join(name))
		}
	}
	return out, nil
}

// Glob matches pattern without recursing, using path/filepath.Match
// syntax. Only entry names are matched; metacharacters in p itself are
// literal.
//
// When p is a directory the pattern (default "*") is matched against its
// entries. Otherwise it is matched in p's parent directory, and an empty
// pattern yields p alone if it exists. Results are logical paths, bare
// names when p has no directory part; no match gives an empty slice. A
// malformed pattern fails with CodeInvalidPattern.
func (g *Gateway) Glob(p Path, pattern string) ([]Path, error) {
	actual := g.ActualPath(p)
	dir, dirActual := p, actual
	bare := p.raw == "."
	switch {
	case g.isDir(actual):
		if pattern == "" {
			pattern = "*"
		}
	case pattern == "":
		if p.Name() == "" || !g.Exists(p) {
			return []Path{}, nil
		}
		return []Path{p}, nil
	default:
		dir, dirActual = p.Parent(), filepath.Dir(actual)
		bare = p.Anchor() == "" && !strings.ContainsAny(p.raw, `/\`)
	}

	matches, err := g.storage.Glob(dirActual, pattern)
	if err != nil {
		code := errors.CodeIO
		if errors.Is(err, filepath.ErrBadPattern) {
			code = errors.CodeInvalidPattern
		}
		return nil, errors.WithContext(errors.WrapPath(err, code, "glob", p.raw, "glob failed"), "pattern", pattern)
	}

	out := make([]Path, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(dirActual, m)
		if err != nil {
			rel = filepath.Base(m)
		}
		if bare {
			out = append(out, New(rel))
			continue
		}
		out = append(out, dir.Join(rel))
	}
	return out, nil
}

// Resolve returns the canonical logical form of p.
//
// When p exists, storage canonicalizes its actual path and the sandbox
// root is stripped from the result; if canonicalization fails p is
// returned unchanged. When p does not exist the result is p.Normalize().
// Only the existence check can fail (CodeIO).
func (g *Gateway) Resolve(p Path) (Path, error) {
	actual := g.ActualPath(p)
	ok, err := g.storage.Exists(actual)
	if err != nil {
		return p, withActual(errors.WrapPath(err, errors.CodeIO, "resolve", p.raw, "existence check failed"), actual)
	}
	if !ok {
		return p.Normalize(), nil
	}

	real, err := g.storage.Canonicalize(actual)
	if err != nil {
		g.logger.Debug().Err(err).Str("path", p.raw).Msg("canonicalize failed, keeping logical path")
		return p, nil
	}

	state := g.redirect.snapshot()
	if state.root == "" {
		return New(real), nil
	}
	for _, root := range []string{state.canonical, state.root} {
		if logical, ok := pathutil.Unbase(root, real); ok {
			return New(logical), nil
		}
	}
	return New(real), nil
}

// Remove deletes the file or empty directory at p. Failures are CodeIO.
func (g *Gateway) Remove(p Path) error {
	actual := g.ActualPath(p)
	if err := g.storage.Remove(actual); err != nil {
		return withActual(errors.WrapPath(err, errors.CodeIO, "remove", p.raw, "remove failed"), actual)
	}
	return nil
}

func withActual(err errors.Error, actual string) error {
	return errors.WithContext(err, "actual", actual)
}
