package pathlib

import (
	"strings"

	"github.com/jmgilman/go/pathlib/errors"
	"github.com/jmgilman/go/pathlib/internal/pathutil"
)

// Path is an immutable logical path. It wraps the string exactly as it was
// built; every method returns a new value and none of them touch storage
// except Resolve.
//
// Both '/' and '\' separate segments. A Windows drive ("C:") or UNC share
// ("\\server\share") prefix forms the anchor and is never a segment name.
//
// Two Paths compare equal with == when their strings are equal. Compare
// Normalize() (or Resolve()) results for lexical equivalence.
type Path struct {
	raw string
}

// New returns the Path for s. It never fails.
func New(s string) Path {
	return Path{raw: s}
}

// String returns the logical path exactly as constructed.
func (p Path) String() string {
	return p.raw
}

// Parts returns the segments of p. A drive is one leading part; a UNC
// prefix contributes server and share. A POSIX root is not a part, so "/"
// has no parts. "." and ".." are kept.
//
//	New(`C:\Users\me\file.txt`).Parts() // ["C:" "Users" "me" "file.txt"]
//	New(`\\server\share\dir`).Parts()   // ["server" "share" "dir"]
func (p Path) Parts() []string {
	return pathutil.Parts(p.raw)
}

// Name returns the final segment, ignoring trailing separators. Paths that
// are only an anchor (or empty) have no name.
func (p Path) Name() string {
	start, end, ok := pathutil.LastSegment(p.raw)
	if !ok {
		return ""
	}
	return p.raw[start:end]
}

// Stem returns Name without its suffix.
func (p Path) Stem() string {
	stem, _ := pathutil.SplitName(p.Name())
	return stem
}

// Suffix returns the part of Name after its last dot, without the dot.
// Dotfiles such as ".gitignore" have no suffix.
func (p Path) Suffix() string {
	_, suffix := pathutil.SplitName(p.Name())
	return suffix
}

// WithSuffix replaces the suffix. A leading dot in suffix is ignored and an
// empty suffix removes it. A path without a name, or named "." or "..",
// is returned unchanged.
func (p Path) WithSuffix(suffix string) Path {
	name := p.Name()
	if name == "" || name == "." || name == ".." {
		return p
	}
	stem, _ := pathutil.SplitName(name)
	if suffix = strings.TrimPrefix(suffix, "."); suffix != "" {
		stem += "." + suffix
	}
	return p.WithName(stem)
}

// WithName replaces the final segment. Everything before it is kept byte
// for byte; trailing separators are dropped. A path without a final
// segment gets name appended.
func (p Path) WithName(name string) Path {
	start, _, ok := pathutil.LastSegment(p.raw)
	if !ok {
		return p.Join(name)
	}
	return Path{raw: p.raw[:start] + name}
}

// Parent returns p without its final segment. The parent of an anchor is
// the anchor itself ("/", `C:\`, `\\srv\share`, and "C:" for a
// drive-relative path); the parent of a bare name or the empty path is ".".
func (p Path) Parent() Path {
	start, _, ok := pathutil.LastSegment(p.raw)
	if !ok {
		if anchor := pathutil.Anchor(p.raw); anchor != "" {
			return Path{raw: anchor}
		}
		return Path{raw: "."}
	}
	head := pathutil.TrimTrailing(p.raw[:start])
	if head == "" {
		return Path{raw: "."}
	}
	return Path{raw: head}
}

// Join appends segments with exactly one separator at each boundary,
// whatever separators the caller put around them. The separator is '\'
// when p uses backslashes only, '/' otherwise. Empty segments are skipped.
func (p Path) Join(segments ...string) Path {
	return Path{raw: pathutil.Join(p.raw, segments...)}
}

// IsAbs reports whether p is POSIX-rooted, drive-rooted or UNC.
// A drive-relative path such as "C:foo" is not absolute.
func (p Path) IsAbs() bool {
	return pathutil.IsAbs(p.raw)
}

// Drive returns the drive ("C:") or UNC share (`\\server\share`) of p.
func (p Path) Drive() string {
	drive, _, _ := pathutil.SplitAnchor(p.raw)
	return drive
}

// Anchor returns drive and root together, e.g. `C:\` or "/".
func (p Path) Anchor() string {
	return pathutil.Anchor(p.raw)
}

// ExpandUser replaces a leading "~" with the home directory reported by
// the default gateway's Environment. Only "~" alone or followed by a
// separator is expanded; "~user" forms are returned unchanged.
func (p Path) ExpandUser() (Path, error) {
	if !hasTilde(p.raw) {
		return p, nil
	}
	home, err := Default().env.HomeDir()
	if err != nil {
		return p, errors.WrapPath(err, errors.CodeNotFound, "expand user", p.raw, "home directory lookup failed")
	}
	return p.ExpandUserWith(home), nil
}

// ExpandUserWith is ExpandUser with an explicit home directory.
func (p Path) ExpandUserWith(home string) Path {
	return Path{raw: pathutil.ExpandTilde(p.raw, home)}
}

// Normalize rewrites p lexically without consulting storage. "." segments
// are dropped and ".." pops the previous segment. ".." at an absolute
// root is discarded, leading ".." on a relative path is kept, and an
// empty relative result becomes ".".
//
//	New("/a/b/../c/./d").Normalize() // "/a/c/d"
//	New("/../x").Normalize()         // "/x"
func (p Path) Normalize() Path {
	return Path{raw: pathutil.Normalize(p.raw)}
}

// Resolve resolves p through the default gateway. See Gateway.Resolve.
func (p Path) Resolve() (Path, error) {
	return Default().Resolve(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	p.raw = string(text)
	return nil
}

func hasTilde(s string) bool {
	return s == "~" || (len(s) > 1 && s[0] == '~' && pathutil.IsSep(s[1]))
}
