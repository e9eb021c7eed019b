package pathlib

import (
	"sync"

	"github.com/jmgilman/go/pathlib/errors"
)

// Redirection holds the state that turns logical paths into actual ones:
// the active sandbox root, if any, and the auto-expand-tilde flag.
//
// The zero value has no sandbox and does not expand "~". A Redirection is
// safe for concurrent use.
type Redirection struct {
	mu sync.RWMutex

	// root is the sandbox directory as created; canonical is the same
	// directory as storage canonicalizes it, used to map resolved paths back.
	root      string
	canonical string

	autoExpandTilde bool
}

// NewRedirection returns a Redirection with no active sandbox.
func NewRedirection() *Redirection {
	return &Redirection{}
}

// SandboxRoot returns the active sandbox root.
func (r *Redirection) SandboxRoot() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root, r.root != ""
}

// AutoExpandTilde reports whether a leading "~" is expanded before I/O.
func (r *Redirection) AutoExpandTilde() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.autoExpandTilde
}

// SetAutoExpandTilde toggles tilde expansion for actual paths.
func (r *Redirection) SetAutoExpandTilde(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autoExpandTilde = on
}

type redirectSnapshot struct {
	root      string
	canonical string
	expand    bool
}

func (r *Redirection) snapshot() redirectSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return redirectSnapshot{root: r.root, canonical: r.canonical, expand: r.autoExpandTilde}
}

// activate records root as the sandbox. At most one sandbox is active.
func (r *Redirection) activate(root, canonical string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root != "" {
		return errors.WithContext(
			errors.ForPath(errors.CodeSandboxActive, "begin sandbox", root, "a sandbox is already active"),
			"active", r.root,
		)
	}
	r.root, r.canonical = root, canonical
	return nil
}

// clear deactivates the sandbox and returns the root it pointed at.
func (r *Redirection) clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	root := r.root
	r.root, r.canonical = "", ""
	return root
}

// clearIf deactivates the sandbox only if root is the active one.
func (r *Redirection) clearIf(root string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root != root {
		return false
	}
	r.root, r.canonical = "", ""
	return true
}
