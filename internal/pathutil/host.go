package pathutil

import (
	"path/filepath"
	"strings"
)

// ToHost rewrites every separator in s to the host separator.
func ToHost(s string) string {
	return filepath.FromSlash(strings.ReplaceAll(s, `\`, "/"))
}

// Rebase places the host path p under root. A volume name becomes a plain
// directory ("C:" becomes "C") and the remainder is cleaned as a rooted
// path, so ".." can never climb above root.
func Rebase(root, p string) string {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	vol = strings.TrimLeft(strings.TrimSuffix(vol, ":"), `/\`)
	cleaned := filepath.Clean(string(filepath.Separator) + rest)
	return filepath.Join(root, vol, cleaned)
}

// Unbase strips root from the host path p and returns the rooted
// remainder. ok is false when p does not lie under root.
func Unbase(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p, false
	}
	if rel == "." {
		return string(filepath.Separator), true
	}
	return string(filepath.Separator) + rel, true
}
