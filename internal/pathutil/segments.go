package pathutil

import "strings"

// Segments splits the part of s after its anchor into non-empty segments.
// "." and ".." are kept.
func Segments(s string) []string {
	_, _, rest := SplitAnchor(s)
	return strings.FieldsFunc(rest, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// Parts returns the drive parts of s followed by its segments.
func Parts(s string) []string {
	drive, _, _ := SplitAnchor(s)
	parts := DriveParts(drive)
	return append(parts, Segments(s)...)
}

// LastSegment returns the byte range [start, end) of the final segment of
// s. Trailing separators are skipped. ok is false when s has no segment
// after its anchor.
func LastSegment(s string) (start, end int, ok bool) {
	anchorLen := len(Anchor(s))
	end = len(s)
	for end > anchorLen && IsSep(s[end-1]) {
		end--
	}
	if end == anchorLen {
		return 0, 0, false
	}
	start = lastIndexSep(s[anchorLen:end])
	if start < 0 {
		return anchorLen, end, true
	}
	return anchorLen + start + 1, end, true
}

// TrimTrailing strips trailing separators from s without eating into its
// anchor.
func TrimTrailing(s string) string {
	anchorLen := len(Anchor(s))
	end := len(s)
	for end > anchorLen && IsSep(s[end-1]) {
		end--
	}
	return s[:end]
}

// Sep returns the separator used when composing onto s: '\' when s uses
// backslashes only, '/' otherwise.
func Sep(s string) byte {
	if strings.IndexByte(s, '\\') >= 0 && strings.IndexByte(s, '/') < 0 {
		return '\\'
	}
	return '/'
}

// SplitName splits a segment name at its last dot. Dotfiles, "." and ".."
// have no suffix. The returned suffix carries no dot.
func SplitName(name string) (stem, suffix string) {
	if name == "." || name == ".." {
		return name, ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}
