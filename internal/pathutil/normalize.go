package pathutil

import "strings"

// Normalize rewrites s lexically: "." segments are dropped and ".." pops
// the previous segment. On an absolute path ".." at the root is discarded;
// on a relative path leading ".." segments are kept. An empty relative
// result is ".". The anchor is preserved byte for byte.
func Normalize(s string) string {
	drive, root, _ := SplitAnchor(s)
	abs := root != "" || IsUNC(drive)

	var stack []string
	for _, seg := range Segments(s) {
		switch seg {
		case ".":
		case "..":
			switch {
			case len(stack) > 0 && stack[len(stack)-1] != "..":
				stack = stack[:len(stack)-1]
			case !abs:
				stack = append(stack, seg)
			}
		default:
			stack = append(stack, seg)
		}
	}

	sep := string(Sep(s))
	anchor := drive + root
	body := strings.Join(stack, sep)
	switch {
	case body == "" && anchor == "":
		return "."
	case body == "":
		return anchor
	case root == "" && IsUNC(drive):
		return anchor + sep + body
	default:
		return anchor + body
	}
}

// Join appends segs to base with exactly one separator at each boundary.
// Separators around each segment are trimmed and empty segments are
// skipped. Onto an empty base the first segment keeps its leading
// separator, so Join("", "/etc") is "/etc".
func Join(base string, segs ...string) string {
	out := base
	sep := string(Sep(base))
	for _, seg := range segs {
		trimmed := strings.Trim(seg, `/\`)
		if trimmed == "" {
			continue
		}
		if out == "" {
			out = strings.TrimRight(seg, `/\`)
			sep = string(Sep(out))
			continue
		}
		head := TrimTrailing(out)
		if IsSep(head[len(head)-1]) || isBareDrive(head) {
			out = head + trimmed
		} else {
			out = head + sep + trimmed
		}
	}
	return out
}

func isBareDrive(s string) bool {
	return len(s) == 2 && s[1] == ':' && isLetter(s[0])
}

// ExpandTilde replaces a leading "~" (alone or followed by a separator)
// with home. "~user" forms and an empty home leave s unchanged.
func ExpandTilde(s, home string) string {
	if home == "" || s == "" || s[0] != '~' {
		return s
	}
	if s == "~" {
		return home
	}
	if IsSep(s[1]) {
		return strings.TrimRight(home, `/\`) + s[1:]
	}
	return s
}
