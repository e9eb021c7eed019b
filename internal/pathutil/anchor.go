// Package pathutil implements the lexical path rules shared by pathlib.Path
// and the gateway. Every function is pure string logic: nothing here
// touches storage or the environment.
//
// Both '/' and '\' delimit segments. The anchor is whatever precedes the
// first segment and is never itself a segment name:
//
//	C:\Users\me    drive "C:", root "\"
//	C:foo          drive "C:", no root (drive-relative)
//	\\srv\share\x  drive "\\srv\share", root "\"
//	/a/b           no drive, root "/"
package pathutil

import "strings"

// IsSep reports whether c delimits path segments.
func IsSep(c byte) bool {
	return c == '/' || c == '\\'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// SplitAnchor splits s into its drive, root and the remainder that holds
// the segments. A UNC drive needs both a server and a share; anything less
// is treated as a rooted POSIX path.
func SplitAnchor(s string) (drive, root, rest string) {
	drive = uncDrive(s)
	if drive == "" && len(s) >= 2 && s[1] == ':' && isLetter(s[0]) {
		drive = s[:2]
	}
	rest = s[len(drive):]
	if rest != "" && IsSep(rest[0]) {
		root, rest = rest[:1], rest[1:]
	}
	return drive, root, rest
}

// uncDrive returns the \\server\share prefix of s, or "".
func uncDrive(s string) string {
	if len(s) < 5 || !IsSep(s[0]) || !IsSep(s[1]) || IsSep(s[2]) {
		return ""
	}
	server := indexSep(s[2:])
	if server <= 0 {
		return ""
	}
	shareStart := 2 + server + 1
	if shareStart >= len(s) || IsSep(s[shareStart]) {
		return ""
	}
	share := indexSep(s[shareStart:])
	if share < 0 {
		return s
	}
	return s[:shareStart+share]
}

// IsUNC reports whether drive is a \\server\share prefix.
func IsUNC(drive string) bool {
	return len(drive) > 2 && IsSep(drive[0])
}

// IsAbs reports whether s is POSIX-rooted, drive-rooted or UNC.
// A drive-relative path such as C:foo is not absolute.
func IsAbs(s string) bool {
	drive, root, _ := SplitAnchor(s)
	return root != "" || IsUNC(drive)
}

// Anchor returns drive+root of s.
func Anchor(s string) string {
	drive, root, _ := SplitAnchor(s)
	return drive + root
}

// DriveParts returns the segments contributed by a drive: the drive
// itself for a letter drive, server and share for UNC.
func DriveParts(drive string) []string {
	switch {
	case drive == "":
		return nil
	case IsUNC(drive):
		body := drive[2:]
		i := indexSep(body)
		return []string{body[:i], body[i+1:]}
	default:
		return []string{drive}
	}
}

func indexSep(s string) int {
	return strings.IndexAny(s, `/\`)
}

func lastIndexSep(s string) int {
	return strings.LastIndexAny(s, `/\`)
}
