package minio

import (
	"path"
	"path/filepath"
	"strings"
)

// normalizeKey cleans a storage name into an object key: backslashes
// become slashes, "." and ".." are resolved, and leading and trailing
// slashes are trimmed. The root is "".
func normalizeKey(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Clean("/" + name)
	return strings.Trim(name, "/")
}

// normalizePrefix applies normalizeKey to a configured prefix.
func normalizePrefix(prefix string) string {
	if prefix == "" || prefix == "." {
		return ""
	}
	return normalizeKey(prefix)
}

// joinKey places name under prefix.
func joinKey(prefix, name string) string {
	key := normalizeKey(name)
	switch {
	case key == "":
		return prefix
	case prefix == "":
		return key
	default:
		return prefix + "/" + key
	}
}

// dirPrefix returns the listing prefix for the directory key, which is also
// the key of its marker object. The root of an unprefixed storage is "".
func dirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// parentKey returns the key of the directory containing key.
func parentKey(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		return key[:i]
	}
	return ""
}

// canonicalName returns name as a cleaned, rooted host path.
func canonicalName(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(string(filepath.Separator), name)
}
