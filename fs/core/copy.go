package core

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Seed copies every regular file of src below srcRoot into dst below
// dstRoot, creating directories as needed. dstRoot is an actual path on dst.
//
// Use "." as srcRoot to copy the whole source. Directory entries are
// recreated through MkdirAll; file permissions are preserved.
//
// Example:
//
//	//go:embed testdata/*
//	var fixtures embed.FS
//
//	err := core.Seed(fixtures, storage, "testdata", sandboxRoot)
func Seed(src fs.FS, dst Storage, srcRoot, dstRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		target := filepath.Join(dstRoot, filepath.FromSlash(rel))

		if d.IsDir() {
			return dst.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		if dir := path.Dir(rel); dir != "." && dir != "" {
			if err := dst.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
		}

		return dst.WriteFile(target, data, info.Mode().Perm())
	})
}
