package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	fileMode fs.FileMode = 0o644
	dirMode              = fs.ModeDir | 0o755
)

// FS implements core.Storage for MinIO/S3-compatible storage.
type FS struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates MinIO-backed storage. It does not contact the server.
func New(cfg Config) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	return &FS{
		client: client,
		bucket: cfg.Bucket,
		prefix: normalizePrefix(cfg.Prefix),
	}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (m *FS) EnsureBucket(ctx context.Context) error {
	ok, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return translate(err)
	}
	if ok {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		// lost a creation race with another client
		if exists, errExists := m.client.BucketExists(ctx, m.bucket); errExists == nil && exists {
			return nil
		}
		return translate(err)
	}
	return nil
}

// Type returns core.FSTypeRemote.
func (m *FS) Type() core.FSType {
	return core.FSTypeRemote
}

func (m *FS) key(name string) string {
	return joinKey(m.prefix, name)
}

func (m *FS) isRoot(key string) bool {
	return key == m.prefix
}

// statObject looks up the object stored at exactly key.
func (m *FS) statObject(ctx context.Context, key string) (minio.ObjectInfo, bool, error) {
	if m.isRoot(key) {
		return minio.ObjectInfo{}, false, nil
	}
	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return info, true, nil
	}
	if err = translate(err); errors.Is(err, fs.ErrNotExist) {
		return minio.ObjectInfo{}, false, nil
	}
	return minio.ObjectInfo{}, false, err
}

// anyBelow reports whether some object other than skip lives under prefix.
func (m *FS) anyBelow(ctx context.Context, prefix, skip string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return false, translate(obj.Err)
		}
		if obj.Key != skip {
			return true, nil
		}
	}
	return false, nil
}

// isDir reports whether key is the root, has a marker, or has objects
// below it.
func (m *FS) isDir(ctx context.Context, key string) (bool, error) {
	if m.isRoot(key) {
		return true, nil
	}
	return m.anyBelow(ctx, dirPrefix(key), "")
}

// Stat returns file metadata for the named object or directory.
func (m *FS) Stat(name string) (fs.FileInfo, error) {
	ctx := context.Background()
	key := m.key(name)

	info, ok, err := m.statObject(ctx, key)
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	if ok {
		return &fileInfo{name: path.Base(key), size: info.Size, modTime: info.LastModified, mode: fileMode}, nil
	}

	dir, err := m.isDir(ctx, key)
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	if !dir {
		return nil, pathError("stat", name, fs.ErrNotExist)
	}
	return &fileInfo{name: path.Base("/" + key), mode: dirMode}, nil
}

// Exists reports whether the named object or directory exists.
func (m *FS) Exists(name string) (bool, error) {
	_, err := m.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFile downloads the named object.
func (m *FS) ReadFile(name string) ([]byte, error) {
	info, err := m.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, pathError("read", name, fs.ErrInvalid)
	}

	obj, err := m.client.GetObject(context.Background(), m.bucket, m.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, pathError("read", name, translate(err))
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, pathError("read", name, translate(err))
	}
	return data, nil
}

// ReadDir lists the immediate children of the named directory, sorted by
// name. Directory markers are not reported as entries.
func (m *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	ctx := context.Background()
	key := m.key(name)

	if _, ok, err := m.statObject(ctx, key); err != nil {
		return nil, pathError("readdir", name, err)
	} else if ok {
		return nil, pathError("readdir", name, errNotDir)
	}

	prefix := dirPrefix(key)
	var entries []fs.DirEntry
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, pathError("readdir", name, translate(obj.Err))
		}
		if obj.Key == prefix {
			continue
		}
		rel := strings.TrimPrefix(obj.Key, prefix)
		info := &fileInfo{name: rel, size: obj.Size, modTime: obj.LastModified, mode: fileMode}
		if strings.HasSuffix(rel, "/") {
			info = &fileInfo{name: strings.TrimSuffix(rel, "/"), mode: dirMode}
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}

	if len(entries) == 0 {
		dir, err := m.isDir(ctx, key)
		if err != nil {
			return nil, pathError("readdir", name, err)
		}
		if !dir {
			return nil, pathError("readdir", name, fs.ErrNotExist)
		}
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// Glob returns the children of dir whose names match pattern, as names
// joined onto dir. A missing dir has no matches.
func (m *FS) Glob(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}

	entries, err := m.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, errNotDir) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, e := range entries {
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	return matches, nil
}

// Canonicalize returns the cleaned, rooted form of name. Object stores
// have no links, so this is purely lexical once existence is confirmed.
func (m *FS) Canonicalize(name string) (string, error) {
	if _, err := m.Stat(name); err != nil {
		return "", err
	}
	return canonicalName(name), nil
}

// WriteFile uploads data as the named object, replacing any previous
// content. perm is ignored.
func (m *FS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	ctx := context.Background()
	key := m.key(name)
	if m.isRoot(key) {
		return pathError("write", name, fs.ErrInvalid)
	}
	if _, ok, err := m.statObject(ctx, key); err != nil {
		return pathError("write", name, err)
	} else if !ok {
		if dir, err := m.isDir(ctx, key); err != nil {
			return pathError("write", name, err)
		} else if dir {
			return pathError("write", name, fs.ErrInvalid)
		}
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return pathError("write", name, translate(err))
	}
	return nil
}

// Mkdir writes the marker for a single directory. The parent must already
// be a directory.
func (m *FS) Mkdir(name string, _ fs.FileMode) error {
	ctx := context.Background()
	key := m.key(name)

	if ok, err := m.Exists(name); err != nil {
		return pathError("mkdir", name, err)
	} else if ok {
		return pathError("mkdir", name, fs.ErrExist)
	}

	parent := parentKey(key)
	if !m.isRoot(parent) {
		if _, isFile, err := m.statObject(ctx, parent); err != nil {
			return pathError("mkdir", name, err)
		} else if isFile {
			return pathError("mkdir", name, errNotDir)
		}
		dir, err := m.isDir(ctx, parent)
		if err != nil {
			return pathError("mkdir", name, err)
		}
		if !dir {
			return pathError("mkdir", name, fs.ErrNotExist)
		}
	}
	return m.putMarker(ctx, name, key)
}

// MkdirAll writes markers for name and every missing ancestor.
func (m *FS) MkdirAll(name string, _ fs.FileMode) error {
	ctx := context.Background()
	key := m.key(name)
	if m.isRoot(key) {
		return nil
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(key, m.prefix), "/")
	cur := m.prefix
	for _, seg := range strings.Split(rel, "/") {
		if cur == "" {
			cur = seg
		} else {
			cur = cur + "/" + seg
		}

		if _, isFile, err := m.statObject(ctx, cur); err != nil {
			return pathError("mkdir", name, err)
		} else if isFile {
			return pathError("mkdir", name, errNotDir)
		}
		if ok, err := m.anyBelow(ctx, dirPrefix(cur), ""); err != nil {
			return pathError("mkdir", name, err)
		} else if ok {
			continue
		}
		if err := m.putMarker(ctx, name, cur); err != nil {
			return err
		}
	}
	return nil
}

func (m *FS) putMarker(ctx context.Context, name, key string) error {
	_, err := m.client.PutObject(ctx, m.bucket, dirPrefix(key), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	if err != nil {
		return pathError("mkdir", name, translate(err))
	}
	return nil
}

// Remove deletes the named object, or the marker of the named directory
// when nothing else lives below it.
func (m *FS) Remove(name string) error {
	ctx := context.Background()
	key := m.key(name)
	if m.isRoot(key) {
		return pathError("remove", name, fs.ErrInvalid)
	}

	_, ok, err := m.statObject(ctx, key)
	if err != nil {
		return pathError("remove", name, err)
	}
	target := key
	if !ok {
		marker := dirPrefix(key)
		dir, err := m.isDir(ctx, key)
		if err != nil {
			return pathError("remove", name, err)
		}
		if !dir {
			return pathError("remove", name, fs.ErrNotExist)
		}
		nonEmpty, err := m.anyBelow(ctx, marker, marker)
		if err != nil {
			return pathError("remove", name, err)
		}
		if nonEmpty {
			return pathError("remove", name, core.ErrNotEmpty)
		}
		target = marker
	}

	if err := m.client.RemoveObject(ctx, m.bucket, target, minio.RemoveObjectOptions{}); err != nil {
		return pathError("remove", name, translate(err))
	}
	return nil
}

// Chmod is unsupported: objects carry no permission bits.
func (m *FS) Chmod(name string, _ fs.FileMode) error {
	ok, err := m.Exists(name)
	if err != nil {
		return pathError("chmod", name, err)
	}
	if !ok {
		return pathError("chmod", name, fs.ErrNotExist)
	}
	return pathError("chmod", name, core.ErrUnsupported)
}

// fileInfo describes an object or a directory prefix.
type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    fs.FileMode
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *fileInfo) Sys() any           { return nil }
