// Package pathlib provides an immutable path value and a thin gateway for
// small-file I/O, with a sandbox mode that moves every side effect into a
// disposable directory.
//
// # Paths
//
// Path is pure string logic. It understands POSIX paths, Windows drives
// ("C:\x", "C:/x", drive-relative "C:x") and UNC shares ("\\srv\share\x",
// "//srv/share/x"), treating '/' and '\' alike as separators:
//
//	p := pathlib.New("/srv/data/archive.tar.gz")
//	p.Name()             // "archive.tar.gz"
//	p.Stem()             // "archive.tar"
//	p.Suffix()           // "gz"
//	p.WithSuffix("zip")  // "/srv/data/archive.tar.zip"
//	p.Parent().Join("x") // "/srv/data/x"
//
// # Gateway
//
// A Gateway maps a logical Path to the actual path handed to a
// core.Storage and back. Storage providers live under fs/: fs/billy
// (go-billy local and in-memory), fs/afero (afero OS and in-memory) and
// fs/minio (S3-compatible object storage).
//
//	g := pathlib.NewGateway(billy.NewLocal(), pathlib.WithAutoExpandTilde(true))
//	if err := g.WriteText(pathlib.New("~/notes/today.md"), "hello"); err != nil {
//	    return err
//	}
//
// # Sandboxes
//
// BeginSandbox creates a uniquely named directory under the temporary root
// and rebases every actual path, absolute or relative, beneath it until
// the sandbox ends. Logical paths never carry the sandbox prefix.
//
//	err := g.WithSandbox("test-", func(sb *pathlib.Sandbox) error {
//	    // writes to /etc/app.conf land in sb.Root()/etc/app.conf
//	    return g.WriteText(pathlib.New("/etc/app.conf"), "x")
//	})
//
// In tests, pathlibtest.Sandbox ends the sandbox through t.Cleanup.
//
// # Errors
//
// Failures are errors.Error values from the errors package, carrying a
// code, the operation and the logical path. Query operations (Exists,
// IsFile, IsDir) never fail; absence is false.
package pathlib
