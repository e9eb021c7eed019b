// Package pathlibtest provides helpers for tests that exercise code built
// on pathlib.
package pathlibtest

import (
	"testing"

	"github.com/jmgilman/go/pathlib"
	"github.com/jmgilman/go/pathlib/fs/billy"
)

// Sandbox begins a sandbox on g and ends it when the test finishes.
// The prefix is derived from the test name.
func Sandbox(tb testing.TB, g *pathlib.Gateway) *pathlib.Sandbox {
	tb.Helper()
	sb, err := g.BeginSandbox(prefix(tb.Name()))
	if err != nil {
		tb.Fatalf("BeginSandbox(): %v", err)
	}
	tb.Cleanup(func() {
		if err := sb.Close(); err != nil {
			tb.Errorf("ending sandbox %s: %v", sb.Root(), err)
		}
	})
	return sb
}

// MemoryGateway returns a gateway over fresh in-memory storage whose
// temporary root is /tmp, together with an active sandbox.
func MemoryGateway(tb testing.TB, opts ...pathlib.Option) (*pathlib.Gateway, *pathlib.Sandbox) {
	tb.Helper()
	opts = append([]pathlib.Option{
		pathlib.WithEnvironment(&pathlib.StaticEnvironment{Temp: "/tmp"}),
	}, opts...)
	g := pathlib.NewGateway(billy.NewMemory(), opts...)
	return g, Sandbox(tb, g)
}

func prefix(name string) string {
	out := make([]byte, 0, len(name)+1)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(append(out, '-'))
}
