package pathlib

import (
	"os"

	"github.com/google/uuid"
	"github.com/jmgilman/go/pathlib/errors"
	"github.com/mitchellh/go-homedir"
)

// Environment supplies the process facts the gateway reads. Sandbox
// directories are named TempDir()/<prefix><UniqueToken()>.
type Environment interface {
	HomeDir() (string, error)
	TempDir() string
	UniqueToken() string
}

// SystemEnvironment reads the running process's environment. The home
// directory comes from go-homedir, which checks $HOME (or USERPROFILE /
// HOMEDRIVE+HOMEPATH on Windows) before falling back to the platform's
// user database.
type SystemEnvironment struct{}

// HomeDir returns the current user's home directory.
func (SystemEnvironment) HomeDir() (string, error) {
	return homedir.Dir()
}

// TempDir returns os.TempDir().
func (SystemEnvironment) TempDir() string {
	return os.TempDir()
}

// UniqueToken returns a random UUID.
func (SystemEnvironment) UniqueToken() string {
	return uuid.NewString()
}

// StaticEnvironment returns fixed values. Tokens are still unique: when
// Tokens is exhausted (or empty) a random UUID is used.
type StaticEnvironment struct {
	Home   string
	Temp   string
	Tokens []string
}

// HomeDir returns Home, or an error when it is empty.
func (e *StaticEnvironment) HomeDir() (string, error) {
	if e.Home == "" {
		return "", errors.New(errors.CodeNotFound, "home directory not set")
	}
	return e.Home, nil
}

// TempDir returns Temp, or os.TempDir() when it is empty.
func (e *StaticEnvironment) TempDir() string {
	if e.Temp == "" {
		return os.TempDir()
	}
	return e.Temp
}

// UniqueToken pops the next entry of Tokens.
func (e *StaticEnvironment) UniqueToken() string {
	if len(e.Tokens) == 0 {
		return uuid.NewString()
	}
	token := e.Tokens[0]
	e.Tokens = e.Tokens[1:]
	return token
}
