package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "home directory not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "home directory not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Empty(t, err.Op())
	require.Empty(t, err.Path())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] home directory not found", err.Error())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeNotAFile,
		CodeNotADirectory,
		CodeAlreadyExists,
		CodeInvalidPattern,
		CodeIO,
		CodeMissingParent,
		CodeNotFound,
		CodeSandboxSetup,
		CodeSandboxActive,
		CodeUnsupported,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeSandboxSetup, "cannot create %s under %s", "pathlib-1", "/tmp")

	require.Equal(t, CodeSandboxSetup, err.Code())
	require.Equal(t, "cannot create pathlib-1 under /tmp", err.Message())
}

func TestForPath(t *testing.T) {
	err := ForPath(CodeNotADirectory, "iterdir", "/etc/hosts", "not a directory")

	require.Equal(t, CodeNotADirectory, err.Code())
	require.Equal(t, "iterdir", err.Op())
	require.Equal(t, "/etc/hosts", err.Path())
	require.Equal(t, `[NOT_A_DIRECTORY] iterdir "/etc/hosts": not a directory`, err.Error())
}
