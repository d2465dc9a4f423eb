// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/byteland/internal/cli"
)

func TestRun_ReferenceInput(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("3\n4\n0 1 2\n8\n0 1 2 0 0 3 3\n9\n0 1 1 1 1 0 2 2\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), in, out, errOut, []string{"-env-file", "", "-log-level", "error"})
	require.NoError(t, err)
	assert.Equal(t, "2\n4\n5\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_InputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n9\n0 1 1 1 1 0 2 2\n"), 0600))
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), nil, out, &bytes.Buffer{}, []string{"-env-file", "", path}))
	assert.Equal(t, "5\n", out.String())
}

func TestRun_Generate(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), nil, out, &bytes.Buffer{}, []string{"-env-file", "", "-gen", "star", "-n", "4"}))
	assert.Equal(t, "1\n4\n0 0 0\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	err := run(context.Background(), nil, &bytes.Buffer{}, errOut, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"success", nil, 0, ""},
		{"usage", &cli.ExitError{Code: 2, Message: "bad flag"}, 2, "bad flag\n"},
		{"fatal", errors.New("unexpected EOF"), 1, "unexpected EOF\n"},
	}
	for _, tc := range tests {
		errOut := &bytes.Buffer{}
		assert.Equal(t, tc.code, exitCode(tc.err, errOut), tc.name)
		assert.Equal(t, tc.msg, errOut.String(), tc.name)
	}
}

func TestRun_TruncatedInputIsFatal(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader("2\n2\n0\n"), &bytes.Buffer{}, errOut, []string{"-env-file", ""})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err, errOut))
}
