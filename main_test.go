package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/devantler-tech/mimegen/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSafelyReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely([]string{"a"}, func(args []string) int {
		assert.Equal(t, []string{"a"}, args)

		return 3
	}, &errOut)

	assert.Equal(t, 3, exitCode)
	assert.Empty(t, errOut.String())
}

func TestRunSafelyRecoversPanics(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely(nil, func([]string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, 1, exitCode)
	assert.True(t, strings.HasPrefix(errOut.String(), "✗ panic recovered: boom\n"))
}

func TestRunWithArgsRejectsArguments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, runWithArgs([]string{"other.types"}))
}

func TestRunWithArgsFailsWithoutRegistry(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := os.Stat(registry.DefaultPath)
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, 1, runWithArgs([]string{}))
}
