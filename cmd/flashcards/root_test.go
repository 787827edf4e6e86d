package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/testutil"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FLASHCARDS_IMPORT_FROM", "FLASHCARDS_EXPORT_TO", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	prev := logger.Default()
	t.Cleanup(func() { logger.SetDefault(prev) })
}

func TestRootCmd_ImportStudyExport(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := testutil.WriteDeckFile(t, "Paris;Capital of France;0")
	out := filepath.Join(dir, "out.txt")
	logFile := filepath.Join(dir, "diag.log")

	var stdout bytes.Buffer
	cmd := newRootCmd(strings.NewReader("ask\n1\nwrong\nexit\n"), &stdout)
	cmd.SetArgs([]string{"--import_from", in, "--export_to", out, "--log-level", "debug", "--log-file", logFile})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "1 cards have been loaded.")
	assert.Contains(t, stdout.String(), `Wrong. The right answer is "Capital of France".`)
	assert.Contains(t, stdout.String(), "1 cards have been saved.")
	assert.Equal(t, []string{"Paris;Capital of France;1"}, testutil.ReadLines(t, out))

	diag, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(diag), "import_from="+in)
	assert.NotContains(t, stdout.String(), "import_from=", "diagnostics stay off the session stream")
}

func TestRootCmd_EnvironmentDefaults(t *testing.T) {
	clearEnv(t)
	out := filepath.Join(t.TempDir(), "env.txt")
	t.Setenv("FLASHCARDS_EXPORT_TO", out)

	var stdout bytes.Buffer
	cmd := newRootCmd(strings.NewReader("add\nA\na\n"), &stdout)
	cmd.SetArgs([]string{"--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"A;a;0"}, testutil.ReadLines(t, out))
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	clearEnv(t)

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "chatty"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	clearEnv(t)

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
