package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rshade/carbontrace/internal/cli"
	"github.com/rshade/carbontrace/internal/config"
)

// fixedNow is the fake clock time of every command test.
//
//nolint:gochecknoglobals // Test fixture.
var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// setupCLITest isolates a command test from the user's home, project and
// global config.
func setupCLITest(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvData, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	setupCLITest(t)

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmdWithClock("test", clockwork.NewFakeClockAt(fixedNow))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
