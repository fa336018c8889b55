package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/carbontrace/internal/cli"
	"github.com/rshade/carbontrace/internal/config"
	"github.com/rshade/carbontrace/pkg/version"
)

func main() {
	if err := run(); err != nil {
		if code, ok := extractExitCode(err); ok {
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal; a malformed one is worth a warning.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}

// extractExitCode reports the exit code carried by a *cli.ExitError
// anywhere in err's chain.
func extractExitCode(err error) (int, bool) {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
