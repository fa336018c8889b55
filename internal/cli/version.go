package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationSkipValidation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("carbontrace %s (%s, %s/%s)\n",
				cmd.Root().Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
