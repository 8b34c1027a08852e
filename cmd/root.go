package cmd

import (
	"foldertext/pkg/aggregate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the root command. Paths are processed independently and
// in order; failed inputs are reported and skipped, and only a failure to
// create the output document itself aborts the run with an error.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foldertext <path> [<path> ...]",
		Short: "foldertext flattens files and directories into a single text document",
		Long: `foldertext recursively collects the textual files under the given paths and
concatenates them into output.txt in the current working directory, each file
wrapped in tags naming its path. Binary files and version-control metadata
directories are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past the argument check, only a failure to create the output
			// document aborts; suppress the usage dump for it.
			cmd.SilenceUsage = true

			failures, err := aggregate.Run(args, aggregate.DefaultConfig(), logger)
			if err != nil {
				return err
			}
			// Per-input failures were already reported individually; the
			// run is best-effort and still exits zero.
			if failures > 0 {
				logger.Warn("Completed with failed inputs", zap.Int("failures", failures))
			}
			return nil
		},
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
