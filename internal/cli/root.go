package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbfs/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "gridbfs",
		Short:        "gridbfs — breadth-first reachability on 2D grids",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Debug:  debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(traverseCmd(), componentsCmd(), generateCmd(), versionCmd())
	return cmd
}
