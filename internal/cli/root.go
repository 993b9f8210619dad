package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelquest/rpgcard/pkg/buildinfo"
)

// Execute runs the rpgcard CLI and returns an error if any command fails.
// This is the main entry point for the application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rpgcard",
		Short:        "rpgcard serves GitHub profiles as retro RPG status cards",
		Long:         "rpgcard is an HTTP service that renders a public GitHub profile as an embeddable SVG status card, styled like a retro role-playing-game screen.",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())

	return root.ExecuteContext(ctx)
}
