// Package cli implements the linkedlal command line.
//
// The root command loads an optional theme file, sets up logging and opens
// the widget window. All commands support --verbose (-v) for debug-level
// logging; the logger travels through the command context.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/linked-lal/internal/config"
	"github.com/iburimskiy/linked-lal/internal/game"
)

// runFunc starts the widget. Tests replace it to avoid opening a window.
type runFunc func(ctx context.Context, opts game.Options) error

// Execute runs the root command until the window closes or ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd(game.Run).ExecuteContext(ctx)
}

func newRootCmd(run runFunc) *cobra.Command {
	var (
		verbose   bool
		themePath string
		width     int
		height    int
		mute      bool
	)

	root := &cobra.Command{
		Use:          "linkedlal",
		Short:        "Animated row of opening and closing line pairs",
		Long:         `linkedlal shows five line pairs mirrored through the centre of the window. Each click opens or closes the current pair and moves on to the next, bouncing back at either end.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			theme := config.DefaultTheme()
			if themePath != "" {
				t, err := config.LoadTheme(themePath)
				if err != nil {
					return err
				}
				theme = t
				logger.Debug("theme loaded", "path", themePath, "easing", theme.Easing)
			}

			return run(ctx, game.Options{
				Width:  width,
				Height: height,
				Theme:  theme,
				Mute:   mute,
				Logger: logger,
			})
		},
	}

	flags := root.Flags()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&themePath, "theme", "", "path to a TOML theme file")
	flags.IntVar(&width, "width", config.WindowWidth, "window width in pixels")
	flags.IntVar(&height, "height", config.WindowHeight, "window height in pixels")
	flags.BoolVar(&mute, "mute", false, "disable the click sound")

	return root
}
