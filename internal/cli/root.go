package cli

import (
	"github.com/spf13/cobra"

	"github.com/nost-not/nost/internal/config"
	"github.com/nost-not/nost/internal/service"
)

// App holds references to the service interfaces and configuration used by
// CLI commands.
type App struct {
	Notes  service.NoteService
	Work   service.WorkService
	Config config.Config

	// AppendNote is the sink used to write a composed report into a note.
	AppendNote func(path, text string) error

	// IsInteractive reports whether stdin is an interactive terminal;
	// commands only prompt when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "nost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "nost",
		Short:         "Dated notes with embedded work tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newStartWorkCmd(app),
		newEndWorkCmd(app),
		newWorkStatsCmd(app),
	)

	return root
}
