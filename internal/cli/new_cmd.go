package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create today's note",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) > 0 {
				title = args[0]
			} else if app.interactive() {
				prompted, err := promptTitle()
				if err != nil {
					return err
				}
				title = prompted
			}

			path, err := app.Notes.Create(context.Background(), title)
			if err != nil {
				return err
			}

			fmt.Printf("Note ready: %s\n", path)
			return nil
		},
	}
}

// promptTitle collects an optional note title; blank keeps the default
// day-number file name.
func promptTitle() (string, error) {
	var title string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Note title (blank for default)").
				Placeholder("07.md").
				Value(&title),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return title, nil
}
