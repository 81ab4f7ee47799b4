package cli

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/app"
	"github.com/nhle/taskbook/internal/keys"
	"github.com/nhle/taskbook/internal/ui/boardview"
)

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse boards interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			// Presenter output is shown in the browser's status line.
			var status bytes.Buffer
			a, err := app.New(cfg, app.Options{Out: &status, ErrOut: &status})
			if err != nil {
				return err
			}
			defer a.Close()

			m := boardview.New(a.Engine, &status, keys.DefaultKeyMap(), 80, 24)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
