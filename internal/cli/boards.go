package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/app"
	"github.com/nhle/taskbook/internal/model"
)

// errAborted is returned when the user declines a confirmation.
var errAborted = errors.New("aborted")

func newBoardsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List board names",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(cmd *cobra.Command, a *app.App, _ []string) error {
			boards, err := a.Engine.Boards(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range boards {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		}),
	}
}

func newDeleteBoardCmd(flags *globalFlags) *cobra.Command {
	var (
		opts    model.DeleteBoardOptions
		confirm bool
	)

	cmd := &cobra.Command{
		Use:   "delete-board <board>",
		Short: "Remove a board from every item",
		Long: `Remove a board from every item that references it.

Items left without a board move to the default board. Use --dry-run to see
what would change without writing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithApp(flags, func(cmd *cobra.Command, a *app.App, args []string) error {
			name := args[0]
			ctx := cmd.Context()

			if confirm && !opts.DryRun {
				preview := opts
				preview.DryRun = true
				result, err := a.Engine.DeleteBoard(ctx, name, preview)
				if err != nil {
					return err
				}
				ok, err := confirmDeletion(name, result.Stats)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Board deletion cancelled.")
					return errAborted
				}
			}

			_, err := a.Engine.DeleteBoard(ctx, name, opts)
			return err
		}),
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show affected items without changing anything")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "allow deleting the default board")
	cmd.Flags().StringVar(&opts.DefaultBoard, "default-board", "", "board for items left without one")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "preview and ask before deleting")

	return cmd
}

// confirmDeletion asks the user to approve a deletion.
func confirmDeletion(board string, stats model.BoardDeletionStats) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete board %q?", board)).
				Description(fmt.Sprintf("%d items reassigned, %d moved to the default board.",
					stats.ItemsReassigned, stats.ItemsMovedToDefault)).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}
