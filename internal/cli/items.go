package cli

import (
	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/app"
)

// simpleCmd builds a command that hands its arguments to one engine call.
func simpleCmd(
	flags *globalFlags,
	use, alias, short string,
	run func(cmd *cobra.Command, a *app.App, args []string) error,
) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		RunE:    runWithApp(flags, run),
	}
}

func newTaskCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "task <description> [@board...] [p:1-3]", "t", "Create a task",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			_, err := a.Engine.CreateTask(cmd.Context(), args)
			return err
		})
}

func newNoteCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "note <description> [@board...]", "n", "Create a note",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			_, err := a.Engine.CreateNote(cmd.Context(), args)
			return err
		})
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "check <id>...", "c", "Check or uncheck tasks",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.CheckTasks(cmd.Context(), args)
		})
}

func newBeginCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "begin <id>...", "b", "Start or pause tasks",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.BeginTasks(cmd.Context(), args)
		})
}

func newStarCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "star <id>...", "s", "Star or unstar items",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.StarItems(cmd.Context(), args)
		})
}

func newPriorityCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "priority @<id>... <1-3>", "p", "Set task priority",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.UpdatePriority(cmd.Context(), args)
		})
}

func newMoveCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "move @<id>... <board>...", "m", "Move items to boards",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.MoveBoards(cmd.Context(), args)
		})
}

func newEditCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "edit @<id> <description>", "e", "Edit an item description",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.EditDescription(cmd.Context(), args)
		})
}

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "delete <id>...", "d", "Delete items to the archive",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.DeleteItems(cmd.Context(), args)
		})
}

func newRestoreCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "restore <id>...", "r", "Restore items from the archive",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.RestoreItems(cmd.Context(), args)
		})
}

func newArchiveCmd(flags *globalFlags) *cobra.Command {
	cmd := simpleCmd(flags, "archive", "a", "Show archived items",
		func(cmd *cobra.Command, a *app.App, _ []string) error {
			return a.Engine.DisplayArchive(cmd.Context())
		})
	cmd.Args = cobra.NoArgs
	return cmd
}

func newTimelineCmd(flags *globalFlags) *cobra.Command {
	cmd := simpleCmd(flags, "timeline", "i", "Show items by creation date",
		func(cmd *cobra.Command, a *app.App, _ []string) error {
			if err := a.Engine.DisplayByDate(cmd.Context()); err != nil {
				return err
			}
			return a.Engine.DisplayStats(cmd.Context())
		})
	cmd.Args = cobra.NoArgs
	return cmd
}

func newFindCmd(flags *globalFlags) *cobra.Command {
	cmd := simpleCmd(flags, "find <term>...", "f", "Search item descriptions",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			return a.Engine.FindItems(cmd.Context(), args)
		})
	cmd.Args = cobra.MinimumNArgs(1)
	return cmd
}

func newListCmd(flags *globalFlags) *cobra.Command {
	cmd := simpleCmd(flags, "list <attribute|board>...", "l", "List items by attributes and boards",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			if err := a.Engine.ListByAttributes(cmd.Context(), args); err != nil {
				return err
			}
			return a.Engine.DisplayStats(cmd.Context())
		})
	cmd.Long = `List items matching every attribute, optionally limited to boards.

Attributes: star, done, progress, pending, task, note.
Boards: any existing board name, with or without "@", or myboard.`
	return cmd
}

func newCopyCmd(flags *globalFlags) *cobra.Command {
	return simpleCmd(flags, "copy <id>...", "y", "Copy item descriptions to the clipboard",
		func(cmd *cobra.Command, a *app.App, args []string) error {
			_, err := a.Engine.CopyToClipboard(cmd.Context(), args)
			return err
		})
}

func newClearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Archive all completed tasks",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(cmd *cobra.Command, a *app.App, _ []string) error {
			return a.Engine.Clear(cmd.Context())
		}),
	}
}
