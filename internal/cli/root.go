// Package cli defines the taskbook command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/app"
	"github.com/nhle/taskbook/internal/engine"
	"github.com/nhle/taskbook/internal/model"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	dir        string
	backend    string
	logLevel   string
}

// NewRootCmd builds the taskbook command tree.
func NewRootCmd(version string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "taskbook",
		Short: "Tasks, boards and notes for the command line",
		Long: `taskbook keeps tasks and notes on boards in a local store.

Without a subcommand it shows every board followed by a progress overview.`,
		Args:          cobra.NoArgs,
		RunE:          runWithApp(flags, showBoards),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", model.DefaultConfigPath(), "config file")
	pf.StringVar(&flags.dir, "dir", "", "taskbook directory (overrides config)")
	pf.StringVar(&flags.backend, "backend", "", "storage backend: json or sqlite (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newTaskCmd(flags),
		newNoteCmd(flags),
		newCheckCmd(flags),
		newBeginCmd(flags),
		newStarCmd(flags),
		newPriorityCmd(flags),
		newMoveCmd(flags),
		newEditCmd(flags),
		newDeleteCmd(flags),
		newRestoreCmd(flags),
		newArchiveCmd(flags),
		newTimelineCmd(flags),
		newFindCmd(flags),
		newListCmd(flags),
		newCopyCmd(flags),
		newClearCmd(flags),
		newBoardsCmd(flags),
		newDeleteBoardCmd(flags),
		newBrowseCmd(flags),
		newDoctorCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(version),
	)

	return rootCmd
}

// Execute runs the root command. Input errors have already been shown by
// the presenter and are not printed again.
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		if !engine.IsInputError(err) && !errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func (f *globalFlags) loadConfig() (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.dir != "" {
		cfg.Storage.Directory = f.dir
	}
	if f.backend != "" {
		cfg.Storage.Backend = f.backend
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runFunc is a command body with an open App.
type runFunc func(cmd *cobra.Command, a *app.App, args []string) error

// runWithApp opens the App for the duration of one command.
func runWithApp(flags *globalFlags, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := flags.loadConfig()
		if err != nil {
			return err
		}

		a, err := app.New(cfg, app.Options{
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		err = fn(cmd, a, args)
		if err != nil && !engine.IsInputError(err) && !errors.Is(err, errAborted) {
			a.Logger.Debug("command failed", "cmd", cmd.Name(), "err", err)
		}
		return err
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskbook version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "taskbook", version)
		},
	}
}

func showBoards(cmd *cobra.Command, a *app.App, _ []string) error {
	ctx := cmd.Context()
	if err := a.Engine.DisplayByBoard(ctx); err != nil {
		return err
	}
	return a.Engine.DisplayStats(ctx)
}
