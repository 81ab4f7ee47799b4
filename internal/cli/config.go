package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/model"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taskbook configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(flags.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", flags.configPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := model.SaveConfig(flags.configPath, model.DefaultAppConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flags.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config file:               %s\n", flags.configPath)
			fmt.Fprintf(w, "storage.directory:         %s\n", cfg.TaskbookDir())
			fmt.Fprintf(w, "storage.backend:           %s\n", cfg.Storage.Backend)
			fmt.Fprintf(w, "storage.validate:          %t\n", cfg.Storage.Validate)
			fmt.Fprintf(w, "display.complete_tasks:    %t\n", cfg.Display.CompleteTasks)
			fmt.Fprintf(w, "display.progress_overview: %t\n", cfg.Display.ProgressOverview)
			fmt.Fprintf(w, "boards.default:            %s\n", cfg.Boards.Default)
			fmt.Fprintf(w, "log.level:                 %s\n", cfg.Log.Level)
			fmt.Fprintf(w, "log.format:                %s\n", cfg.Log.Format)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
