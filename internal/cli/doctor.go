package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nhle/taskbook/internal/model"
	"github.com/nhle/taskbook/internal/store"
)

var errChecksFailed = errors.New("doctor found problems")

func newDoctorCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and storage health",
		Long:  `Runs diagnostic checks on the configuration and storage files and reports pass/fail for each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
}

func runDoctor(ctx context.Context, w io.Writer, flags *globalFlags) error {
	passed, failed := 0, 0
	check := func(name string, err error) {
		if err == nil {
			fmt.Fprintf(w, "  ✓ %s\n", name)
			passed++
			return
		}
		fmt.Fprintf(w, "  ✗ %s: %v\n", name, err)
		failed++
	}

	fmt.Fprintln(w, "Configuration:")
	cfg, err := flags.loadConfig()
	check("config readable ("+flags.configPath+")", err)
	if err != nil {
		fmt.Fprintf(w, "\n%d passed, %d failed\n", passed, failed)
		return errChecksFailed
	}

	dir := cfg.TaskbookDir()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Storage (%s, %s):\n", cfg.Storage.Backend, dir)
	check("taskbook directory exists", dirExists(dir))

	switch cfg.Storage.Backend {
	case model.BackendSQLite:
		check("database opens and migrates", checkSQLite(ctx, filepath.Join(dir, store.SQLiteFile)))
	default:
		v, err := store.NewValidator()
		check("storage schema compiles", err)
		if err == nil {
			storage, archive := store.JSONFiles(dir)
			check("storage.json matches schema", validateFile(v, storage))
			check("archive.json matches schema", validateFile(v, archive))
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return errChecksFailed
	}
	return nil
}

func dirExists(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// validateFile checks one storage file. A missing file is fine.
func validateFile(v *store.Validator, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return v.Validate(path, data)
}

func checkSQLite(ctx context.Context, path string) error {
	s, err := store.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer s.Close()
	_, err = s.SchemaVersion(ctx)
	return err
}
