package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/beamerlint/internal/logging"
	"github.com/yaklabco/beamerlint/pkg/fsutil"
)

func newRestoreCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "restore <files...>",
		Short: "Undo an in-place fix from its backup",
		Long: `Restore files rewritten by 'check --in-place' from the backup taken
before the first fix (<file>` + fsutil.BackupSuffix + `). The backup is removed
afterwards unless --keep is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, keep)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep the backup after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, keep bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	var errs []error
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve %s: %w", arg, err))
			continue
		}

		restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", arg, err))
			continue
		}
		if !restored {
			errs = append(errs, fmt.Errorf("%w: no backup for %s", fsutil.ErrNotFound, arg))
			continue
		}

		if !keep {
			if err := os.Remove(fsutil.BackupPath(path, fsutil.BackupModeSidecar)); err != nil {
				errs = append(errs, fmt.Errorf("remove backup of %s: %w", arg, err))
				continue
			}
		}
		logger.Info("restored from backup", logging.FieldPath, arg)
	}

	if len(errs) > 0 {
		return errors.Join(ErrFilesFailed, errors.Join(errs...))
	}
	return nil
}
