package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kebairia/addonsbackup/internal/operations"
	"github.com/kebairia/addonsbackup/internal/target"
	"github.com/kebairia/addonsbackup/internal/validate"
)

func newBackupCmd(a *app) *cobra.Command {
	var (
		in   inputFlags
		save bool
	)
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the addon folders of a game installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if save {
				if err := a.saveSettings(in.settings(cmd, a.cfg.Settings)); err != nil {
					return err
				}
			}
			return a.backup(cmd, in.request(cmd, a.cfg))
		},
	}
	in.register(backupCmd.Flags())
	backupCmd.Flags().BoolVar(&save, "save", false, "persist the inputs as the new saved settings")
	return backupCmd
}

func (a *app) backup(cmd *cobra.Command, req operations.Request) error {
	out := cmd.OutOrStdout()

	t, findings, err := operations.Prepare(req)
	printTarget(out, t)
	printFindings(out, findings)
	if err != nil {
		fmt.Fprintln(out, "Error occurred, check log.")
		a.log.Error("backup rejected", "error", err.Error())
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := operations.NewRunner(
		operations.WithLogger(a.log),
		operations.WithMetadata(a.cfg.Backup.WriteMetadata),
	)
	events, err := runner.Start(ctx, t)
	if err != nil {
		return err
	}

	p := newProgress(out, a.log)
	var runErr error
	for ev := range events {
		if ev.Done {
			p.finish(ev.Err)
			runErr = ev.Err
			continue
		}
		p.update(ev.Percent, ev.Message)
	}
	if runErr != nil && ctx.Err() != nil {
		return fmt.Errorf("backup interrupted: %w", runErr)
	}
	return runErr
}

func printTarget(out io.Writer, t *target.BackupTarget) {
	fmt.Fprintf(out, "Backing up from %s\n", t.SourceRoot)
	fmt.Fprintf(out, "Backing up folders %s\n", strings.Join(t.Subdirectories, ", "))
	fmt.Fprintf(out, "Backing up to %s\n", t.DestinationPath())
}

func printFindings(out io.Writer, findings validate.Findings) {
	for _, line := range findings.Lines() {
		fmt.Fprintln(out, line)
	}
}
