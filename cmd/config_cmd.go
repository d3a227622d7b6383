package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kebairia/addonsbackup/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the saved settings",
	}
	configCmd.AddCommand(newConfigShowCmd(a), newConfigSaveCmd(a))
	return configCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			s := a.cfg.Settings
			fmt.Fprintf(out, "config:           %s\n", a.configPath)
			fmt.Fprintf(out, "source_root:      %s\n", s.SourceRoot)
			fmt.Fprintf(out, "destination_root: %s\n", s.DestinationRoot)
			fmt.Fprintf(out, "label:            %s\n", s.Label)
			fmt.Fprintf(out, "revision:         %s\n", s.Revision)
			fmt.Fprintf(out, "subdirectories:   %s\n", strings.Join(a.cfg.Backup.Subdirectories, ", "))
			fmt.Fprintf(out, "write_metadata:   %t\n", a.cfg.Backup.WriteMetadata)
			return nil
		},
	}
}

func newConfigSaveCmd(a *app) *cobra.Command {
	var in inputFlags
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Persist the given inputs as the saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("subdir") {
				a.cfg.Backup.Subdirectories = in.subdirs
			}
			if err := a.saveSettings(in.settings(cmd, a.cfg.Settings)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", a.configPath)
			return nil
		},
	}
	in.register(saveCmd.Flags())
	return saveCmd
}

// saveSettings writes s over the loaded configuration.
func (a *app) saveSettings(s config.Settings) error {
	a.cfg.Settings = s
	if err := a.cfg.Save(a.configPath); err != nil {
		a.log.Error("save settings", "path", a.configPath, "error", err.Error())
		return err
	}
	a.log.Info("settings saved", "path", a.configPath)
	return nil
}
