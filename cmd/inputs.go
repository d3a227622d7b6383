package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kebairia/addonsbackup/internal/config"
	"github.com/kebairia/addonsbackup/internal/operations"
)

// inputFlags are the raw backup inputs. Flags not given on the command line
// fall back to the saved settings.
type inputFlags struct {
	source      string
	destination string
	label       string
	revision    string
	subdirs     []string
}

func (in *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&in.source, "source", "s", "", "game installation directory (contains wow.exe)")
	fs.StringVarP(&in.destination, "destination", "d", "", "existing directory to create backups under")
	fs.StringVarP(&in.label, "label", "l", "", "interface name, used as the first folder level")
	fs.StringVarP(&in.revision, "revision", "r", "", "interface revision, prefixed to the timestamp folder")
	fs.StringSliceVar(&in.subdirs, "subdir", nil, "subdirectory to back up, repeatable (default from config)")
}

// settings merges the flags given on the command line over saved.
func (in *inputFlags) settings(cmd *cobra.Command, saved config.Settings) config.Settings {
	fs := cmd.Flags()
	if fs.Changed("source") {
		saved.SourceRoot = in.source
	}
	if fs.Changed("destination") {
		saved.DestinationRoot = in.destination
	}
	if fs.Changed("label") {
		saved.Label = in.label
	}
	if fs.Changed("revision") {
		saved.Revision = in.revision
	}
	return saved
}

func (in *inputFlags) request(cmd *cobra.Command, cfg config.Config) operations.Request {
	s := in.settings(cmd, cfg.Settings)
	subdirs := cfg.Backup.Subdirectories
	if cmd.Flags().Changed("subdir") {
		subdirs = in.subdirs
	}
	return operations.Request{
		SourceRoot:      s.SourceRoot,
		DestinationRoot: s.DestinationRoot,
		Label:           s.Label,
		Revision:        s.Revision,
		Subdirectories:  subdirs,
	}
}
