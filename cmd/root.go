package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kebairia/addonsbackup/internal/config"
	"github.com/kebairia/addonsbackup/internal/logger"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log logger.Logger
}

// setup loads the configuration and initializes the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Load(a.configPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := logger.Options{Level: a.cfg.Log.Level, Development: a.cfg.Log.Development}
	if a.logLevel != "" {
		opts.Level = a.logLevel
	}
	log, err := logger.Init(opts)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded", "path", a.configPath)
	return nil
}

// NewRootCommand builds the addonsbackup command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "addonsbackup",
		Short: "Back up World of Warcraft addons and saved variables",
		Long: `addonsbackup copies the Interface and WTF folders of a game
installation into <destination>/<label>/<revision> - <dd.MM.yyyy_HH.mm>,
reporting progress as it goes. Inputs left out on the command line fall
back to the values saved with "addonsbackup config save".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().
		StringVarP(&a.configPath, "config", "c", config.DefaultPath(), "path to YAML config file")
	rootCmd.PersistentFlags().
		StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBackupCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	err := NewRootCommand().Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
