package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-dock/internal/config"
	"github.com/grindlemire/go-dock/internal/debug"
)

// rootOptions carries the persistent flags and the loaded config to the
// subcommands.
type rootOptions struct {
	configPath string
	debugLog   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "boxdock",
		Short: "Solve box, split and dock layouts from the command line",
		Long: `boxdock runs the box sizing engine on ad hoc sizers and lays out
dock snapshots saved as JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			path := opts.debugLog
			if path == "" {
				path = cfg.DebugLog
			}
			if path != "" {
				if err := debug.Init(path, debug.ParseLevel(cfg.LogLevel)); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file with layout defaults")
	cmd.PersistentFlags().StringVar(&opts.debugLog, "debug-log", "", "append JSON debug logs to this file")

	cmd.AddCommand(
		newCalcCmd(),
		newAdjustCmd(),
		newRestoreCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boxdock version %s\n", version)
		},
	}
}
