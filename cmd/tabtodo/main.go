// Package main implements the tabtodo server CLI.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/tabtodo/internal/todo/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var loadOpts app.LoadOptions

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tabtodo",
	Short:        "Multi-user todo service",
	Version:      app.BuildVersion,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(loadOpts)
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		return application.Run()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(loadOpts)
		if err != nil {
			return err
		}

		version, err := app.Migrate(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
		return nil
	},
}

func addConfigFlags(flags *pflag.FlagSet, opts *app.LoadOptions) {
	flags.StringVar(&opts.EnvFile, "env-file", "", "env file to load (default .env when present)")
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "TOML config file (default $TODO_CONFIG_FILE)")
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags(), &loadOpts)
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
