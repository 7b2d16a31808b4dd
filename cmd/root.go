package cmd

import (
	"fmt"

	"github.com/abhisek/shapes/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "shapes",
	Short:        "Shape flashcards and quizzes for kids",
	Long:         "Shape Explorer: terminal flashcards and a timed multiple-choice quiz that teach children the names of shapes.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags resolveConfig reads.
func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/shapes/config.yaml)")
	cmd.PersistentFlags().String("catalog", "", "Path to a custom shape catalog JSON file (overrides catalog.path)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
}

// resolveConfig loads the config file named by --config (or the default
// location) and applies the persistent flag overrides on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	overridden := false
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
		overridden = true
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.Catalog.Path = p
		overridden = true
	}
	if overridden {
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
