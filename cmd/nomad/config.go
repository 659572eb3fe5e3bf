package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-nomad/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use as YAML, after the config
search order and --difficulty are applied. The output is a valid config
file and can be edited and passed back with --config.

Examples:
  nomad config > ~/.nomad/configs/nomad.yaml
  nomad config --difficulty hard
  nomad config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(defaultVariant))
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
