package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print datetimepicker.yaml with defaults applied.

The output is valid datetimepicker.yaml and can be used as a starting point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg.File())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# root: %s\n", cfg.Root)
			if cfg.ModulePath != "" {
				fmt.Fprintf(out, "# module: %s\n", cfg.ModulePath)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
