// Package cmd implements the drift-datetimepicker CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/datetimepicker/cmd/drift-datetimepicker/internal/config"
	"github.com/go-drift/datetimepicker/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	debug bool
	dir   string
}

// NewRootCmd builds the command tree writing to out and logging to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "drift-datetimepicker",
		Short: "Inspect native date/time picker resolution",
		Long: `drift-datetimepicker reports how the Drift date/time picker adapts a
requested configuration to an iOS version: which display style is actually
used and what height the picker reserves before it renders.

Settings are read from datetimepicker.yaml in the project root if present.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: opts.debug})
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.dir, "dir", "", "Project directory (default: nearest directory with datetimepicker.yaml or go.mod)")

	root.AddCommand(newResolveCmd(&opts))
	root.AddCommand(newConfigCmd(&opts))

	return root
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (o *rootOptions) resolveConfig() (*config.Resolved, error) {
	dir := o.dir
	if dir == "" {
		var err error
		dir, err = config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded config", "root", cfg.Root, "module", cfg.ModulePath)
	return cfg, nil
}
