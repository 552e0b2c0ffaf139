package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-drift/datetimepicker/cmd/drift-datetimepicker/internal/config"
	"github.com/go-drift/datetimepicker/pkg/platform"
	"github.com/go-drift/datetimepicker/pkg/widgets"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var (
		osVersion string
		display   string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the effective display and reserved height",
		Long: `Resolve a requested display and mode against an iOS version.

Versions before iOS 14 only support the spinner style, so any other
display is downgraded. Heights come from datetimepicker.yaml overrides,
the fixed spinner height, or an estimate from font metrics.`,
		Example: `  drift-datetimepicker resolve --os-version 13.7 --display inline
  drift-datetimepicker resolve --os-version 17.2 --display compact --mode time`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig()
			if err != nil {
				return err
			}

			requested, err := config.ParseDisplay(display)
			if err != nil {
				return err
			}
			m, err := config.ParseMode(mode)
			if err != nil {
				return err
			}

			version := osVersion
			if version == "" {
				version = cfg.PlatformVersion
			}
			if version == "" {
				return fmt.Errorf("no platform version: pass --os-version or set picker.platformVersion")
			}
			if _, ok := platform.MajorVersion(version); !ok {
				slog.Warn("unparseable platform version, assuming spinner only", "version", version)
			}

			effective := widgets.ResolveDisplay(requested, version)
			slog.Debug("resolved display", "requested", requested, "effective", effective, "version", version)

			height, err := cfg.HeightResolver().Query(effective, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:   %s\n", version)
			fmt.Fprintf(out, "requested: %s\n", requested)
			fmt.Fprintf(out, "effective: %s\n", effective)
			fmt.Fprintf(out, "mode:      %s\n", m)
			fmt.Fprintf(out, "height:    %g (%s)\n", height, heightSource(cfg, effective, m))
			return nil
		},
	}

	cmd.Flags().StringVar(&osVersion, "os-version", "", "iOS version, e.g. 16.4 (default: picker.platformVersion)")
	cmd.Flags().StringVar(&display, "display", string(widgets.DisplayDefault), "Requested display: default, spinner, compact, inline")
	cmd.Flags().StringVar(&mode, "mode", string(widgets.ModeDate), "Picker mode: date, time, datetime, countdown")

	return cmd
}

func heightSource(cfg *config.Resolved, display widgets.Display, mode widgets.Mode) string {
	if h, ok := cfg.Heights[display][mode]; ok && h > 0 {
		return "config"
	}
	if display == widgets.DisplaySpinner || mode == widgets.ModeCountdown {
		return "fixed"
	}
	return "estimated"
}
