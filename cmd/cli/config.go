package main

import (
	"fmt"
	"io"

	"github.com/dsjohal14/equipdash/internal/libs/config"
	"github.com/dsjohal14/equipdash/internal/libs/obs"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the environment configuration",
		Long: `Inspect the configuration the dashboard builds from VITE_* environment
variables and .env files.

Values are read from the process environment first, then from
.env.<mode>.local, .env.<mode>, .env.local and .env in --env-dir.

Examples:
  # Show the status summary
  equipdash config status

  # Fail a deploy step when the production config is invalid
  equipdash config validate --mode production

  # Dump the resolved record as YAML
  equipdash config show -o yaml`,
	}

	cmd.AddCommand(
		newShowCmd(flags),
		newStatusCmd(flags),
		newValidateCmd(flags),
		newDataSourceCmd(flags),
		newVarsCmd(flags),
	)
	return cmd
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			warns := cfg.Warnings()
			if !showSecrets {
				cfg = cfg.Redacted()
			}

			out := cmd.OutOrStdout()
			if flags.format == formatText {
				if err := writeYAML(out, cfg); err != nil {
					return err
				}
				writeWarnings(out, warns)
				return nil
			}
			return render(out, flags.format, cfg, nil)
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print secrets instead of masking them")
	return cmd
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the configuration status report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			st := cfg.Status()
			return render(cmd.OutOrStdout(), flags.format, st, func(w io.Writer) {
				fmt.Fprintf(w, "Mode:        %s\n", cfg.Mode)
				fmt.Fprintf(w, "Valid:       %s\n", yesNo(st.IsValid))
				fmt.Fprintf(w, "Data source: %s\n", st.DataSource)
				fmt.Fprintf(w, "Supabase:    %s\n", configuredLabel(st.SupabaseConfigured))
				fmt.Fprintf(w, "Features:    auth=%s realTime=%s fileUploads=%s\n",
					onOff(st.Features.Auth), onOff(st.Features.RealTime), onOff(st.Features.FileUploads))
				writeList(w, "Errors", st.Errors)
				writeWarnings(w, cfg.Warnings())
			})
		},
	}
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration; exits non-zero when invalid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			v := cfg.Validate()
			err = render(cmd.OutOrStdout(), flags.format, v, func(w io.Writer) {
				if v.IsValid {
					fmt.Fprintln(w, "Configuration is valid")
					return
				}
				writeList(w, "Configuration is invalid", v.Errors)
			})
			if err != nil {
				return err
			}
			if !v.IsValid {
				return errInvalidConfig
			}
			return nil
		},
	}
}

func newDataSourceCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "data-source",
		Short: "Print which data source the dashboard uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			ds := cfg.DataSourceConfig()
			return render(cmd.OutOrStdout(), flags.format, ds, func(w io.Writer) {
				fmt.Fprintf(w, "%s (hardcoded=%t supabase=%t)\n", ds.DataSource, ds.UseHardcodedData, ds.SupabaseEnabled)
			})
		},
	}
}

func newVarsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the environment variables and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := config.Vars()
			return render(cmd.OutOrStdout(), flags.format, vars, func(w io.Writer) {
				writeVarsTable(w, vars)
			})
		},
	}
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		Dir:  flags.envDir,
		Mode: flags.mode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	obs.InitFromConfig(cfg)
	logger := obs.Logger("cli")
	logger.Debug().
		Str("env_dir", flags.envDir).
		Str("mode", string(cfg.Mode)).
		Msg("configuration loaded")

	return cfg, nil
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func writeWarnings(w io.Writer, warns []string) {
	writeList(w, "Warnings", warns)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func configuredLabel(b bool) string {
	if b {
		return "configured"
	}
	return "not configured"
}
