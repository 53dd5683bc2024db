package main

import (
	"log/slog"

	"github.com/katalvlaran/netcheck/checker"
	"github.com/katalvlaran/netcheck/network"
	"github.com/katalvlaran/netcheck/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewCheckCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "check"
	cmd.Short = "Check that every network layer is fully connected"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runCheck(cmd, v, fs) }

	cmd.Flags().StringSlice("modes", []string{"walk", "auto", "transit"}, "The `modes` to check, in order")
	cmd.Flags().Bool("turns", false, "Honour turn restrictions in the auto network (full path search)")
	cmd.Flags().Bool("high-memory", false, "Check the auto network with a parallel skim (no node lists)")
	cmd.Flags().Int("skim-workers", 0, "Parallel origins for --high-memory (0 = GOMAXPROCS)")
	cmd.Flags().Bool("fail-on-error", false, "Exit with an error when any disconnection is found")

	return cmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}
	modes, err := network.ParseModes(v.GetStringSlice("modes"))
	if err != nil {
		return err
	}
	nets, err := loadNetworks(v, fs, modes)
	if err != nil {
		return err
	}
	opts, err := checkerOptions(v)
	if err != nil {
		return err
	}
	opts = append(opts, checker.WithLogger(slog.Default()), checker.WithModes(modes...))
	for _, n := range nets {
		slog.Debug("network built", "mode", n.Mode, "stats", n.Graph.Stats())
		opts = append(opts, checker.WithNetwork(n))
	}

	c := checker.New(opts...)
	if err := c.Run(cmd.Context()); err != nil {
		return err
	}
	if err := report.Summary(cmd.OutOrStdout(), c); err != nil {
		return err
	}
	if c.HasCriticalErrors() {
		if err := report.Findings(cmd.OutOrStdout(), c.Errors, format); err != nil {
			return err
		}
	}
	if v.GetBool("fail-on-error") {
		return c.Err()
	}

	return nil
}
