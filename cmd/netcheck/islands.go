package main

import (
	"log/slog"

	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
	"github.com/katalvlaran/netcheck/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewIslandsCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "islands"
	cmd.Aliases = []string{"island"}
	cmd.Short = "List the islands of one network layer"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runIslands(cmd, v, fs) }

	cmd.Flags().String("mode", "walk", "The `mode` to inspect {walk|auto|transit}")

	return cmd
}

func runIslands(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}
	mode, err := network.ParseMode(v.GetString("mode"))
	if err != nil {
		return err
	}
	nets, err := loadNetworks(v, fs, []network.Mode{mode})
	if err != nil {
		return err
	}
	det, err := detectorFromViper(v)
	if err != nil {
		return err
	}
	n := nets[0]
	is, err := det.Detect(cmd.Context(), n.Graph, n.Candidates())
	if err != nil {
		return err
	}
	s := islands.Summarize(is)
	slog.Info("islands detected", "mode", mode, "islands", s.Count, "disconnected", s.Disconnected)

	return report.Islands(cmd.OutOrStdout(), is, n.Correspondence, format)
}
