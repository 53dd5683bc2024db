package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/bfs"
	"github.com/katalvlaran/netcheck/checker"
	"github.com/katalvlaran/netcheck/dfs"
	"github.com/katalvlaran/netcheck/dijkstra"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
	"github.com/katalvlaran/netcheck/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetNetworkFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("file", "f", "supply.hcl", "The supply `file` to check")
	cmd.PersistentFlags().String("engine", "bfs", "The path engine used for island detection {bfs|dfs|dijkstra}")
	cmd.PersistentFlags().String("detector", "probe", "The island detector {probe|scc}")
	cmd.PersistentFlags().String("link-filter", "", "A CEL `expression` selecting links, e.g. 'link_type != \"ferry\"'")
	cmd.PersistentFlags().String("format", "table", "The output format {table|md|csv|tsv|simple}")
	_ = cmd.MarkPersistentFlagFilename("file", "hcl")
}

// loadNetworks reads the supply file and builds the network of every mode.
func loadNetworks(v *viper.Viper, fs afero.Fs, modes []network.Mode) ([]*network.ModeNetwork, error) {
	supply, err := network.LoadHCL(fs, v.GetString("file"))
	if err != nil {
		return nil, err
	}
	var opts []network.BuildOption
	if expr := v.GetString("link-filter"); expr != "" {
		f, err := network.NewLinkFilter(expr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, network.WithLinkFilter(f))
	}
	out := make([]*network.ModeNetwork, 0, len(modes))
	for _, m := range modes {
		n, err := supply.Build(m, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "build %s network", m)
		}
		out = append(out, n)
	}

	return out, nil
}

func engineFactory(name string) (checker.EngineFactory, error) {
	switch name {
	case "bfs":
		return func() islands.PathEngine { return bfs.NewEngine() }, nil
	case "dfs":
		return func() islands.PathEngine { return dfs.NewEngine() }, nil
	case "dijkstra":
		return func() islands.PathEngine { return dijkstra.NewEngine() }, nil
	}
	return nil, errors.Newf("unknown engine: %s", name)
}

func detectorFromViper(v *viper.Viper) (islands.Detector, error) {
	switch d := v.GetString("detector"); d {
	case "probe":
		f, err := engineFactory(v.GetString("engine"))
		if err != nil {
			return nil, err
		}
		return islands.NewProbeDetector(f()), nil
	case "scc":
		return islands.NewSCCDetector(), nil
	default:
		return nil, errors.Newf("unknown detector: %s", d)
	}
}

// checkerOptions translates flags into checker options.
func checkerOptions(v *viper.Viper) ([]checker.Option, error) {
	f, err := engineFactory(v.GetString("engine"))
	if err != nil {
		return nil, err
	}
	opts := []checker.Option{checker.WithEngine(f)}
	switch d := v.GetString("detector"); d {
	case "probe":
	case "scc":
		opts = append(opts, checker.WithStrictIslands())
	default:
		return nil, errors.Newf("unknown detector: %s", d)
	}
	if v.GetBool("turns") {
		opts = append(opts, checker.WithTurnRestrictions())
	}
	if v.GetBool("high-memory") {
		opts = append(opts, checker.WithHighMemory(), checker.WithSkimWorkers(v.GetInt("skim-workers")))
	}

	return opts, nil
}

func validateFormat(format string) error {
	for _, f := range report.Formats() {
		if f == format {
			return nil
		}
	}
	return errors.Wrapf(report.ErrUnknownFormat, "%q", format)
}
