package main

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/builder"
	"github.com/katalvlaran/netcheck/network"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errUnknownTopology = errors.New("unknown topology")

func NewGenCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "gen"
	cmd.Aliases = []string{"generate"}
	cmd.Short = "Generate a synthetic supply file"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGen(cmd, v, fs) }

	cmd.Flags().String("topology", "grid", "The `topology` to generate {grid|path|cycle|star|sparse}")
	cmd.Flags().Int("rows", 3, "Grid rows")
	cmd.Flags().Int("cols", 3, "Grid columns")
	cmd.Flags().Int("n", 5, "Node count for path, cycle, star and sparse")
	cmd.Flags().Float64("p", 0.3, "Link probability for sparse")
	cmd.Flags().Int64("seed", 1, "Random seed for link lengths and sparse links")
	cmd.Flags().Int("islands", 0, "Number of isolated nodes appended after the main component")
	cmd.Flags().Bool("one-way", false, "Emit one-way (A to B) links")
	cmd.Flags().Bool("stops", false, "Mark every generated node as a transit stop")
	cmd.Flags().StringP("output", "o", "", "Write to `path` instead of stdout")

	return cmd
}

func topology(v *viper.Viper) (builder.Constructor, error) {
	switch strings.ToLower(v.GetString("topology")) {
	case "grid":
		return builder.Grid(v.GetInt("rows"), v.GetInt("cols")), nil
	case "path":
		return builder.Path(v.GetInt("n")), nil
	case "cycle":
		return builder.Cycle(v.GetInt("n")), nil
	case "star":
		return builder.Star(v.GetInt("n")), nil
	case "sparse":
		return builder.RandomSparse(v.GetInt("n"), v.GetFloat64("p")), nil
	}
	return nil, errors.Wrapf(errUnknownTopology, "%q", v.GetString("topology"))
}

func runGen(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	base, err := topology(v)
	if err != nil {
		return err
	}
	opts := []builder.BuilderOption{builder.WithSeed(v.GetInt64("seed"))}
	if v.GetBool("one-way") {
		opts = append(opts, builder.WithDirection(network.AB))
	}
	if v.GetBool("stops") {
		opts = append(opts, builder.WithTransitStops())
	}
	cons := []builder.Constructor{base}
	for i := 0; i < v.GetInt("islands"); i++ {
		cons = append(cons, builder.Path(1))
	}

	s, err := builder.BuildSupply(opts, cons...)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := network.WriteHCL(&buf, s); err != nil {
		return err
	}
	slog.Info("supply generated", "topology", v.GetString("topology"), "nodes", len(s.Nodes), "links", len(s.Links))

	out := v.GetString("output")
	if out == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	return afero.WriteFile(fs, out, buf.Bytes(), 0o644)
}
