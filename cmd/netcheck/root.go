package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "netcheck"
	cmd.Short = "netcheck finds disconnected islands in transportation networks"
	cmd.Version = cobrax.VersionFunc("", "", "")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}
	SetNetworkFlags(cmd)

	cmd.AddCommand(NewCheckCommand(v, fs))
	cmd.AddCommand(NewIslandsCommand(v, fs))
	cmd.AddCommand(NewGenCommand(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
