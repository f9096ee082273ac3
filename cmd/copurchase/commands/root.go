// SPDX-License-Identifier: MIT

// Package commands wires the copurchase CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/copurchase/internal/config"
)

// Version is overwritten at link time.
var Version = "dev"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around a fresh viper instance, so
// tests can run several trees side by side.
func NewRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "copurchase",
		Short: "Co-purchase graph analytics",
		Long: `copurchase - centrality and clustering for product co-purchase graphs.

Reads an undirected edge list (two product ids per line), computes degree
centrality, sampled closeness centrality and local clustering coefficients,
and reports the most central products.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.ReadFile(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-format", "auto", "Log encoding: auto, console or json")
	mustBind(v, config.KeyVerbose, pf.Lookup("verbose"))
	mustBind(v, config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(newAnalyzeCmd(v), newGenerateCmd(v), newInspectCmd(v))

	return root
}

func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("commands: bind %s: %v", key, err))
	}
}
