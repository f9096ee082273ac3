// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/copurchase/dfs"
	"github.com/katalvlaran/copurchase/internal/config"
	"github.com/katalvlaran/copurchase/loader"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "inspect <edge-list>",
		Short: "Print load and structure statistics for an edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(config.Log{
				Verbose: v.GetBool(config.KeyVerbose),
				Format:  v.GetString(config.KeyLogFormat),
			})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			opts := []loader.Option{loader.WithLogger(logger)}
			if strict {
				opts = append(opts, loader.WithStrict())
			}
			g, ls, err := loader.LoadFile(args[0], opts...)
			if err != nil {
				return err
			}
			gs := g.Stats()
			comps := dfs.ConnectedComponents(g)
			_, largest := comps.Largest()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			rows := []struct {
				name  string
				value int
			}{
				{"lines", ls.Lines},
				{"comments", ls.Comments},
				{"skipped", ls.Skipped},
				{"duplicates", ls.Duplicates},
				{"self-loops", ls.SelfLoops},
				{"nodes", gs.NodeCount},
				{"edges", gs.EdgeCount},
				{"isolated", gs.IsolatedCount},
				{"max degree", gs.MaxDegree},
				{"components", comps.Count()},
				{"largest component", largest},
			}
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\n", r.name, r.value)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed lines")

	return cmd
}
