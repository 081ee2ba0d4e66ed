// SPDX-License-Identifier: MIT

// Package cli wires the graphkit command line: flags, an optional YAML
// config file, interactive prompts for missing input, and report rendering.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/pipeline"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "graphkit",
		Short:        "Realize a random degree sequence and analyze the resulting graph.",
		Long:         "graphkit draws a random degree sequence, realizes it with Havel–Hakimi, looks for an Eulerian trail, then reports shortest distances and a minimum spanning tree over randomly weighted edges.",
		Args:         cobra.NoArgs,
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	defaults := pipeline.DefaultConfig()
	rootCmd.Flags().IntVarP(&input.vertices, "vertices", "n", 0, "number of vertices (prompted when omitted on a terminal)")
	rootCmd.Flags().IntVarP(&input.source, "source", "s", 0, "source vertex for shortest paths (prompted when omitted on a terminal)")
	rootCmd.Flags().Int64Var(&input.seed, "seed", 0, "random seed, 0 uses the wall clock")
	rootCmd.Flags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&input.store, "store", defaults.Store, "adjacency store: dense or sparse")
	rootCmd.Flags().StringVar(&input.realize, "realize", defaults.Realize, "Havel–Hakimi mode: tracked or positional")
	rootCmd.Flags().StringVar(&input.start, "start", defaults.Start, "Eulerian start vertex: lowest-odd or zero")
	rootCmd.Flags().StringVar(&input.mst, "mst", defaults.MST, "spanning tree algorithm: prim or kruskal")
	rootCmd.Flags().Int64Var(&input.weightMin, "weight-min", defaults.WeightMin, "smallest random edge weight")
	rootCmd.Flags().Int64Var(&input.weightMax, "weight-max", defaults.WeightMax, "largest random edge weight")
	rootCmd.Flags().StringVarP(&input.output, "output", "o", OutputText, "report format: text or yaml")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd.ErrOrStderr(), input.verbose)
		ctx := pipeline.WithLogger(ctx, logger)

		prompter := input.prompter
		if prompter == nil {
			prompter = newSurveyPrompter(os.Stdin, os.Stdout, cmd.ErrOrStderr())
		}
		cfg, err := input.resolve(cmd.Flags(), prompter)
		if err != nil {
			return err
		}
		logger.WithField("config", cfg).Debug("resolved configuration")

		report, err := pipeline.Run(ctx, cfg)
		if err != nil {
			return errors.Wrap(err, "run")
		}

		return render(cmd.OutOrStdout(), input.output, report)
	}
}

func render(w io.Writer, format string, report *pipeline.Report) error {
	switch format {
	case OutputYAML:
		return report.WriteYAML(w)
	case OutputText, "":
		return report.WriteText(w)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    !checkIfTerminal(w),
		DisableTimestamp: true,
	})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
