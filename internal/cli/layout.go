package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodegrid/manhattan/config"
	"github.com/nodegrid/manhattan/layout"
	"github.com/nodegrid/manhattan/parser"
	"github.com/nodegrid/manhattan/render"
	"github.com/nodegrid/manhattan/schedule"
)

type layoutFlags struct {
	configPath  string
	format      string
	output      string
	timeout     int
	debug       bool
	strict      bool
	fatalErrors bool
	undirected  bool
}

func newLayoutCmd() *cobra.Command {
	flags := layoutFlags{
		timeout:     5,
		strict:      true,
		fatalErrors: true,
	}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Parse, lay out and render a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				flags.configPath = path
			}
			return runLayout(cmd, args[0], &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", string(render.ASCII), "output format: ascii, graphviz, debug")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", flags.timeout, "layout wall-clock timeout in seconds")
	cmd.Flags().BoolVar(&flags.debug, "debug", flags.debug, "emit layout diagnostic traces")
	cmd.Flags().BoolVar(&flags.strict, "strict", flags.strict, "enforce attribute validation")
	cmd.Flags().BoolVar(&flags.fatalErrors, "fatal-errors", flags.fatalErrors, "attribute errors abort instead of warn")
	cmd.Flags().BoolVar(&flags.undirected, "undirected", flags.undirected, "shortcut for graph type=undirected")

	return cmd
}

func runLayout(cmd *cobra.Command, input string, flags *layoutFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	} else {
		cfg.TimeoutSecs = flags.timeout
		cfg.Debug = flags.debug
		cfg.Strict = flags.strict
		cfg.FatalErrors = flags.fatalErrors
		cfg.Undirected = flags.undirected
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("layout: open %s: %w", input, err)
	}
	defer f.Close()

	g, err := parser.Parse(f, cfg.GraphOptions()...)
	if err != nil {
		return fmt.Errorf("layout: parse %s: %w", input, err)
	}
	logger.Infof("parsed %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	eng := layout.New(g, cfg.LayoutOptions(os.Stderr)...)
	result, err := eng.Run(ctx)
	if err != nil {
		if !errors.Is(err, schedule.ErrBudgetExhausted) {
			return fmt.Errorf("layout: %w", err)
		}
		logger.Warnf("layout: try budget exhausted, rendering best partial layout")
	}
	logger.Infof("laid out with score %d, %d warnings", result.Score, len(result.Warnings))
	for _, w := range result.Warnings {
		logger.Warnf("%v", w)
	}

	out := os.Stdout
	if flags.output != "" {
		created, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("layout: create %s: %w", flags.output, err)
		}
		defer created.Close()
		out = created
	}

	if err := render.Render(out, g, render.Format(flags.format)); err != nil {
		return fmt.Errorf("layout: render: %w", err)
	}
	return nil
}
