// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/builder"
	"github.com/katalvlaran/lvgrad/exprfile"
	"github.com/katalvlaran/lvgrad/internal/ctxlog"
	"github.com/katalvlaran/lvgrad/render"
	"github.com/katalvlaran/lvgrad/topo"
	"github.com/katalvlaran/lvgrad/value"
)

// logLevels maps --log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newRootCmd builds the command tree. Output goes to outW, logs to errW.
func newRootCmd(outW, errW io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "lvgrad",
		Short:         "Inspect scalar computation graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logLevels[strings.ToLower(logLevel)]
			if !ok {
				return fmt.Errorf("invalid --log-level %q (want debug, info, warn or error)", logLevel)
			}
			logger := slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newOrderCmd(), newDotCmd(), newDemoCmd())

	return root
}

// newOrderCmd prints the linearized order of a root declared in a file.
func newOrderCmd() *cobra.Command {
	var file, rootName string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the topological order of an expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prog, root, err := loadRoot(cmd.Context(), file, rootName)
			if err != nil {
				return err
			}
			order := topo.Linearize(root)
			ctxlog.FromContext(cmd.Context()).Debug("Linearized expression", "root", root.ID(), "nodes", len(order))

			return writeOrder(cmd.OutOrStdout(), prog, order)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "HCL expression file")
	cmd.Flags().StringVarP(&rootName, "root", "r", "", "name of the root node (default: last declared)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// newDotCmd renders an expression from a file as DOT.
func newDotCmd() *cobra.Command {
	var file, rootName, out, rankDir string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render an expression as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !render.IsRankDir(rankDir) {
				return fmt.Errorf("invalid --rankdir %q (want TB, LR, BT or RL)", rankDir)
			}
			prog, root, err := loadRoot(cmd.Context(), file, rootName)
			if err != nil {
				return err
			}

			return writeDOT(cmd.Context(), cmd.OutOrStdout(), out, root,
				render.WithRankDir(rankDir), render.WithNames(prog.NameMap()))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "HCL expression file")
	cmd.Flags().StringVarP(&rootName, "root", "r", "", "name of the root node (default: last declared)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: stdout)")
	cmd.Flags().StringVar(&rankDir, "rankdir", render.DefaultRankDir, "layout direction: TB, LR, BT, RL")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// newDemoCmd renders a built-in expression.
func newDemoCmd() *cobra.Command {
	var neuron bool
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a built-in example expression as DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := value.NewGraph()
			var root value.Node
			if neuron {
				var err error
				root, err = builder.Build(g, builder.Neuron([]float64{2, 0}, []float64{-3, 1}, 6.8813735870195432))
				if err != nil {
					return err
				}
			} else {
				v1 := g.Leaf(0.5)
				v2 := g.Leaf(0.3)
				root = v1.Add(v2).Sub(v2).Mul(v2).Tanh()
			}

			return writeDOT(cmd.Context(), cmd.OutOrStdout(), out, root)
		},
	}
	cmd.Flags().BoolVar(&neuron, "neuron", false, "render tanh(x1*w1 + x2*w2 + b) instead of the arithmetic example")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: stdout)")

	return cmd
}

// loadRoot loads file and resolves rootName, defaulting to the last
// declared name.
func loadRoot(ctx context.Context, file, rootName string) (*exprfile.Program, value.Node, error) {
	prog, err := exprfile.LoadFile(ctx, file)
	if err != nil {
		return nil, value.Node{}, err
	}
	if rootName == "" {
		names := prog.Names()
		if len(names) == 0 {
			return nil, value.Node{}, fmt.Errorf("%s declares no expressions", file)
		}
		rootName = names[len(names)-1]
	}
	root, err := prog.Lookup(rootName)
	if err != nil {
		return nil, value.Node{}, err
	}

	return prog, root, nil
}

// writeOrder prints one line per node: id, name, op, data, grad.
func writeOrder(w io.Writer, prog *exprfile.Program, order []value.Node) error {
	for _, n := range order {
		name, ok := prog.NameOf(n.ID())
		if !ok {
			name = "-"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", n.ID(), name, n.Kind(),
			value.FormatScalar(n.Data()), value.FormatScalar(n.Grad())); err != nil {
			return err
		}
	}

	return nil
}

// writeDOT renders root to path, or to stdout when path is empty.
func writeDOT(ctx context.Context, stdout io.Writer, path string, root value.Node, opts ...render.Option) error {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		return render.WriteDOT(stdout, root, opts...)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WriteDOT(f, root, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	logger.Info("Wrote DOT file", "path", path, "root", root.ID())

	return nil
}
