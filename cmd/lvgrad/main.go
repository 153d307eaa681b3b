// SPDX-License-Identifier: MIT

// Command lvgrad loads scalar expressions from HCL files, prints their
// topological order, and renders them as Graphviz DOT.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until --log-level is parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the command tree to the given streams; split from main for tests.
func run(outW, errW io.Writer, args []string) error {
	root := newRootCmd(outW, errW)
	root.SetArgs(args)

	return root.ExecuteContext(context.Background())
}
