// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"synblocks/internal/cli"
	"synblocks/internal/config"
	"synblocks/internal/logx"
	"synblocks/internal/pipeline"
	"synblocks/internal/version"
	"synblocks/internal/writers"
)

// RunContext parses argv, runs the reconciliation pipeline, and
// returns a process exit code. All output except per-stage report
// files goes through stdout/stderr so tests can capture it.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("synblocks")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "synblocks version %s\n", version.Version)
		return 0
	}

	logger := logx.New(stderr, opts.Quiet)

	cfg := config.Single(opts.MinBlock, opts.MinFlank)
	if opts.StagesFile != "" {
		cfg, err = config.Load(opts.StagesFile)
		if err != nil {
			logger.Error("loading stages", "err", err)
			return 2
		}
	}

	final, err := pipeline.Run(parent, pipeline.Config{
		CoordsFiles: opts.CoordsFiles,
		GroupsFile:  opts.GroupsFile,
		Stages:      cfg.Stages,
		OutDir:      opts.OutDir,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("pipeline failed", "err", err)
		return 1
	}

	if opts.PrintBlocks {
		if err := writers.WriteBlocks(stdout, final); err != nil && !writers.IsBrokenPipe(err) {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
