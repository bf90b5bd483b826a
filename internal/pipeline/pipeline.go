// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"synblocks-core/engine"
	"synblocks-core/permutation"
	"synblocks/internal/config"
	"synblocks/internal/writers"
)

// Config controls a reconciliation run.
type Config struct {
	CoordsFiles []string // ordered coarsest -> finest
	GroupsFile  string   // optional block -> group TSV
	Stages      []config.Stage
	OutDir      string
	Logger      *log.Logger
}

// Run executes the pipeline and returns the final stage's collection
// (renumbered, as written), so callers can list it to stdout.
func Run(ctx context.Context, cfg Config) (permutation.PermVec, error) {
	if len(cfg.CoordsFiles) == 0 {
		return nil, fmt.Errorf("no input coordinates files")
	}
	if len(cfg.Stages) == 0 {
		cfg.Stages = config.Single(0, 0).Stages
	}

	// Inputs are independent; parse them in parallel.
	scales := make([]permutation.PermVec, len(cfg.CoordsFiles))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range cfg.CoordsFiles {
		i, path := i, path
		g.Go(func() error {
			perms, err := permutation.ReadCoords(path)
			if err != nil {
				return err
			}
			scales[i] = perms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, perms := range scales {
		cfg.Logger.Info("parsed decomposition",
			"file", cfg.CoordsFiles[i],
			"sequences", len(perms),
			"blocks", permutation.BlockCount(perms))
	}

	merged := scales[0]
	for i := 1; i < len(scales); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := engine.Merge(merged, scales[i])
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", cfg.CoordsFiles[i], err)
		}
		cfg.Logger.Info("merged scale",
			"file", cfg.CoordsFiles[i],
			"blocks", permutation.BlockCount(out))
		merged = out
	}

	groups := engine.BlockGroups{}
	if cfg.GroupsFile != "" {
		var err error
		groups, err = engine.LoadGroupsTSV(cfg.GroupsFile)
		if err != nil {
			return nil, err
		}
		cfg.Logger.Info("loaded block groups", "file", cfg.GroupsFile, "entries", len(groups))
	}

	// Stages read the merged collection without touching it; emit them
	// in parallel.
	results := make([]permutation.PermVec, len(cfg.Stages))
	sg, sctx := errgroup.WithContext(ctx)
	for i, st := range cfg.Stages {
		i, st := i, st
		sg.Go(func() error {
			if err := sctx.Err(); err != nil {
				return err
			}
			out, err := runStage(merged, groups, st, stageDir(cfg, i))
			if err != nil {
				return err
			}
			results[i] = out
			cfg.Logger.Info("stage complete",
				"min-block", st.MinBlock,
				"min-flank", st.MinFlank,
				"sequences", len(out),
				"blocks", permutation.BlockCount(out))
			return nil
		})
	}
	if err := sg.Wait(); err != nil {
		return nil, err
	}
	return results[len(results)-1], nil
}

// stageDir picks the output directory for stage i: the out-dir itself
// for single-stage runs, a min-block-named subdirectory otherwise.
func stageDir(cfg Config, i int) string {
	if len(cfg.Stages) == 1 {
		return cfg.OutDir
	}
	return filepath.Join(cfg.OutDir, strconv.Itoa(cfg.Stages[i].MinBlock))
}

func runStage(merged permutation.PermVec, groups engine.BlockGroups, st config.Stage, dir string) (permutation.PermVec, error) {
	filtered, err := engine.FilterBySize(merged, groups, st.MinBlock, st.MinFlank)
	if err != nil {
		return nil, err
	}
	// FilterBySize copies, so renumbering is private to this stage.
	permutation.Renumerate(filtered)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, rep := range writers.Reports() {
		if err := writeReport(dir, rep, filtered); err != nil {
			return nil, err
		}
	}
	return filtered, nil
}

func writeReport(dir string, rep writers.Report, perms permutation.PermVec) error {
	path := filepath.Join(dir, rep.Filename)
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.Write(fh, perms); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}
