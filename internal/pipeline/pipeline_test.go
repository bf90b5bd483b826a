package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synblocks-core/permutation"
	"synblocks/internal/config"
	"synblocks/internal/logx"
	"synblocks/internal/writers"
)

func writeCoordsFile(t *testing.T, dir, name string, perms permutation.PermVec) string {
	t.Helper()
	path := filepath.Join(dir, name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, writers.WriteCoords(fh, perms))
	require.NoError(t, fh.Close())
	return path
}

func block(id, start, end int) permutation.Block {
	return permutation.Block{ID: id, Sign: permutation.SignForward, Start: start, End: end}
}

func twoScales(t *testing.T, dir string) (string, string) {
	t.Helper()
	loose := permutation.PermVec{
		{SeqID: 1, SeqName: "chrA", NucLength: 1000, Blocks: []permutation.Block{block(1, 0, 100)}},
		{SeqID: 2, SeqName: "chrB", NucLength: 1000, Blocks: []permutation.Block{block(1, 0, 100)}},
	}
	fine := permutation.PermVec{
		{SeqID: 1, SeqName: "chrA", NucLength: 1000, Blocks: []permutation.Block{block(5, 150, 200)}},
		{SeqID: 2, SeqName: "chrB", NucLength: 1000, Blocks: []permutation.Block{block(5, 150, 200)}},
	}
	return writeCoordsFile(t, dir, "loose.txt", loose), writeCoordsFile(t, dir, "fine.txt", fine)
}

func TestRunSingleStage(t *testing.T) {
	dir := t.TempDir()
	loosePath, finePath := twoScales(t, dir)
	outDir := filepath.Join(dir, "out")

	final, err := Run(context.Background(), Config{
		CoordsFiles: []string{loosePath, finePath},
		OutDir:      outDir,
		Logger:      logx.New(io.Discard, true),
	})
	require.NoError(t, err)

	// Merge inserted the fine pair under a fresh id; renumbering keeps
	// ids 1 and 2.
	require.Len(t, final, 2)
	for _, p := range final {
		require.Len(t, p.Blocks, 2)
		assert.Equal(t, 1, p.Blocks[0].ID)
		assert.Equal(t, 2, p.Blocks[1].ID)
		assert.Equal(t, 150, p.Blocks[1].Start)
	}

	for _, rep := range writers.Reports() {
		_, err := os.Stat(filepath.Join(outDir, rep.Filename))
		assert.NoError(t, err, rep.Filename)
	}

	// The written coordinate table parses back to the returned result.
	back, err := permutation.ReadCoords(filepath.Join(outDir, "blocks_coords.txt"))
	require.NoError(t, err)
	assert.Equal(t, final, back)

	listing, err := os.ReadFile(filepath.Join(outDir, "genome_permutations.txt"))
	require.NoError(t, err)
	assert.Equal(t, ">chrA\n+1 +2 $\n>chrB\n+1 +2 $\n", string(listing))
}

func TestRunMultiStage(t *testing.T) {
	dir := t.TempDir()
	loosePath, finePath := twoScales(t, dir)
	outDir := filepath.Join(dir, "out")

	final, err := Run(context.Background(), Config{
		CoordsFiles: []string{loosePath, finePath},
		Stages: []config.Stage{
			{MinBlock: 0, MinFlank: 0},
			{MinBlock: 60, MinFlank: 10},
		},
		OutDir: outDir,
		Logger: logx.New(io.Discard, true),
	})
	require.NoError(t, err)

	// Each stage gets its own subdirectory named by min-block.
	full, err := permutation.ReadCoords(filepath.Join(outDir, "0", "blocks_coords.txt"))
	require.NoError(t, err)
	assert.Equal(t, 4, permutation.BlockCount(full))

	strict, err := permutation.ReadCoords(filepath.Join(outDir, "60", "blocks_coords.txt"))
	require.NoError(t, err)
	// The 50bp inserted blocks fall below min-block 60 and have no
	// group to rescue them.
	assert.Equal(t, 2, permutation.BlockCount(strict))
	for _, p := range strict {
		assert.Equal(t, 100, p.Blocks[0].Len())
	}

	// Run returns the last stage's collection.
	assert.Equal(t, strict, final)
}

func TestRunGroupsRescueFlanks(t *testing.T) {
	dir := t.TempDir()
	perms := permutation.PermVec{
		{SeqID: 1, SeqName: "chrA", NucLength: 1000, Blocks: []permutation.Block{
			block(1, 0, 3),    // flank of group 7 (total 55)
			block(2, 10, 62),  // body of group 7
			block(3, 100, 103), // ungrouped short block
		}},
	}
	coordsPath := writeCoordsFile(t, dir, "only.txt", perms)
	groupsPath := filepath.Join(dir, "groups.tsv")
	require.NoError(t, os.WriteFile(groupsPath, []byte("1\t7\n2\t7\n"), 0644))
	outDir := filepath.Join(dir, "out")

	final, err := Run(context.Background(), Config{
		CoordsFiles: []string{coordsPath},
		GroupsFile:  groupsPath,
		Stages:      []config.Stage{{MinBlock: 50, MinFlank: 2}},
		OutDir:      outDir,
		Logger:      logx.New(io.Discard, true),
	})
	require.NoError(t, err)
	require.Len(t, final, 1)
	assert.Equal(t, 2, len(final[0].Blocks))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	logger := logx.New(io.Discard, true)

	_, err := Run(context.Background(), Config{OutDir: dir, Logger: logger})
	assert.Error(t, err, "no inputs")

	_, err = Run(context.Background(), Config{
		CoordsFiles: []string{filepath.Join(dir, "absent.txt")},
		OutDir:      dir,
		Logger:      logger,
	})
	assert.Error(t, err, "missing input file")

	loosePath, _ := twoScales(t, dir)
	badGroups := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(badGroups, []byte("not numbers\n"), 0644))
	_, err = Run(context.Background(), Config{
		CoordsFiles: []string{loosePath},
		GroupsFile:  badGroups,
		OutDir:      dir,
		Logger:      logger,
	})
	assert.Error(t, err, "malformed groups file")
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	loosePath, finePath := twoScales(t, dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{
		CoordsFiles: []string{loosePath, finePath},
		OutDir:      filepath.Join(dir, "out"),
		Logger:      logx.New(io.Discard, true),
	})
	assert.Error(t, err)
}
