// core/engine/merge.go
package engine

import (
	"fmt"
	"sort"

	"synblocks-core/permutation"
)

// Merge reconciles a coarse ("loose") decomposition with a finer one.
// A fine block group is inserted only if every one of its occurrences,
// on every sequence it touches, lies entirely inside a gap between
// loose blocks on that sequence; a group that conflicts anywhere is
// rejected wholesale. Accepted groups are assigned fresh ids above
// everything in loose, one id per group, in ascending fine-id order so
// identical inputs always produce identical output.
//
// Sequence metadata in the result comes from the fine input; sequences
// the fine input does not carry keep their loose metadata.
func Merge(loose, fine permutation.PermVec) (permutation.PermVec, error) {
	looseStarts := make(map[int][]int)
	looseEnds := make(map[int][]int)
	nextID := 0
	for i := range loose {
		perm := &loose[i]
		for _, b := range perm.Blocks {
			if b.ID <= 0 {
				return nil, fmt.Errorf("loose sequence %d: block at %d has invalid id %d", perm.SeqID, b.Start, b.ID)
			}
			looseStarts[perm.SeqID] = append(looseStarts[perm.SeqID], b.Start)
			looseEnds[perm.SeqID] = append(looseEnds[perm.SeqID], b.End)
			if b.ID > nextID {
				nextID = b.ID
			}
		}
	}
	nextID++

	fineIndex, err := permutation.GroupByBlockID(fine)
	if err != nil {
		return nil, err
	}

	// A fine block fits a gap iff the count of loose ends <= its start
	// equals the count of loose starts <= its end: the span straddles
	// no loose boundary. upperBound over ints is SearchInts(v, x+1).
	var accepted []int
	for _, id := range permutation.SortedIDs(fineIndex) {
		fits := true
		for _, ref := range fineIndex[id] {
			leftIns := sort.SearchInts(looseEnds[ref.SeqID], ref.Block.Start+1)
			rightIns := sort.SearchInts(looseStarts[ref.SeqID], ref.Block.End+1)
			if leftIns != rightIns {
				fits = false
				break
			}
		}
		if fits {
			accepted = append(accepted, id)
		}
	}

	outBlocks := make(map[int][]permutation.Block, len(loose))
	for i := range loose {
		outBlocks[loose[i].SeqID] = append([]permutation.Block(nil), loose[i].Blocks...)
	}
	for _, id := range accepted {
		for _, ref := range fineIndex[id] {
			nb := *ref.Block
			nb.ID = nextID
			outBlocks[ref.SeqID] = append(outBlocks[ref.SeqID], nb)
		}
		nextID++
	}

	fineBySeq := permutation.IndexBySeqID(fine)
	looseBySeq := permutation.IndexBySeqID(loose)

	out := make(permutation.PermVec, 0, len(outBlocks))
	for _, seqID := range permutation.SortedIDs(outBlocks) {
		blocks := outBlocks[seqID]
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
		src := fineBySeq[seqID]
		if src == nil {
			src = looseBySeq[seqID]
		}
		out = append(out, permutation.Permutation{
			SeqID:     seqID,
			SeqName:   src.SeqName,
			NucLength: src.NucLength,
			Blocks:    blocks,
		})
	}
	return out, nil
}
