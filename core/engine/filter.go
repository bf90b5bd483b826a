// core/engine/filter.go
package engine

import (
	"fmt"

	"synblocks-core/permutation"
)

// FilterBySize drops blocks shorter than minBlock unless they qualify
// as flanks: the block belongs to a group whose total length on that
// same sequence reaches minBlock, and the block itself is at least
// minFlank long. Keep decisions are per block id: one qualifying
// occurrence keeps every occurrence of that id. Sequences left with no
// blocks are pruned from the result. Thresholds are non-strict (>=).
//
// The input is never mutated; kept blocks are copied into a fresh
// collection.
func FilterBySize(perms permutation.PermVec, groups BlockGroups, minBlock, minFlank int) (permutation.PermVec, error) {
	// Pass 1: per-sequence, per-group total coverage.
	groupLen := make(map[int]map[int]int)
	for i := range perms {
		perm := &perms[i]
		for _, b := range perm.Blocks {
			if b.ID <= 0 {
				return nil, fmt.Errorf("sequence %d: block at %d has invalid id %d", perm.SeqID, b.Start, b.ID)
			}
			groupID, grouped := groups[b.ID]
			if !grouped {
				continue
			}
			if groupLen[perm.SeqID] == nil {
				groupLen[perm.SeqID] = make(map[int]int)
			}
			groupLen[perm.SeqID][groupID] += b.Len()
		}
	}

	// Pass 2: decide the keep-set.
	keep := make(map[int]struct{})
	for i := range perms {
		perm := &perms[i]
		for _, b := range perm.Blocks {
			if b.Len() >= minBlock {
				keep[b.ID] = struct{}{}
				continue
			}
			groupID, grouped := groups[b.ID]
			if grouped && groupLen[perm.SeqID][groupID] >= minBlock && b.Len() >= minFlank {
				keep[b.ID] = struct{}{}
			}
		}
	}

	// Pass 3: rebuild, preserving order and pruning emptied sequences.
	var out permutation.PermVec
	for i := range perms {
		perm := &perms[i]
		var kept []permutation.Block
		for _, b := range perm.Blocks {
			if _, ok := keep[b.ID]; ok {
				kept = append(kept, b)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, permutation.Permutation{
			SeqID:     perm.SeqID,
			SeqName:   perm.SeqName,
			NucLength: perm.NucLength,
			Blocks:    kept,
		})
	}
	return out, nil
}
