// core/permutation/index.go
package permutation

import (
	"fmt"
	"sort"
)

// BlockRef locates one occurrence of a block id: the owning sequence
// and a pointer into its block slice. A BlockRef is a non-owning view,
// valid only while the source PermVec is alive and unchanged.
type BlockRef struct {
	SeqID int
	Block *Block
}

// GroupByBlockID builds the inverted view blockID -> occurrences.
// Occurrence order is deterministic: sequences in collection order,
// blocks in their stored (start-sorted) order. Any non-positive block
// id rejects the whole input.
func GroupByBlockID(perms PermVec) (map[int][]BlockRef, error) {
	index := make(map[int][]BlockRef)
	for i := range perms {
		perm := &perms[i]
		for j := range perm.Blocks {
			b := &perm.Blocks[j]
			if b.ID <= 0 {
				return nil, fmt.Errorf("sequence %d: block at %d has invalid id %d", perm.SeqID, b.Start, b.ID)
			}
			index[b.ID] = append(index[b.ID], BlockRef{SeqID: perm.SeqID, Block: b})
		}
	}
	return index, nil
}

// IndexBySeqID maps sequence id to its decomposition, for metadata
// lookups. Pointers are valid only while perms is alive and unchanged.
func IndexBySeqID(perms PermVec) map[int]*Permutation {
	byID := make(map[int]*Permutation, len(perms))
	for i := range perms {
		byID[perms[i].SeqID] = &perms[i]
	}
	return byID
}

// SortedIDs returns the integer keys of m in ascending order. Block
// indices and histograms are plain maps; every consumer that needs a
// reproducible iteration order goes through this.
func SortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
