// core/permutation/renumber.go
package permutation

// Renumerate rewrites block ids to a contiguous range starting at 1,
// in first-encounter order (sequences in collection order, blocks in
// stored order). Every occurrence of an old id maps to the same new id.
func Renumerate(perms PermVec) {
	nextID := 1
	newIDs := make(map[int]int)
	for i := range perms {
		for j := range perms[i].Blocks {
			old := perms[i].Blocks[j].ID
			id, ok := newIDs[old]
			if !ok {
				id = nextID
				newIDs[old] = id
				nextID++
			}
			perms[i].Blocks[j].ID = id
		}
	}
}
