// core/permutation/permutation.go
package permutation

// Permutation is the ordered block decomposition of one sequence.
// Blocks are sorted ascending by Start, pairwise non-overlapping, and
// contained in [0, NucLength).
type Permutation struct {
	SeqID     int
	SeqName   string
	NucLength int
	Blocks    []Block
}

// PermVec is an ordered collection of decompositions, one per sequence.
type PermVec []Permutation

// MaxBlockID returns the largest block id present anywhere in perms,
// or 0 for an empty collection.
func MaxBlockID(perms PermVec) int {
	max := 0
	for i := range perms {
		for _, b := range perms[i].Blocks {
			if b.ID > max {
				max = b.ID
			}
		}
	}
	return max
}

// BlockCount returns the total number of blocks across all sequences.
func BlockCount(perms PermVec) int {
	n := 0
	for i := range perms {
		n += len(perms[i].Blocks)
	}
	return n
}
