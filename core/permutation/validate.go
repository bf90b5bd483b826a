// core/permutation/validate.go
package permutation

import "fmt"

// Validate checks the structural invariants of a collection: unique
// sequence ids, positive block ids, blocks sorted ascending by start,
// pairwise non-overlapping, and contained in [0, NucLength).
func Validate(perms PermVec) error {
	seen := make(map[int]struct{}, len(perms))
	for i := range perms {
		perm := &perms[i]
		if _, dup := seen[perm.SeqID]; dup {
			return fmt.Errorf("duplicate sequence id %d", perm.SeqID)
		}
		seen[perm.SeqID] = struct{}{}

		prevEnd := 0
		for _, b := range perm.Blocks {
			if b.ID <= 0 {
				return fmt.Errorf("sequence %d: block at %d has invalid id %d", perm.SeqID, b.Start, b.ID)
			}
			if b.End <= b.Start {
				return fmt.Errorf("sequence %d: block %d has empty span [%d,%d)", perm.SeqID, b.ID, b.Start, b.End)
			}
			if b.Start < 0 || b.End > perm.NucLength {
				return fmt.Errorf("sequence %d: block %d span [%d,%d) outside [0,%d)",
					perm.SeqID, b.ID, b.Start, b.End, perm.NucLength)
			}
			if b.Start < prevEnd {
				return fmt.Errorf("sequence %d: block %d at %d overlaps or precedes previous block ending at %d",
					perm.SeqID, b.ID, b.Start, prevEnd)
			}
			prevEnd = b.End
		}
	}
	return nil
}
