package permutation

import "testing"

func TestRenumerate(t *testing.T) {
	perms := PermVec{
		{SeqID: 1, Blocks: []Block{
			{ID: 42, Start: 0, End: 10},
			{ID: 7, Start: 20, End: 30},
		}},
		{SeqID: 2, Blocks: []Block{
			{ID: 7, Start: 0, End: 10},
			{ID: 42, Start: 20, End: 30},
			{ID: 100, Start: 40, End: 50},
		}},
	}

	Renumerate(perms)

	// First-encounter order: 42 -> 1, 7 -> 2, 100 -> 3.
	want := [][]int{{1, 2}, {2, 1, 3}}
	for i, p := range perms {
		for j, b := range p.Blocks {
			if b.ID != want[i][j] {
				t.Errorf("seq %d block %d: id %d, want %d", p.SeqID, j, b.ID, want[i][j])
			}
		}
	}
}

func TestRenumerateEmpty(t *testing.T) {
	Renumerate(nil) // must not panic
	Renumerate(PermVec{{SeqID: 1}})
}
