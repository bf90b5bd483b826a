// core/permutation/block.go
package permutation

// Sign is the strand orientation of a block occurrence.
type Sign int

const (
	SignForward Sign = 1
	SignReverse Sign = -1
)

// Char returns the single-character strand code used in text outputs.
func (s Sign) Char() byte {
	if s < 0 {
		return '-'
	}
	return '+'
}

// Block is one contiguous segment of a sequence. Coordinates are
// half-open [Start, End) on the forward strand; Sign records the
// orientation of the copy. ID links homologous copies of the same
// synteny block across sequences and is positive for valid blocks.
type Block struct {
	ID    int
	Sign  Sign
	Start int
	End   int
}

// Len returns the block span length (End - Start).
func (b Block) Len() int { return b.End - b.Start }
