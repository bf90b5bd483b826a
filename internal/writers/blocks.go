// internal/writers/blocks.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"synblocks-core/permutation"
)

// WriteBlocks writes the block-list format: per sequence, a '>' header
// line with the sequence name, then every block as <sign><id>
// space-separated, terminated by a literal '$'.
func WriteBlocks(w io.Writer, perms permutation.PermVec) error {
	bw := bufio.NewWriter(w)
	for i := range perms {
		fmt.Fprintf(bw, ">%s\n", perms[i].SeqName)
		for _, b := range perms[i].Blocks {
			fmt.Fprintf(bw, "%c%d ", b.Sign.Char(), b.ID)
		}
		fmt.Fprint(bw, "$\n")
	}
	return bw.Flush()
}
