// internal/writers/coords.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"synblocks-core/permutation"
)

var separator = strings.Repeat("-", 80)

func writeSeqHeader(bw *bufio.Writer, perms permutation.PermVec) {
	fmt.Fprintln(bw, "Seq_id\tSize\tDescription")
	for i := range perms {
		fmt.Fprintf(bw, "%d\t%d\t%s\n", perms[i].SeqID, perms[i].NucLength, perms[i].SeqName)
	}
	fmt.Fprintln(bw, separator)
}

// WriteCoords writes the coordinate table: the sequence header block,
// then one section per block id (ascending) listing every occurrence
// with strand, span, and length. This format round-trips through
// permutation.ReadCoords.
func WriteCoords(w io.Writer, perms permutation.PermVec) error {
	index, err := permutation.GroupByBlockID(perms)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	writeSeqHeader(bw, perms)
	for _, id := range permutation.SortedIDs(index) {
		fmt.Fprintf(bw, "Block #%d\nSeq_id\tStrand\tStart\tEnd\tLength\n", id)
		for _, ref := range index[id] {
			b := ref.Block
			fmt.Fprintf(bw, "%d\t%c\t%d\t%d\t%d\n", ref.SeqID, b.Sign.Char(), b.Start, b.End, b.Len())
		}
		fmt.Fprintln(bw, separator)
	}
	return bw.Flush()
}
