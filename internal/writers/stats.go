// internal/writers/stats.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"synblocks-core/permutation"
)

// WriteStats writes the statistics report: the sequence header block, a
// multiplicity histogram (how many block ids occur in exactly k
// sequences, ascending k), and per-sequence coverage percentages in
// collection order.
func WriteStats(w io.Writer, perms permutation.PermVec) error {
	index, err := permutation.GroupByBlockID(perms)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	writeSeqHeader(bw, perms)

	multiplicity := make(map[int]int)
	for _, refs := range index {
		multiplicity[len(refs)]++
	}
	for _, k := range permutation.SortedIDs(multiplicity) {
		fmt.Fprintf(bw, "%d\t%d\n", k, multiplicity[k])
	}
	fmt.Fprintln(bw, separator)

	for i := range perms {
		total := 0
		for _, b := range perms[i].Blocks {
			total += b.Len()
		}
		cov := 0.0
		if perms[i].NucLength > 0 {
			cov = float64(total) / float64(perms[i].NucLength) * 100
		}
		fmt.Fprintf(bw, "%s\t%.2f\n", perms[i].SeqName, cov)
	}
	return bw.Flush()
}
