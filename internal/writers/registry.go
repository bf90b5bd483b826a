// internal/writers/registry.go
package writers

import (
	"io"

	"synblocks-core/permutation"
)

// Report pairs an output filename with its writer.
type Report struct {
	Filename string
	Write    func(io.Writer, permutation.PermVec) error
}

// Reports lists every per-stage output in emission order. Filenames
// follow the upstream tool conventions so downstream consumers can pick
// the results up unchanged.
func Reports() []Report {
	return []Report{
		{Filename: "genome_permutations.txt", Write: WriteBlocks},
		{Filename: "blocks_coords.txt", Write: WriteCoords},
		{Filename: "coverage_report.txt", Write: WriteStats},
	}
}
