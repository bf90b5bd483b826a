// core/permutation/loader.go
package permutation

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ReadCoords reads a block-coordinates file into a collection. The
// format is the one produced by the coordinate-table writer: a header
// block of `seqId  size  name` lines, then one section per block id
// listing its occurrences, sections closed by a dashed separator line.
// Plain, gzip-compressed, and "-" (stdin) inputs are accepted.
//
// Sequences listed in the header but owning no blocks are kept with an
// empty decomposition; they still carry metadata.
func ReadCoords(path string) (PermVec, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return parseCoords(rc, path)
}

func isSeparator(line string) bool {
	return strings.HasPrefix(line, "--")
}

func parseCoords(r io.Reader, path string) (PermVec, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	ln := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		ln++
		return sc.Text(), true
	}

	line, ok := next()
	if !ok || !strings.HasPrefix(line, "Seq_id") {
		return nil, fmt.Errorf("%s:%d expected Seq_id header", path, ln)
	}

	var order []int
	meta := make(map[int]*Permutation)
	for {
		line, ok = next()
		if !ok {
			return nil, fmt.Errorf("%s:%d unexpected end of sequence header", path, ln)
		}
		if isSeparator(line) {
			break
		}
		f := strings.SplitN(line, "\t", 3)
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d bad sequence line", path, ln)
		}
		seqID, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad sequence id: %v", path, ln, err)
		}
		size, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad sequence size: %v", path, ln, err)
		}
		if _, dup := meta[seqID]; dup {
			return nil, fmt.Errorf("%s:%d duplicate sequence id %d", path, ln, seqID)
		}
		meta[seqID] = &Permutation{SeqID: seqID, SeqName: f[2], NucLength: size}
		order = append(order, seqID)
	}

	for {
		line, ok = next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		var blockID int
		if _, err := fmt.Sscanf(line, "Block #%d", &blockID); err != nil {
			return nil, fmt.Errorf("%s:%d expected block header: %v", path, ln, err)
		}
		if blockID <= 0 {
			return nil, fmt.Errorf("%s:%d invalid block id %d", path, ln, blockID)
		}
		if line, ok = next(); !ok || !strings.HasPrefix(line, "Seq_id") {
			return nil, fmt.Errorf("%s:%d expected block column header", path, ln)
		}
		for {
			line, ok = next()
			if !ok {
				return nil, fmt.Errorf("%s:%d unterminated block section", path, ln)
			}
			if isSeparator(line) {
				break
			}
			b, seqID, err := parseBlockRow(line, blockID)
			if err != nil {
				return nil, fmt.Errorf("%s:%d %v", path, ln, err)
			}
			perm, found := meta[seqID]
			if !found {
				return nil, fmt.Errorf("%s:%d block row references unknown sequence %d", path, ln, seqID)
			}
			perm.Blocks = append(perm.Blocks, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := make(PermVec, 0, len(order))
	for _, seqID := range order {
		perm := meta[seqID]
		sort.Slice(perm.Blocks, func(i, j int) bool { return perm.Blocks[i].Start < perm.Blocks[j].Start })
		out = append(out, *perm)
	}
	if err := Validate(out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func parseBlockRow(line string, blockID int) (Block, int, error) {
	f := strings.Fields(line)
	if len(f) != 5 {
		return Block{}, 0, fmt.Errorf("bad block row field count %d", len(f))
	}
	seqID, err := strconv.Atoi(f[0])
	if err != nil {
		return Block{}, 0, fmt.Errorf("bad seq id: %v", err)
	}
	var sign Sign
	switch f[1] {
	case "+":
		sign = SignForward
	case "-":
		sign = SignReverse
	default:
		return Block{}, 0, fmt.Errorf("bad strand %q", f[1])
	}
	start, err := strconv.Atoi(f[2])
	if err != nil {
		return Block{}, 0, fmt.Errorf("bad start: %v", err)
	}
	end, err := strconv.Atoi(f[3])
	if err != nil {
		return Block{}, 0, fmt.Errorf("bad end: %v", err)
	}
	length, err := strconv.Atoi(f[4])
	if err != nil {
		return Block{}, 0, fmt.Errorf("bad length: %v", err)
	}
	if end <= start {
		return Block{}, 0, fmt.Errorf("block %d span [%d,%d) is empty", blockID, start, end)
	}
	if length != end-start {
		return Block{}, 0, fmt.Errorf("block %d length %d does not match span [%d,%d)", blockID, length, start, end)
	}
	return Block{ID: blockID, Sign: sign, Start: start, End: end}, seqID, nil
}
