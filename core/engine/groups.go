// core/engine/groups.go
package engine

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BlockGroups maps a fine-scale block id to the coarser group it is a
// fragment of. Not every block id need appear; ungrouped blocks stand
// on their own during filtering.
type BlockGroups map[int]int

// LoadGroupsTSV reads a two-column (blockId, groupId) TSV file.
// Blank lines and '#' comments are skipped.
func LoadGroupsTSV(path string) (BlockGroups, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	groups := make(BlockGroups)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		blockID, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad block id: %v", path, ln, err)
		}
		if blockID <= 0 {
			return nil, fmt.Errorf("%s:%d invalid block id %d", path, ln, blockID)
		}
		groupID, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad group id: %v", path, ln, err)
		}
		if _, dup := groups[blockID]; dup {
			return nil, fmt.Errorf("%s:%d duplicate block id %d", path, ln, blockID)
		}
		groups[blockID] = groupID
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
