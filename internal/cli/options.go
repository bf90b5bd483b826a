// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"synblocks/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	CoordsFiles []string // ordered coarsest -> finest
	GroupsFile  string

	// Filtering
	MinBlock   int
	MinFlank   int
	StagesFile string

	// Output
	OutDir      string
	PrintBlocks bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: synteny block reconciliation and filtering

Merges coarse- and fine-scale synteny block decompositions and writes
size-filtered block reports per configured stage.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var coords stringSlice
	fs.Var(&coords, "coords", "block coordinates file, coarsest first (repeatable, .gz or '-' ok) [*]")
	fs.StringVar(&opt.GroupsFile, "groups", "", "TSV mapping fine block id -> group id, enables flank retention")

	fs.IntVar(&opt.MinBlock, "min-block", 0, "minimum block length to keep [0]")
	fs.IntVar(&opt.MinFlank, "min-flank", 0, "minimum length for group flank blocks [0]")
	fs.StringVar(&opt.StagesFile, "stages", "", "YAML stage file (conflicts with --min-block/--min-flank)")

	fs.StringVar(&opt.OutDir, "out-dir", ".", "output directory; multi-stage runs write one subdirectory per stage [.]")
	fs.BoolVar(&opt.PrintBlocks, "print", false, "also print the final block list to stdout [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.CoordsFiles = coords

	// Validation
	switch {
	case len(opt.CoordsFiles) == 0:
		return opt, errors.New("at least one --coords file is required")
	case opt.StagesFile != "" && (opt.MinBlock != 0 || opt.MinFlank != 0):
		return opt, errors.New("--stages conflicts with --min-block/--min-flank")
	case opt.MinBlock < 0:
		return opt, errors.New("--min-block must be ≥ 0")
	case opt.MinFlank < 0:
		return opt, errors.New("--min-flank must be ≥ 0")
	case opt.OutDir == "":
		return opt, errors.New("--out-dir must not be empty")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
