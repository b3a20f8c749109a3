// Command hexedit overwrites a byte range of a binary file with data given
// as a hexadecimal string. The source file is read entirely into memory,
// patched, and written to a new destination file; the source's access and
// modification timestamps are replicated onto the destination.
//
// Usage:
//
//	hexedit -pos X -w "HEXDATA" -r SOURCE_FILE -o OUTPUT_FILE
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hexpatch/hexedit/pkg/patch"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	name := "hexedit"
	if len(argv) > 0 {
		name = argv[0]
	}

	req, err := parseArgs(argv)
	if errors.Is(err, errBadArgCount) {
		fmt.Fprintf(stderr, "Usage: %s -pos X -w \"HEXDATA\" -r SOURCE_FILE -o OUTPUT_FILE\n", name)
		return 1
	}
	if errors.Is(err, errBadOrder) {
		fmt.Fprintln(stderr, "Invalid parameter order.")
		return 1
	}

	res, err := patch.Run(req)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "File %q modified and saved as %q\n", res.Source, res.Dest)
	return 0
}
