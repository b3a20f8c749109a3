package main

import (
	"fmt"
	"os"

	"github.com/hexpatch/hexedit/pkg/inspect"
	"github.com/spf13/cobra"
)

var (
	dumpOffset int64
	dumpLength int64
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Int64Var(&dumpOffset, "offset", 0, "Start offset of the region")
	cmd.Flags().Int64Var(&dumpLength, "length", 256, "Region length in bytes (0 = to end of file)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hexdump a region of a file",
		Long: `The dump command prints a region of a file as a hexdump, 16 bytes
per row with offsets and an ASCII column.

Example:
  patchctl dump firmware.bin
  patchctl dump firmware.bin --offset 4096 --length 64
  patchctl dump firmware.bin --length 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	printVerbose("Dumping %s [%d, +%d)\n", args[0], dumpOffset, dumpLength)

	if err := inspect.Dump(os.Stdout, args[0], dumpOffset, dumpLength); err != nil {
		return fmt.Errorf("failed to dump: %w", err)
	}
	return nil
}
