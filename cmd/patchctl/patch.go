package main

import (
	"fmt"

	"github.com/hexpatch/hexedit/pkg/patch"
	"github.com/spf13/cobra"
)

var (
	patchPos int64
	patchHex string
)

func init() {
	cmd := newPatchCmd()
	cmd.Flags().Int64Var(&patchPos, "pos", 0, "Byte offset where the payload is applied")
	cmd.Flags().StringVar(&patchHex, "hex", "", "Payload as hex digits (even count, max 1000)")
	_ = cmd.MarkFlagRequired("hex")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <source> <output>",
		Short: "Overwrite bytes of a file copy at an offset",
		Long: `The patch command copies the source file, overwrites bytes starting
at --pos with the --hex payload, and keeps the source's timestamps on the
copy. Payload bytes running past end of file are dropped; an offset outside
the file produces an unmodified copy.

Example:
  patchctl patch firmware.bin patched.bin --pos 4096 --hex DEADBEEF
  patchctl patch boot.img boot-new.img --pos 0 --hex 55AA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}
	return cmd
}

func runPatch(args []string) error {
	printVerbose("Loading source: %s\n", args[0])

	res, err := patch.Run(&patch.Request{
		Offset: patchPos,
		Hex:    []byte(patchHex),
		Source: args[0],
		Dest:   args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to patch: %w", err)
	}

	printInfo("Patched %d byte(s) at offset %d\n", res.Patched, patchPos)
	printInfo("%s (%d bytes) written with timestamps of %s\n", res.Dest, res.Size, res.Source)
	if res.Patched == 0 {
		printInfo("Note: offset outside file bounds, output is an unmodified copy\n")
	}
	return nil
}
