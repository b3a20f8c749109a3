package main

import (
	"fmt"

	"github.com/hexpatch/hexedit/pkg/inspect"
	"github.com/spf13/cobra"
)

var (
	findHex   string
	findText  string
	findUTF16 bool
)

func init() {
	cmd := newFindCmd()
	cmd.Flags().StringVar(&findHex, "hex", "", "Pattern as hex digits")
	cmd.Flags().StringVar(&findText, "text", "", "Pattern as literal text")
	cmd.Flags().BoolVar(&findUTF16, "utf16", false, "Search the text pattern as UTF-16LE")
	cmd.MarkFlagsMutuallyExclusive("hex", "text")
	cmd.MarkFlagsOneRequired("hex", "text")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file>",
		Short: "Locate a byte pattern in a file",
		Long: `The find command prints the offset of every occurrence of a byte
pattern in a file. The pattern is given as hex digits or as literal text;
text can also be searched in its UTF-16LE encoding.

Example:
  patchctl find firmware.bin --hex DEADBEEF
  patchctl find program.exe --text "Program Files"
  patchctl find program.exe --text "Program Files" --utf16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

func runFind(args []string) error {
	var (
		offs []int64
		err  error
	)
	if findHex != "" {
		offs, err = inspect.FindHex(args[0], findHex)
	} else {
		offs, err = inspect.FindText(args[0], findText, findUTF16)
	}
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	if len(offs) == 0 {
		printInfo("No matches\n")
		return nil
	}
	for _, off := range offs {
		printInfo("%08X  (%d)\n", off, off)
	}
	printInfo("%d match(es)\n", len(offs))
	return nil
}
