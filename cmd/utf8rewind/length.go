package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tkelman/utf8rewind/stream"
)

func init() {
	cmd := &cobra.Command{
		Use:   "length",
		Short: "Count the code points in UTF-8 encoded text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLength,
	}
	rootCmd.AddCommand(cmd)
}

func runLength(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%v code points, %v bytes\n", stream.Length(src), len(src))
	return nil
}
