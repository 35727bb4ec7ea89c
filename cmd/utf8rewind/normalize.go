package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkelman/utf8rewind/normalize"
)

var normalizeFlags = struct {
	form   *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Normalize UTF-8 encoded text to a Unicode normalization form",
		Example: `  utf8rewind normalize --form nfc input.txt -o output.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runNormalize,
	}
	normalizeFlags.form = cmd.Flags().StringP("form", "f", "nfc", "normalization form (nfc, nfd, nfkc, nfkd)")
	normalizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	form, ok := normalize.ParseForm(*normalizeFlags.form)
	if !ok {
		return fmt.Errorf("unsupported normalization form: %v", *normalizeFlags.form)
	}

	src, err := readInput(args)
	if err != nil {
		return err
	}
	return writeOutput(*normalizeFlags.output, form.Bytes(src))
}
