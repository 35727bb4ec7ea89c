package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkelman/utf8rewind/casemap"
)

var caseFlags = struct {
	locale *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:       "case (upper|lower|title|fold)",
		Short:     "Map UTF-8 encoded text to another case",
		Example:   `  utf8rewind case upper --locale tr input.txt`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"upper", "lower", "title", "fold"},
		RunE:      runCase,
	}
	caseFlags.locale = cmd.Flags().StringP("locale", "l", "", "locale tailoring (e.g. tr, az, lt)")
	caseFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCase(cmd *cobra.Command, args []string) error {
	locale := casemap.ParseLocale(*caseFlags.locale)

	var op func(casemap.Locale, []byte, []byte) (int, error)
	switch args[0] {
	case "upper":
		op = casemap.Locale.ToUpper
	case "lower":
		op = casemap.Locale.ToLower
	case "title":
		op = casemap.Locale.ToTitle
	case "fold":
		op = casemap.Locale.Fold
	default:
		return fmt.Errorf("unsupported case operation: %v", args[0])
	}

	src, err := readInput(args[1:])
	if err != nil {
		return err
	}

	size, err := op(locale, nil, src)
	if err != nil {
		return err
	}
	dst := make([]byte, size)
	if _, err := op(locale, dst, src); err != nil {
		return err
	}
	return writeOutput(*caseFlags.output, dst)
}
