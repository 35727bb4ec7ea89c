package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utf8rewind",
	Short: "Process UTF-8 encoded text",
	Long: `utf8rewind processes UTF-8 encoded text:
- Normalizes text to any of the Unicode normalization forms.
- Maps text to upper, lower, title or folded case, with locale tailorings.
- Converts legacy encodings, UTF-16 and UTF-32 to UTF-8.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// readInput reads the file named by the first argument, or stdin when no
// argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot open the input file %s: %w", args[0], err)
	}
	return src, nil
}

// writeOutput writes result to the named file, or stdout when path is
// empty.
func writeOutput(path string, result []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(result)
		return err
	}
	err := os.WriteFile(path, result, 0644)
	if err != nil {
		return fmt.Errorf("cannot write the output file %s: %w", path, err)
	}
	return nil
}
