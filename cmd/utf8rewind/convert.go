package main

import (
	"encoding/binary"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkelman/utf8rewind/transcode"
	"golang.org/x/text/encoding/ianaindex"
)

var convertFlags = struct {
	from   *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert text in another encoding to UTF-8",
		Long: `Convert text in another encoding to UTF-8.

utf-16le, utf-16be, utf-32le and utf-32be input is transcoded directly;
any other encoding name is resolved through the IANA character set
registry (e.g. iso-8859-1, windows-1252, shift_jis).`,
		Example: `  utf8rewind convert --from iso-8859-1 input.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConvert,
	}
	convertFlags.from = cmd.Flags().StringP("from", "f", "utf-16le", "source encoding")
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	var result []byte
	switch *convertFlags.from {
	case "utf-16le":
		result, err = convertUTF16(src, binary.LittleEndian)
	case "utf-16be":
		result, err = convertUTF16(src, binary.BigEndian)
	case "utf-32le":
		result, err = convertUTF32(src, binary.LittleEndian)
	case "utf-32be":
		result, err = convertUTF32(src, binary.BigEndian)
	default:
		result, err = convertCharset(src, *convertFlags.from)
	}
	if err != nil {
		return err
	}
	return writeOutput(*convertFlags.output, result)
}

func convertUTF16(src []byte, order binary.ByteOrder) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("utf-16 input must hold an even number of bytes, got %v", len(src))
	}
	units := make([]uint16, len(src)/2)
	for i := range units {
		units[i] = order.Uint16(src[i*2:])
	}

	size, err := transcode.UTF16ToUTF8(nil, units)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	if _, err := transcode.UTF16ToUTF8(dst, units); err != nil {
		return nil, err
	}
	return dst, nil
}

func convertUTF32(src []byte, order binary.ByteOrder) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("utf-32 input must hold a multiple of 4 bytes, got %v", len(src))
	}
	units := make([]rune, len(src)/4)
	for i := range units {
		units[i] = rune(order.Uint32(src[i*4:]))
	}

	size, err := transcode.UTF32ToUTF8(nil, units)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	if _, err := transcode.UTF32ToUTF8(dst, units); err != nil {
		return nil, err
	}
	return dst, nil
}

func convertCharset(src []byte, name string) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding: %v", name)
	}
	result, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %v input: %w", name, err)
	}
	return result, nil
}
