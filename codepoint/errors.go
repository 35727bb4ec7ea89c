package codepoint

import "errors"

// The error values shared by every package in the module. Each operation
// documents the subset it can return.
var (
	// ErrInvalidCharacter reports input that is not well-formed for its
	// encoding: a bad lead or continuation byte, an overlong encoding, an
	// encoded surrogate, or a code point above U+10FFFF.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidData reports truncated input: a lead byte or unit is
	// present but the rest of the sequence is missing.
	ErrInvalidData = errors.New("invalid data")

	// ErrNotEnoughSpace reports a destination buffer that could not hold
	// the full output.
	ErrNotEnoughSpace = errors.New("not enough space")

	// ErrOutOfRange is reserved for numeric parameters outside their
	// permitted range. Seek clamps instead of returning it.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnhandledSurrogatePair reports a surrogate half passed as a UCS-2
	// code point. UCS-2 has no pairing.
	ErrUnhandledSurrogatePair = errors.New("unhandled surrogate pair")

	// ErrUnmatchedHighSurrogate reports a high surrogate in UTF-16 input
	// that is not followed by a low surrogate.
	ErrUnmatchedHighSurrogate = errors.New("unmatched high surrogate pair")

	// ErrUnmatchedLowSurrogate reports a low surrogate in UTF-16 input
	// that is not preceded by a high surrogate.
	ErrUnmatchedLowSurrogate = errors.New("unmatched low surrogate pair")
)
