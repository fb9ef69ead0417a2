// Package argv holds the argument vector a process is started with.
package argv

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrOutOfRange is matched by every failed positional access.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError records a read past the end of a Vector.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("argv: index out of range [%d] with length %d", e.Index, e.Length)
}

// Is lets errors.Is match the error against ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Vector is the ordered list of strings supplied to a process at launch.
// Element 0 is the path the program was invoked as.
type Vector []string

// At returns the element at position i.
func (v Vector) At(i int) (string, error) {
	if i < 0 || i >= len(v) {
		return "", &OutOfRangeError{Index: i, Length: len(v)}
	}
	return v[i], nil
}

// Max returns the lexicographically greatest element out of the given
// positions. Positions are read in order and the first one that doesn't
// exist is reported.
func (v Vector) Max(positions ...int) (string, error) {
	if len(positions) == 0 {
		return "", errors.New("argv: max of no positions")
	}

	var out string
	for i, pos := range positions {
		elem, err := v.At(pos)
		if err != nil {
			return "", err
		}
		if i == 0 || elem > out {
			out = elem
		}
	}
	return out, nil
}

// Require checks that every position can be read.
func (v Vector) Require(positions ...int) error {
	for _, pos := range positions {
		if _, err := v.At(pos); err != nil {
			return err
		}
	}
	return nil
}

// String renders the vector as a bracketed, comma separated list of quoted
// elements e.g. ['prog', 'a'].
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeQuoted(&sb, elem)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Quote quotes a single element the same way String does.
func Quote(s string) string {
	var sb strings.Builder
	writeQuoted(&sb, s)
	return sb.String()
}

func writeQuoted(sb *strings.Builder, s string) {
	// Single quotes are preferred, double quotes avoid escaping.
	quote := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		quote = '"'
	}

	sb.WriteByte(quote)
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && width == 1 {
			// Undecodable bytes map onto the low surrogates U+DC80-U+DCFF.
			fmt.Fprintf(sb, `\udc%02x`, s[i])
			i++
			continue
		}
		i += width

		switch {
		case r == '\\' || r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(sb, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(sb, `\u%04x`, r)
		default:
			fmt.Fprintf(sb, `\U%08x`, r)
		}
	}
	sb.WriteByte(quote)
}
