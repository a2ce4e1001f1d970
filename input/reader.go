// Package input reads hexadecimal instruction traces, one `0x`-prefixed word per line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/ChainSafe/mips-stats/instruction"
)

// LineLength is the only accepted raw line length: `0x`, 8 hex digits and a terminator.
const LineLength = 11

var (
	ErrMalformedWord = errors.New("could not parse digits")
	ErrInvalidUTF8   = errors.New("stream did not contain valid UTF-8")
)

// Reader collects instruction words from a line oriented stream.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadAll reads words until a line whose raw length is not LineLength is found.
// Reaching that line, or the end of the stream, is not an error.
func (r *Reader) ReadAll() ([]instruction.Word, error) {
	words := make([]instruction.Word, 0)
	for {
		line, err := r.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading line %d: %w", r.line+1, err)
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("error reading line %d: %w", r.line+1, ErrInvalidUTF8)
		}
		if len(line) != LineLength {
			return words, nil
		}
		r.line++

		// the prefix and the last byte are not inspected
		word, perr := ParseWord(line[2 : len(line)-1])
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, perr)
		}
		words = append(words, word)
		if err != nil { // EOF right after a full length line
			return words, nil
		}
	}
}

// ParseWord parses exactly 8 hexadecimal digits, upper or lower case.
func ParseWord(digits string) (instruction.Word, error) {
	if len(digits) != 8 || !isHex(digits) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedWord, digits)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedWord, digits, err)
	}
	return instruction.Word(v), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ReadFile reads the words of the trace stored at path.
func ReadFile(path string) ([]instruction.Word, error) {
	fpath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute filepath: %w", err)
	}

	tracefile, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		_ = tracefile.Close()
	}()

	return NewReader(tracefile).ReadAll()
}
