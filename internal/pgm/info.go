package pgm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// fieldLimit caps header integers while they are parsed. Anything above it
// already fails the size or depth checks.
const fieldLimit = 1 << 30

// Info contains the header fields of a binary PGM file.
type Info struct {
	Width    int
	Height   int
	MaxValue int
	Comments []string // text of '#' lines, without the marker
}

// GetInfo reads and validates the PGM header without reading pixel data.
func GetInfo(r io.Reader) (*Info, error) {
	if err := readMagic(r); err != nil {
		return nil, err
	}
	return readHeader(bufio.NewReader(r))
}

func readMagic(r io.Reader) error {
	tag := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, tag); err != nil {
		return fmt.Errorf("%w: reading tag: %v", ErrFormat, err)
	}
	if string(tag) != Magic {
		return fmt.Errorf("%w: expected %q, got %q", ErrFormat, Magic, string(tag))
	}
	return nil
}

// readHeader parses width, height and max value following the tag. It stops
// right after the single whitespace byte that ends the max value field.
func readHeader(br *bufio.Reader) (*Info, error) {
	info := &Info{}

	next, err := br.Peek(1)
	if err != nil {
		return nil, fmt.Errorf("%w: header ends after tag", ErrTruncated)
	}
	if !isSpace(next[0]) && next[0] != '#' {
		return nil, fmt.Errorf("%w: unexpected byte %q after tag", ErrFormat, next[0])
	}

	if info.Width, err = readField(br, info, "width"); err != nil {
		return nil, err
	}
	if info.Height, err = readField(br, info, "height"); err != nil {
		return nil, err
	}
	if info.Width == 0 || info.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, info.Width, info.Height)
	}
	if info.Width > ir.MaxSamples/info.Height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrSize, info.Width, info.Height, ir.MaxSamples)
	}

	if info.MaxValue, err = readField(br, info, "max value"); err != nil {
		return nil, err
	}
	if info.MaxValue == 0 || info.MaxValue > ir.MaxSampleValue {
		return nil, fmt.Errorf("%w: max value %d", ErrDepth, info.MaxValue)
	}

	c, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: missing separator after max value", ErrTruncated)
	}
	if !isSpace(c) {
		return nil, fmt.Errorf("%w: unexpected byte %q after max value", ErrFormat, c)
	}
	return info, nil
}

// readField skips whitespace and comment lines, then parses one decimal
// header field.
func readField(br *bufio.Reader, info *Info, name string) (int, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: header ends before %s", ErrTruncated, name)
		}
		if isSpace(c) {
			continue
		}
		if c == '#' {
			comment, err := readComment(br)
			if err != nil {
				return 0, err
			}
			info.Comments = append(info.Comments, comment)
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		break
	}

	n, digits := 0, 0
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		digits++
		if n < fieldLimit {
			n = n*10 + int(c-'0')
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %s is not a decimal number", ErrFormat, name)
	}
	return n, nil
}

// readComment consumes the rest of a comment line, including its newline.
func readComment(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: unterminated comment", ErrTruncated)
	}
	return strings.TrimSpace(strings.TrimSuffix(line, "\n")), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
