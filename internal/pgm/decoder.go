package pgm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Magic is the tag of a binary (raw) PGM file.
const Magic = "P5"

// maxCommentBytes bounds the comment lines accepted between the header and
// the pixel block.
const maxCommentBytes = 64 << 10

var (
	ErrFormat    = errors.New("not a binary PGM (P5) file")
	ErrSize      = errors.New("unsupported resolution")
	ErrDepth     = errors.New("unsupported bit depth")
	ErrTruncated = errors.New("header and pixel data do not match")
)

// Decode reads a binary PGM image. Only the two tag bytes are consumed when
// the tag is wrong.
func Decode(r io.Reader) (*ir.GrayImage, error) {
	if err := readMagic(r); err != nil {
		return nil, err
	}
	br := bufio.NewReader(r)
	info, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	size := info.Width * info.Height
	body, err := io.ReadAll(io.LimitReader(br, int64(size+maxCommentBytes)))
	if err != nil {
		return nil, fmt.Errorf("reading pixels: %w", err)
	}
	body = skipComments(body, size, info)
	if len(body) < size {
		return nil, fmt.Errorf("%w: expected %d pixel bytes, got %d", ErrTruncated, size, len(body))
	}

	img := ir.New(info.Width, info.Height, info.MaxValue)
	copy(img.Pixels, body[:size])
	return img, nil
}

// DecodeFile opens path, decodes it and closes it again.
func DecodeFile(path string) (*ir.GrayImage, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// skipComments drops whole lines starting with '#' in front of the pixel
// block. A line is only treated as a comment if the body is longer than the
// pixels plus a two-byte "\r\n" terminator and at least size bytes remain
// after it; otherwise the '#' is the first pixel.
func skipComments(body []byte, size int, info *Info) []byte {
	for len(body) > size+2 && body[0] == '#' {
		nl := bytes.IndexByte(body, '\n')
		if nl < 0 || len(body)-(nl+1) < size {
			break
		}
		info.Comments = append(info.Comments, strings.TrimSpace(string(body[1:nl])))
		body = body[nl+1:]
	}
	return body
}
