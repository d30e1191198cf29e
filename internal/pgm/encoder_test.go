package pgm

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tdionizio/robertsedge/internal/ir"
)

func TestEncodeHeader(t *testing.T) {
	img := &ir.GrayImage{Width: 3, Height: 2, MaxValue: 200, Pixels: []byte{0, 1, 2, 3, 4, 5}}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := append([]byte("P5\n3 2\n200\n"), 0, 1, 2, 3, 4, 5, '\n')
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded = %q, want %q", buf.Bytes(), want)
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		img  *ir.GrayImage
	}{
		{"nil", nil},
		{"short buffer", &ir.GrayImage{Width: 2, Height: 2, MaxValue: 255, Pixels: []byte{1}}},
		{"zero max", &ir.GrayImage{Width: 1, Height: 1, MaxValue: 0, Pixels: []byte{0}}},
		{"deep", &ir.GrayImage{Width: 1, Height: 1, MaxValue: 65535, Pixels: []byte{0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, tc.img)
			if !errors.Is(err, ir.ErrInvalidImage) {
				t.Fatalf("Encode error = %v, want ErrInvalidImage", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Encode wrote %d bytes for an invalid image", buf.Len())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	images := []*ir.GrayImage{
		{Width: 1, Height: 1, MaxValue: 5, Pixels: []byte{5}},
		{Width: 2, Height: 2, MaxValue: 255, Pixels: []byte{10, 20, 30, 40}},
		{Width: 4, Height: 1, MaxValue: 255, Pixels: []byte{'#', '\n', ' ', 0}},
	}

	gradient := ir.New(64, 48, 255)
	for i := range gradient.Pixels {
		gradient.Pixels[i] = byte(i * 7)
	}
	images = append(images, gradient)

	for _, img := range images {
		var buf bytes.Buffer
		if err := Encode(&buf, img); err != nil {
			t.Fatalf("Encode %dx%d: %v", img.Width, img.Height, err)
		}
		got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode %dx%d: %v", img.Width, img.Height, err)
		}
		if diff := cmp.Diff(img, got); diff != "" {
			t.Errorf("round trip %dx%d mismatch (-want +got):\n%s", img.Width, img.Height, diff)
		}
	}
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	img := &ir.GrayImage{Width: 2, Height: 1, MaxValue: 255, Pixels: []byte{7, 8}}

	path := filepath.Join(dir, "out.pgm")
	if err := EncodeFile(path, img); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if diff := cmp.Diff(img, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}

	bad := filepath.Join(dir, "bad.pgm")
	if err := EncodeFile(bad, &ir.GrayImage{}); err == nil {
		t.Fatal("expected error for empty image")
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Errorf("invalid image left a file behind: %v", err)
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.pgm")
	errDisk := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, "P5\n2 1\n255\n"); err != nil {
			return err
		}
		return errDisk
	})
	if !errors.Is(err, errDisk) {
		t.Fatalf("writeFile error = %v, want %v", err, errDisk)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial output left on disk: %v", err)
	}
}
