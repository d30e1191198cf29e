package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdionizio/robertsedge/internal/ir"
	"github.com/tdionizio/robertsedge/internal/pgm"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tile.pgm")
	img := &ir.GrayImage{Width: 2, Height: 2, MaxValue: 255, Pixels: []byte{10, 20, 30, 40}}
	if err := pgm.EncodeFile(path, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectWithArgument(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	timesLog := filepath.Join(dir, "times.txt")

	out, err := execute(t, "", input, "--times-log", timesLog)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "2x2") {
		t.Errorf("output lacks resolution: %q", out)
	}

	edges, err := pgm.DecodeFile(filepath.Join(dir, "tile_Robert.PGM"))
	if err != nil {
		t.Fatalf("edge map: %v", err)
	}
	if !bytes.Equal(edges.Pixels, []byte{32, 45, 50, 40}) {
		t.Errorf("edge map = %v", edges.Pixels)
	}
	if _, err := os.Stat(filepath.Join(dir, "tile_Realce.PGM")); err != nil {
		t.Errorf("enhanced image missing: %v", err)
	}
	if _, err := os.Stat(timesLog); err != nil {
		t.Errorf("timing log missing: %v", err)
	}
}

func TestDetectPromptsForName(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)

	out, err := execute(t, input+"\n", "--times-log", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "Enter the .pgm file to open: ") {
		t.Errorf("missing prompt: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "tile_Robert.PGM")); err != nil {
		t.Errorf("edge map missing: %v", err)
	}
}

func TestDetectRejectsAsciiPGM(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ascii.pgm")
	if err := os.WriteFile(input, []byte("P2\n2 2\n255\n1 2 3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "", input, "--times-log", "")
	if !errors.Is(err, pgm.ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
	if !strings.Contains(err.Error(), "not a binary .PGM") {
		t.Errorf("diagnostic = %q", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ascii_Robert.PGM")); !os.IsNotExist(err) {
		t.Error("edge map written for a rejected input")
	}
}

func TestDetectMissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "ghost.pgm"), "--times-log", "")
	if err == nil || !strings.HasPrefix(err.Error(), "file not found") {
		t.Fatalf("error = %v, want file not found", err)
	}
}
