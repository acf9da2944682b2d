package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/XertroV/tasks/todo_go/internal/config"
)

func TestNormalizeColorMode(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"auto":   config.ColorAuto,
		"Always": config.ColorAlways,
		"never":  config.ColorNever,
		"true":   config.ColorAlways,
		"on":     config.ColorAlways,
		"0":      config.ColorNever,
		"off":    config.ColorNever,
	}
	for input, expected := range cases {
		got, err := normalizeColorMode(input)
		if err != nil {
			t.Fatalf("normalizeColorMode(%q) error = %v", input, err)
		}
		if got != expected {
			t.Fatalf("normalizeColorMode(%q) = %q, expected %q", input, got, expected)
		}
	}
	if _, err := normalizeColorMode("rainbow"); err == nil {
		t.Fatal("normalizeColorMode(rainbow) = nil error, expected failure")
	}
}

func TestStylesDisabledReturnPlainText(t *testing.T) {
	t.Parallel()

	s := newStyles(&bytes.Buffer{}, config.ColorNever)
	if s.enabled {
		t.Fatal("styles enabled with color never")
	}
	text := "line one\nline two"
	for _, got := range []string{s.styleHeader(text), s.styleSuccess(text), s.styleError(text), s.styleMuted(text)} {
		if got != text {
			t.Fatalf("styled = %q, expected plain %q", got, text)
		}
	}
}

func TestStylesEnabledKeepLinesIntact(t *testing.T) {
	t.Parallel()

	s := newStyles(&bytes.Buffer{}, config.ColorAlways)
	if !s.enabled {
		t.Fatal("styles disabled with color always")
	}
	styled := s.styleError("short\na much longer line")
	if !strings.Contains(styled, "\x1b[") {
		t.Fatalf("styled = %q, expected ANSI sequences", styled)
	}
	plain := normalizeSnapshotOutput(styled)
	if plain != "short\na much longer line" {
		t.Fatalf("plain = %q, expected lines without padding", plain)
	}
}

func TestAutoColorDisabledForNonTerminalWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "0")
	t.Setenv("CLICOLOR_FORCE", "0")

	if shouldUseColor(&bytes.Buffer{}, config.ColorAuto) {
		t.Fatal("shouldUseColor(buffer, auto) = true, expected false")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !parseBoolEnv("NO_COLOR") {
		t.Fatal("parseBoolEnv(NO_COLOR=1) = false, expected true")
	}
	t.Setenv("CLICOLOR", "")
	if !parseBoolEnv("CLICOLOR") {
		t.Fatal("parseBoolEnv(CLICOLOR unset) = false, expected true")
	}
	if shouldUseColor(&bytes.Buffer{}, config.ColorAuto) {
		t.Fatal("shouldUseColor() with NO_COLOR = true, expected false")
	}
}
