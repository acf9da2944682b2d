package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/XertroV/tasks/todo_go/internal/config"
)

// styles renders outcome text for one output stream.
type styles struct {
	enabled bool
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, mode string) styles {
	renderer := lipgloss.NewRenderer(w)
	enabled := shouldUseColor(w, mode)
	if enabled {
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return styles{
		enabled: enabled,
		header:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		muted:   renderer.NewStyle().Faint(true),
	}
}

// render styles each line on its own so lipgloss does not pad lines to a
// common width.
func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		if line != "" {
			lines[idx] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (s styles) styleHeader(text string) string {
	return s.render(s.header, text)
}

func (s styles) styleSuccess(text string) string {
	return s.render(s.success, text)
}

func (s styles) styleError(text string) string {
	return s.render(s.failure, text)
}

func (s styles) styleMuted(text string) string {
	return s.render(s.muted, text)
}

// normalizeColorMode accepts auto/always/never as well as boolean spellings.
func normalizeColorMode(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case config.ColorAuto:
		return config.ColorAuto, nil
	case config.ColorAlways:
		return config.ColorAlways, nil
	case config.ColorNever:
		return config.ColorNever, nil
	}
	enabled, err := parseBooleanFlag(value, "--color")
	if err != nil {
		return "", err
	}
	if enabled {
		return config.ColorAlways, nil
	}
	return config.ColorNever, nil
}

func parseBooleanFlag(value, flag string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "t", "yes", "on":
		return true, nil
	case "0", "false", "f", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value for %s: %s", flag, value)
	}
}

func shouldUseColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return autoColorAllowed(w)
}

func autoColorAllowed(w io.Writer) bool {
	if parseBoolEnv("NO_COLOR") {
		return false
	}
	if value, ok := os.LookupEnv("FORCE_COLOR"); ok && strings.TrimSpace(value) != "0" {
		return true
	}
	if value, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && strings.TrimSpace(value) != "0" {
		return true
	}
	if !parseBoolEnv("CLICOLOR") {
		return false
	}
	term := strings.TrimSpace(strings.ToUpper(os.Getenv("TERM")))
	if term == "DUMB" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func parseBoolEnv(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if value == "" {
		return name == "CLICOLOR"
	}
	switch value {
	case "1", "true", "yes", "on", "always":
		return true
	default:
		return false
	}
}
