// Package tui provides the terminal recorder interface for murmur.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the recorder.
var (
	ColorRecord  = lipgloss.Color("#DC2626") // Recording red
	ColorText    = lipgloss.Color("#E5E7EB") // Off white
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
	ColorGlitch  = lipgloss.Color("#A3E635") // Phosphor green
)

// Base styles.
var (
	// StyleClock is used for the REC clock.
	StyleClock = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRecord)

	// StyleCounter is used for the [N STORED] counter.
	StyleCounter = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleHeading is used for section headings.
	StyleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginTop(1)

	StylePreview = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	StyleWarning = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleDisabled is used for actions that cannot run right now.
	StyleDisabled = lipgloss.NewStyle().
			Foreground(ColorBorder)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRecord)

	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Overlay styles.
var (
	// StyleInputBox frames the text input.
	StyleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleWhisperBox frames a replayed confession.
	StyleWhisperBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorRecord).
			Padding(1, 3).
			MarginBottom(1)

	StyleWhisperText = lipgloss.NewStyle().
				Italic(true).
				Foreground(ColorText)

	StyleWhisperDate = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginTop(1)

	// StyleGlitch renders the corrupted flash.
	StyleGlitch = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGlitch)
)

// helpKey is one entry of the help bar.
type helpKey struct {
	key  string
	desc string
}

// HelpBar renders the key help line.
func HelpBar(keys []helpKey) string {
	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
