package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Bright primaries to match the shape fills.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Purple (oval)
	Secondary = lipgloss.Color("#00AEEF") // Sky (square)
	Accent    = lipgloss.Color("#F7941D") // Orange (star)
	Success   = lipgloss.Color("#39B54A") // Green (semicircle)
	Error     = lipgloss.Color("#E31E24") // Red (circle)
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FFC20E") // Rectangle yellow
	ArcadeCyan   = lipgloss.Color("#00A99D") // Teal
	ArcadePink   = lipgloss.Color("#F9A7C4") // Crescent pink
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Reveal is the shape name on a flipped flashcard.
	Reveal = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ArcadeYellow).
		Bold(true).
		Padding(0, 1)
)
