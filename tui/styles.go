package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	buttonText     = lipgloss.Color("#111827") // Near black

	// Box container used before the first WindowSizeMsg
	boxStyle = lipgloss.NewStyle().
			Padding(2, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true).
			PaddingBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingBottom(1)

	linkStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Underline(true)

	// Input
	promptStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	inputTextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	// Lookup button
	buttonStyle = lipgloss.NewStyle().
			Foreground(buttonText).
			Background(accentColor).
			Bold(true).
			Padding(0, 2).
			MarginLeft(2)

	buttonFocusedStyle = buttonStyle.
				Foreground(accentColor).
				Background(buttonText).
				Underline(true)

	buttonDisabledStyle = buttonStyle.
				Foreground(textColor).
				Background(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(textColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Result lines
	resultKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	resultValueStyle = lipgloss.NewStyle().
				Foreground(textColor)
)
