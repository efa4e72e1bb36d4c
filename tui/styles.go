package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray

	// Box container
	boxStyle = lipgloss.NewStyle().
			Padding(2, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingBottom(1)

	choiceStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	inputFieldStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	inputTextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Upload button, dimmed while it cannot be used
	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(secondaryColor).
			Padding(0, 2).
			Bold(true)

	buttonFocusedStyle = buttonStyle.
				Background(primaryColor)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(lipgloss.Color("#374151")).
				Padding(0, 2)

	// Blocking notice
	noticeStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(warningColor)

	// Preview cards in the right pane
	cardTitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(mutedColor).
			PaddingLeft(1).
			MarginBottom(1)

	sessionActionStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
				Foreground(mutedColor)
)

var (
	sessionSuccessValueStyle = lipgloss.NewStyle().Foreground(successColor)
	sessionWarningValueStyle = lipgloss.NewStyle().Foreground(warningColor)
	sessionErrorValueStyle   = lipgloss.NewStyle().Foreground(errorColor)
	sessionNeutralValueStyle = lipgloss.NewStyle().Foreground(textColor)
)
