package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pdf-upload-form/utils"
)

// renderOutputSummary generates the content for the right pane with scrolling.
// The pane shows one preview card per accepted file followed by the session
// history.
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	lines := append(m.previewLines(), "")
	lines = append(lines, highlightStyle.Render("Session"))
	if len(m.outputSummary) == 0 {
		lines = append(lines, helpStyle.Render("Nothing uploaded yet."))
	} else {
		lines = append(lines, m.outputSummary...)
	}

	// Calculate visible area (approximate based on height)
	visibleLines := m.height - 8 // Account for borders, padding, title
	if visibleLines < 5 {
		visibleLines = 5
	}

	startIdx := m.outputScrollOffset
	if startIdx > len(lines)-1 {
		startIdx = len(lines) - 1
	}
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := startIdx + visibleLines
	if endIdx > len(lines) {
		endIdx = len(lines)
	}

	s.WriteString(strings.Join(lines[startIdx:endIdx], "\n"))

	if len(lines) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn or mouse wheel to scroll"))
	}

	return s.String()
}

// previewLines renders the preview cards, one per live handle
func (m Model) previewLines() []string {
	lines := []string{highlightStyle.Render("Previews")}

	previews := m.ctrl.Previews()
	if len(previews) == 0 {
		return append(lines, helpStyle.Render("Selected PDFs are previewed here."))
	}

	width := m.rightPaneWidth - 8
	if width < 20 {
		width = 40
	}

	for i, h := range previews {
		var card strings.Builder
		card.WriteString(cardTitleStyle.Render(fmt.Sprintf("PDF Preview %d", i+1)) + "\n")
		card.WriteString(utils.TruncateString(h.Name, width) + "\n")

		if !h.Summary.Available() {
			card.WriteString(placeholderStyle.Render("preview unavailable"))
		} else {
			card.WriteString(sessionStatusStyle.Render(fmt.Sprintf("%d page%s", h.Summary.Pages, utils.Plural(h.Summary.Pages))))
			if h.Summary.Excerpt != "" {
				for _, line := range m.wrapText(h.Summary.Excerpt, width) {
					card.WriteString("\n" + line)
				}
			}
		}

		lines = append(lines, strings.Split(cardStyle.Render(card.String()), "\n")...)
	}

	return lines
}

// maxScroll is the largest useful scroll offset for the right pane
func (m Model) maxScroll() int {
	total := len(m.previewLines()) + 2 + len(m.outputSummary)
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	if total-visible < 0 {
		return 0
	}
	return total - visible
}

func (m *Model) scroll(delta int) {
	m.outputScrollOffset += delta
	if limit := m.maxScroll(); m.outputScrollOffset > limit {
		m.outputScrollOffset = limit
	}
	if m.outputScrollOffset < 0 {
		m.outputScrollOffset = 0
	}
}

// addToOutputSummary adds an item to the output summary
func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
}

// formatSessionAction formats an action description with italic styling
func formatSessionAction(action string) string {
	return sessionActionStyle.Render(action)
}

// formatSessionStatus formats a status line with key: value format and intelligent coloring
func formatSessionStatus(key, value string) string {
	keyStyled := sessionStatusStyle.Render(key + ": ")
	valueStyled := determineValueStyle(key, value).Render(value)
	return keyStyled + valueStyled
}

// determineValueStyle picks a color for a session value
func determineValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	switch lowerKey {
	case "rejected":
		return sessionWarningValueStyle
	case "accepted":
		if lowerValue != "0" {
			return sessionSuccessValueStyle
		}
		return sessionWarningValueStyle
	}

	if strings.Contains(lowerValue, "successful") {
		return sessionSuccessValueStyle
	}

	for _, pattern := range []string{"error", "failed"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionErrorValueStyle
		}
	}

	return sessionNeutralValueStyle
}

// addFormattedAction adds a formatted action to the output summary
func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(formatSessionAction(action))
}

// addFormattedStatusIndented adds a formatted status line with indentation
func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}
