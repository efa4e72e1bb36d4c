package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pdf-upload-form/form"
	"pdf-upload-form/models"
	"pdf-upload-form/utils"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	listItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#06B6D4")).
			Padding(0, 2).
			Width(52)
)

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, endpoint string) {
	body := titleStyle.Render("PDF Upload") + "\n" +
		"Send PDF files and an email address to\n" +
		highlightStyle.Render(utils.TruncateString(endpoint, 48))
	fmt.Fprintln(w, bannerStyle.Render(body))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := 60 - lipgloss.Width(headerContent)
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	fmt.Fprintln(w, sectionStyle.Render("┌"+headerContent+strings.Repeat("─", remainingWidth)+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, sectionStyle.Render("└"+strings.Repeat("─", 61)+"┘"))
}

// PrintFormState shows the email, the accepted files and the status line
func PrintFormState(w io.Writer, ctrl *form.Controller) {
	PrintSectionHeader(w, "Upload Form")

	email := ctrl.Email()
	if email == "" {
		email = dimStyle.Render("(not set)")
	}
	fmt.Fprintf(w, "  Email: %s\n", email)

	files := ctrl.Files()
	previews := ctrl.Previews()
	fmt.Fprintf(w, "  Selected Files (%d):\n", len(files))
	for i, f := range files {
		fmt.Fprintf(w, "    %s\n", listItemStyle.Render(fmt.Sprintf("%s (%s)", f.Name, utils.FormatKB(f.Size))))
		if i < len(previews) {
			fmt.Fprintf(w, "      %s\n", dimStyle.Render(previewLine(previews[i].Summary.Pages, previews[i].Summary.Excerpt, previews[i].Summary.Available())))
		}
	}

	if line := StatusLine(ctrl.Status()); line != "" {
		fmt.Fprintf(w, "  Status: %s\n", line)
	}
	PrintSectionFooter(w)
}

func previewLine(pages int, excerpt string, ok bool) string {
	if !ok {
		return "preview unavailable"
	}
	line := fmt.Sprintf("%d page%s", pages, utils.Plural(pages))
	if excerpt != "" {
		line += ": " + utils.TruncateString(excerpt, 60)
	}
	return line
}

// StatusLine colors a status message, green on success and red otherwise
func StatusLine(status string) string {
	switch {
	case status == models.StatusIdle:
		return ""
	case status == models.StatusUploading:
		return warningStyle.Render(status)
	case models.IsSuccessStatus(status):
		return successStyle.Render(status)
	default:
		return errorStyle.Render(status)
	}
}
