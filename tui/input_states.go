package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pdf-upload-form/models"
	"pdf-upload-form/utils"
)

// Form state handlers
func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % focusCount), nil
	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case key.Matches(msg, m.keys.AddFiles):
		return m.openPicker()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	switch m.focus {
	case focusEmail:
		if msg.Type == tea.KeyEnter {
			return m.setFocus(focusFiles), nil
		}
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.ctrl.SetEmail(m.emailInput.Value())
		return m, cmd

	case focusFiles:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.ctrl.Count()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Remove):
			return m.removeSelected(), nil
		case msg.Type == tea.KeyEnter:
			return m.openPicker()
		}

	case focusSubmit:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			return m.submit()
		}
	}

	switch msg.String() {
	case "?":
		m.showHelp = !m.showHelp
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// setFocus moves keyboard focus, blurring the email field when it loses it
func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	if f == focusEmail {
		m.emailInput.Focus()
	} else {
		m.emailInput.Blur()
	}
	return m
}

func (m Model) openPicker() (Model, tea.Cmd) {
	m.state = StatePicker
	m.pending = nil
	return m, m.picker.Init()
}

func (m Model) viewForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PDF Upload") + "\n")
	s.WriteString(subtitleStyle.Render("Send PDFs to "+m.endpoint) + "\n")

	// Email
	label := inputFieldStyle.Render("Email: ")
	if m.focus == focusEmail {
		label = selectedStyle.Render("> Email: ")
	}
	s.WriteString(label + inputTextStyle.Render(m.emailInput.View()) + "\n\n")

	// Accepted files
	files := m.ctrl.Files()
	heading := fmt.Sprintf("Selected Files (%d):", len(files))
	if m.focus == focusFiles {
		s.WriteString(selectedStyle.Render("> "+heading) + "\n")
	} else {
		s.WriteString(inputFieldStyle.Render(heading) + "\n")
	}
	if len(files) == 0 {
		s.WriteString("   " + placeholderStyle.Render("No files selected. Press ctrl+o to add PDFs.") + "\n")
	}
	for i, f := range files {
		line := fmt.Sprintf("%s (%s)", f.Name, utils.FormatKB(f.Size))
		cursor := " "
		if m.focus == focusFiles && m.cursor == i {
			cursor = ">"
			line = selectedStyle.Render(line)
		} else {
			line = choiceStyle.Render(line)
		}
		s.WriteString("  " + cursor + " " + line + "\n")
	}
	s.WriteString("\n")

	// Upload button
	button := fmt.Sprintf("Upload %d PDF(s)", len(files))
	switch {
	case !m.ctrl.CanSubmit() || m.ctrl.Uploading():
		button = buttonDisabledStyle.Render(button)
	case m.focus == focusSubmit:
		button = buttonFocusedStyle.Render(button)
	default:
		button = buttonStyle.Render(button)
	}
	s.WriteString(button + "\n\n")

	// Status
	s.WriteString(m.viewStatus() + "\n\n")

	if m.showHelp {
		s.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		s.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewStatus() string {
	status := m.ctrl.Status()
	switch {
	case m.ctrl.Uploading():
		return m.spinner.View() + " " + warningStyle.Render(status)
	case status == models.StatusIdle:
		return ""
	case models.IsSuccessStatus(status):
		return successStyle.Render(status)
	default:
		return errorStyle.Render(status)
	}
}

// Picker state handlers
func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pickerKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.pickerKeys.Done):
		paths := m.pending
		m.pending = nil
		m.state = StateForm
		return m.selectPaths(paths), nil
	case key.Matches(msg, m.pickerKeys.Clear):
		m.pending = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.pending = togglePath(m.pending, path)
	}
	// A non-PDF chosen with the filter off still goes to the form, which rejects it
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.pending = togglePath(m.pending, path)
	}

	return m, cmd
}

// togglePath adds path, or removes it when it is already chosen
func togglePath(paths []string, path string) []string {
	for i, p := range paths {
		if p == path {
			return append(paths[:i:i], paths[i+1:]...)
		}
	}
	return append(paths, path)
}

func (m Model) viewPicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Choose PDFs") + "\n")
	s.WriteString(helpStyle.Render(m.picker.CurrentDirectory) + "\n\n")

	s.WriteString(m.picker.View() + "\n")

	s.WriteString(inputFieldStyle.Render(fmt.Sprintf("Chosen (%d):", len(m.pending))) + "\n")
	for _, p := range m.pending {
		s.WriteString("  " + utils.TruncateString(p, 70) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(helpStyle.Render("enter to choose or unchoose a file, esc/tab to add the chosen files, ctrl+r to clear"))

	return m.renderWithDynamicWidth(s.String())
}

// Notice state handlers
func (m Model) updateNotice(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", " ":
		m.state = m.noticeReturn
		m.notice = ""
		if m.state == StateNotice {
			m.state = StateForm
		}
	}

	return m, nil
}

func (m Model) viewNotice() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Notice") + "\n")
	s.WriteString(noticeStyle.Render(m.notice) + "\n\n")
	s.WriteString(helpStyle.Render("Press Enter to continue"))

	return m.renderWithDynamicWidth(s.String())
}
