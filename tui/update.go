package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// minTwoPaneWidth is the narrowest terminal that still gets the preview pane
const minTwoPaneWidth = 100

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case UploadResultMsg:
		return m.handleUploadResult(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	// Directory listings and other picker internals
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.showRightPane = m.width >= minTwoPaneWidth
	m.help.Width = msg.Width

	// Calculate pane sizes
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.6)    // 60% for left pane
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1 // 40% for right pane (minus 1 for separator)
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}
	m.scroll(0)

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleKeyMessage handles keyboard input based on current state
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Handle global scroll keys for right pane when it's visible
	if m.showRightPane && m.state == StateForm {
		switch {
		case key.Matches(msg, m.keys.ScrollUp):
			m.scroll(-5)
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.scroll(5)
			return m, nil
		}
	}

	// Delegate to state-specific handlers
	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StatePicker:
		return m.updatePicker(msg)
	case StateNotice:
		return m.updateNotice(msg)
	}

	return m, nil
}

// handleMouseMessage handles mouse input
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.showRightPane {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-2)
	case tea.MouseButtonWheelDown:
		m.scroll(2)
	}
	return m, nil
}

// handleSpinnerTick keeps the spinner turning only while an upload is out
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (Model, tea.Cmd) {
	if !m.ctrl.Uploading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}
