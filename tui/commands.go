package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pdf-upload-form/form"
	"pdf-upload-form/picker"
	"pdf-upload-form/upload"
	"pdf-upload-form/utils"
)

// UploadResultMsg carries the outcome of one upload back to the event loop
type UploadResultMsg struct {
	Request  *upload.Request
	Response *upload.Response
	Err      error
}

// uploadCmd performs the network call off the event loop. It only touches
// the request snapshot.
func uploadCmd(uploader form.Uploader, req *upload.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := uploader.Upload(context.Background(), req)
		return UploadResultMsg{Request: req, Response: resp, Err: err}
	}
}

// submit starts an upload if the form allows it
func (m Model) submit() (Model, tea.Cmd) {
	req, err := m.ctrl.BeginSubmit()
	if err != nil {
		if errors.Is(err, form.ErrUploadInFlight) {
			return m, nil
		}
		return m.showNotice(err.Error()), nil
	}

	m.addFormattedAction("Upload Started")
	m.addFormattedStatusIndented("Files", utils.FormatNumber(len(req.Files)))
	m.addFormattedStatusIndented("Email", req.Email)

	return m, tea.Batch(uploadCmd(m.uploader, req), m.spinner.Tick)
}

// handleUploadResult applies an upload outcome to the controller
func (m Model) handleUploadResult(msg UploadResultMsg) (Model, tea.Cmd) {
	m.ctrl.FinishSubmit(msg.Request, msg.Response, msg.Err)
	m.clampCursor()

	m.addFormattedAction("Upload Finished")
	m.addFormattedStatusIndented("Status", m.ctrl.Status())
	return m, nil
}

// selectPaths opens the chosen paths and hands them to the controller as one selection
func (m Model) selectPaths(paths []string) Model {
	if len(paths) == 0 {
		return m
	}

	files, errs := picker.OpenAll(paths)
	res := m.ctrl.SelectFiles(files)

	m.addFormattedAction("Files Selected")
	m.addFormattedStatusIndented("Accepted", utils.FormatNumber(len(res.Accepted)))
	if len(res.Rejected) > 0 {
		m.addFormattedStatusIndented("Rejected", utils.FormatNumber(len(res.Rejected)))
	}

	var lines []string
	if notice := res.Notice(); notice != "" {
		lines = append(lines, notice)
	}
	for _, err := range errs {
		m.log.WithError(err).Warn("could not open selected path")
		lines = append(lines, err.Error())
	}
	if len(lines) > 0 {
		return m.showNotice(strings.Join(lines, "\n"))
	}
	return m
}

// removeSelected drops the file under the cursor
func (m Model) removeSelected() Model {
	files := m.ctrl.Files()
	if m.cursor < 0 || m.cursor >= len(files) {
		return m
	}
	name := files[m.cursor].Name
	if err := m.ctrl.RemoveFile(m.cursor); err != nil {
		m.log.WithFields(logrus.Fields{"index": m.cursor}).WithError(err).Warn("remove failed")
		return m
	}
	m.addFormattedStatusIndented("Removed", name)
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	if n := m.ctrl.Count(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// showNotice blocks the form until the notice is dismissed
func (m Model) showNotice(text string) Model {
	if m.state != StateNotice {
		m.noticeReturn = m.state
	}
	m.state = StateNotice
	m.notice = text
	return m
}
