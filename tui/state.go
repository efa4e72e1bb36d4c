package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pdf-upload-form/form"
	"pdf-upload-form/models"
)

// AppState represents the current state of the application
type AppState int

const (
	StateForm AppState = iota
	StatePicker
	StateNotice
)

// focusArea is the part of the form receiving keys
type focusArea int

const (
	focusEmail focusArea = iota
	focusFiles
	focusSubmit
	focusCount
)

// Model represents the main TUI model
type Model struct {
	state  AppState
	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	// Form state lives in the controller; the model only adds UI concerns
	ctrl     *form.Controller
	uploader form.Uploader
	endpoint string
	log      *logrus.Logger

	// Input fields
	emailInput textinput.Model
	focus      focusArea
	cursor     int

	// File picking
	picker     filepicker.Model
	pickerKeys pickerKeys
	pending    []string

	// Blocking notice
	notice       string
	noticeReturn AppState

	// Upload in progress
	spinner spinner.Model

	keys     keyMap
	help     help.Model
	showHelp bool

	// Session history and previews for the right pane
	outputSummary      []string
	outputScrollOffset int
}

// NewModel creates a new TUI model around an existing controller
func NewModel(cfg models.Config, ctrl *form.Controller, uploader form.Uploader, log *logrus.Logger) Model {
	if log == nil {
		log = logrus.StandardLogger()
	}

	email := textinput.New()
	email.Placeholder = "Enter your email"
	email.Prompt = ""
	email.Width = 40
	email.SetValue(cfg.Email)
	email.Focus()
	ctrl.SetEmail(email.Value())

	fp := filepicker.New()
	fp.CurrentDirectory = cfg.StartDir
	fp.ShowHidden = cfg.ShowHidden
	fp.AutoHeight = true
	fp.DirAllowed = false
	fp.FileAllowed = true
	if cfg.PDFOnlyPicker {
		fp.AllowedTypes = []string{".pdf", ".PDF"}
	}

	return Model{
		state:         StateForm,
		ctrl:          ctrl,
		uploader:      uploader,
		endpoint:      cfg.Endpoint,
		log:           log,
		emailInput:    email,
		focus:         focusEmail,
		picker:        fp,
		pickerKeys:    defaultPickerKeys(),
		spinner:       newUploadSpinner(),
		keys:          defaultKeyMap(),
		help:          help.New(),
		outputSummary: []string{},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.picker.Init())
}

// Controller exposes the form controller driven by this model
func (m Model) Controller() *form.Controller {
	return m.ctrl
}

// State returns the screen currently shown
func (m Model) State() AppState {
	return m.state
}

// Notice returns the blocking notice being shown, if any
func (m Model) Notice() string {
	if m.state != StateNotice {
		return ""
	}
	return m.notice
}
