package tui

import (
	"context"
	"time"

	"ip-geo-lookup/logger"
	"ip-geo-lookup/metrics"
	"ip-geo-lookup/models"
	"ip-geo-lookup/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Looker performs one lookup against the collaborator service
type Looker interface {
	Lookup(ctx context.Context, ip string) (*models.LookupResult, error)
}

// focusTarget is the control that receives key presses
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// Options configures a Model
type Options struct {
	Client   Looker
	Endpoint string // shown in the description line
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

// Model represents the lookup form
type Model struct {
	width  int
	height int

	session *session.Session
	client  Looker
	log     *logger.Logger

	endpoint string
	focus    focusTarget

	// UI components
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// ctx bounds every command the model starts; cancelled on quit
	ctx    context.Context
	cancel context.CancelFunc

	// dismissCancel stops the timer of the error currently shown
	dismissCancel context.CancelFunc

	// errorWindow overrides the dismissal delay when non-zero
	errorWindow time.Duration

	quitting bool
}

// NewModel creates a new lookup form bound to parent
func NewModel(parent context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	ctx, cancel := context.WithCancel(parent)

	ti := textinput.New()
	ti.Prompt = "IP: "
	ti.Placeholder = "Enter IP address"
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputTextStyle
	ti.PlaceholderStyle = placeholderStyle
	ti.Width = 40
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)

	return Model{
		session:  session.New(opts.Metrics, log),
		client:   opts.Client,
		log:      log,
		endpoint: opts.Endpoint,
		focus:    focusInput,
		input:    ti,
		spinner:  sp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the underlying state machine
func (m Model) Session() *session.Session {
	return m.session
}

// shutdown tears down everything the model started. Safe to call repeatedly.
func (m *Model) shutdown() {
	m.session.Close()
	m.stopDismissTimer()
	m.cancel()
}
