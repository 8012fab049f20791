package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMessage(msg)

	case LookupResultMsg:
		return m.handleLookupResult(msg)

	case ErrorExpiredMsg:
		return m, m.apply(m.session.ErrorExpired(msg.Generation))

	case spinner.TickMsg:
		if !m.session.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case m.focus == focusButton && key.Matches(msg, m.keys.Press):
		return m.submit()
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

// updateInput forwards msg to the text field and reports any change of its
// value to the session, covering typing, deletion and paste alike.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		return m, tea.Batch(cmd, m.apply(m.session.EditAddress(value)))
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	return m, m.apply(m.session.Submit())
}

func (m Model) handleLookupResult(msg LookupResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.apply(m.session.RequestFailed(msg.Request, msg.Err))
	}
	return m, m.apply(m.session.RequestSucceeded(msg.Request, msg.Result))
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.shutdown()
	m.log.Debug().Msg("Form closed")
	return m, tea.Quit
}
