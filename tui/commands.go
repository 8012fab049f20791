package tui

import (
	"context"
	"time"

	"ip-geo-lookup/models"
	"ip-geo-lookup/session"

	tea "github.com/charmbracelet/bubbletea"
)

// LookupResultMsg carries the outcome of one lookup request
type LookupResultMsg struct {
	Request session.Request
	Result  *models.LookupResult
	Err     error
}

// ErrorExpiredMsg is sent when an error's display window has passed
type ErrorExpiredMsg struct {
	Generation uint64
}

// lookupCmd runs the request off the event loop. Cancelling ctx aborts it.
func lookupCmd(ctx context.Context, client Looker, req session.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Lookup(ctx, req.Address)
		return LookupResultMsg{Request: req, Result: result, Err: err}
	}
}

// dismissErrorCmd waits out the display window. When ctx is cancelled first,
// because the error was cleared, replaced or the form closed, no message is sent.
func dismissErrorCmd(ctx context.Context, gen uint64, after time.Duration) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(after)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return ErrorExpiredMsg{Generation: gen}
		}
	}
}

// apply turns session effects into commands
func (m *Model) apply(fx session.Effects) tea.Cmd {
	var cmds []tea.Cmd

	if fx.CancelDismiss || fx.Dismiss != nil {
		m.stopDismissTimer()
	}

	if fx.Dismiss != nil {
		after := fx.Dismiss.After
		if m.errorWindow > 0 {
			after = m.errorWindow
		}
		ctx, cancel := context.WithCancel(m.ctx)
		m.dismissCancel = cancel
		cmds = append(cmds, dismissErrorCmd(ctx, fx.Dismiss.Generation, after))
	}

	if fx.Request != nil {
		cmds = append(cmds, lookupCmd(m.ctx, m.client, *fx.Request), m.spinner.Tick)
	}

	return tea.Batch(cmds...)
}

func (m *Model) stopDismissTimer() {
	if m.dismissCancel != nil {
		m.dismissCancel()
		m.dismissCancel = nil
	}
}
