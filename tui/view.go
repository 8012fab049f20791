package tui

import (
	"strings"

	"ip-geo-lookup/models"

	"github.com/charmbracelet/lipgloss"
)

const buttonLabel = "Lookup"

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("IP Geo Lookup"))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render("send a request to " + linkStyle.Render(m.endpoint)))
	s.WriteString("\n\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), m.viewButton()))
	s.WriteString("\n\n")

	if msg := m.session.ErrorMessage(); msg != "" {
		s.WriteString(errorStyle.Render(msg))
		s.WriteString("\n\n")
	}

	if result := m.session.Result(); result.Len() > 0 {
		s.WriteString(m.viewResult(result))
		s.WriteString("\n\n")
	}

	s.WriteString(m.help.View(m.keys))

	return m.renderWithDynamicWidth(s.String())
}

// viewButton shows the spinner in place of the label while a lookup is pending
func (m Model) viewButton() string {
	if m.session.InFlight() {
		return buttonDisabledStyle.Render(m.spinner.View() + " " + buttonLabel)
	}
	if m.focus == focusButton {
		return buttonFocusedStyle.Render(buttonLabel)
	}
	return buttonStyle.Render(buttonLabel)
}

func (m Model) viewResult(result *models.LookupResult) string {
	lines := make([]string, 0, result.Len())
	for _, f := range result.Fields {
		lines = append(lines, resultKeyStyle.Render(models.DisplayKey(f.Key)+":")+" "+resultValueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}

// Frame width limits
const (
	minFrameWidth = 50
	maxFrameWidth = 80
)

// renderWithDynamicWidth centres the form in the terminal once its size is known
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return boxStyle.Render(content)
	}

	frame := boxStyle.
		Padding(1, 2).
		Width(m.frameWidth())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(content))
}

// frameWidth is the content width of the form frame, border excluded
func (m Model) frameWidth() int {
	width := m.width - 4
	if width > maxFrameWidth {
		width = maxFrameWidth
	}
	if width < minFrameWidth {
		width = minFrameWidth
	}
	return width
}
