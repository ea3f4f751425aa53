package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		m.width = 80
	}
	contentWidth := max(40, m.width-2)

	header := titleStyle.Render(" magellan ─ EWKB inspector ")
	input := boxStyle.Width(contentWidth).Render(m.ta.View())

	var result string
	if m.result != nil {
		var sb strings.Builder
		for _, f := range m.result.fields {
			sb.WriteString(labelStyle.Render(f[0]+": ") + f[1] + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("wkt: ") + m.result.wkt + "\n")
		sb.WriteString(labelStyle.Render("sql: ") + m.result.sql)
		result = boxStyle.Width(contentWidth).Render(sb.String())
	}

	status := m.status
	if strings.HasPrefix(status, "decode error") {
		status = errStyle.Render(" " + status + " ")
	} else {
		status = dimStyle.Render(" " + status + " ")
	}

	ui := lipgloss.JoinVertical(lipgloss.Left, header, input, result, status)
	return appStyle.Render(ui)
}
