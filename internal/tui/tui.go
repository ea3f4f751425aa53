// Package tui is the interactive EWKB inspector: paste a hex buffer,
// see the decoded shape, its WKT and the SQL that would store it.
package tui

import (
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	width  int
	height int

	ta     textarea.Model
	status string

	result *inspection
}

func New() Model {
	m := Model{
		status: "paste hex EWKB, ctrl+d to decode",
	}
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste hex EWKB here (e.g. 0101000020E6100000...). Ctrl+D to decode; Esc to quit."
	m.ta.CharLimit = 0
	m.ta.SetWidth(70)
	m.ta.SetHeight(5)
	m.ta.Focus()
	return m
}

// NewWithInput preloads and decodes a buffer at launch.
func NewWithInput(input string) Model {
	m := New()
	m.ta.SetValue(input)
	m.decode()
	return m
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(max(40, m.width-6))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+d", "enter":
			m.decode()
			return m, nil
		}
	}

	// everything else, cursor blinks included, goes to the textarea
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) decode() {
	input := m.ta.Value()
	if input == "" {
		m.status = "nothing to decode"
		m.result = nil
		return
	}
	res, err := inspect(input)
	if err != nil {
		m.status = "decode error: " + err.Error()
		m.result = nil
		return
	}
	m.result = res
	m.status = "decoded"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
