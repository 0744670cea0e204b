package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#98FB98")).
			Padding(0, 1)

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyDepth = 8

type interactiveModel struct {
	r       runner
	input   textinput.Model
	history []string
}

func runInteractive(capacity int) error {
	r, err := newRunner(capacity)
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.Placeholder = "push 5 | pop | insert 1 9 | erase 0 | resize 6 | assign 1 2 3 | clear"
	ti.Focus()

	m := &interactiveModel{r: r, input: ti}
	_, err = tea.NewProgram(m).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			switch line {
			case "":
				return m, nil
			case "q", "quit", "exit":
				return m, tea.Quit
			}
			m.exec(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) exec(line string) {
	op, err := parseCommand(line)
	if err == nil {
		err = m.r.apply(op)
	}

	var entry string
	if err != nil {
		entry = errorStyle.Render(fmt.Sprintf("%s -> %v", line, err))
	} else {
		entry = okStyle.Render(fmt.Sprintf("%s -> len %d", line, m.r.length()))
	}
	m.history = append(m.history, entry)
	if len(m.history) > historyDepth {
		m.history = m.history[len(m.history)-historyDepth:]
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("inplace vector · capacity %d · len %d", m.r.capacity(), m.r.length())))
	b.WriteString("\n\n")
	b.WriteString(m.viewSlots())
	b.WriteString("\n\n")

	for _, h := range m.history {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	if len(m.history) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to apply · q to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *interactiveModel) viewSlots() string {
	state := m.r.state()
	cells := make([]string, 0, m.r.capacity())
	for _, x := range state {
		cells = append(cells, liveStyle.Render(fmt.Sprintf("%d", x)))
	}
	for i := len(state); i < m.r.capacity(); i++ {
		cells = append(cells, freeStyle.Render("·"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
