package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/numcalc/internal/calculus"
)

const maxScrollback = 200

type entry struct {
	input, output string
	failed        bool
}

type replModel struct {
	session       *Session
	editBuf       string
	history       []entry
	recall        int
	width, height int
}

func newREPL(e *calculus.Engine) replModel {
	return replModel{session: NewSession(e), recall: -1, width: 80, height: 24}
}

func (m replModel) Init() tea.Cmd { return nil }

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m replModel) handleKey(msg tea.KeyMsg) (replModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			r := []rune(m.editBuf)
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		m.recallStep(1)
	case tea.KeyDown:
		m.recallStep(-1)
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
	return m, nil
}

func (m *replModel) submit() {
	line := strings.TrimSpace(m.editBuf)
	m.editBuf, m.recall = "", -1
	if line == "" {
		return
	}
	out, err := m.session.Exec(line)
	e := entry{input: line, output: out}
	if err != nil {
		e.output, e.failed = Error(err), true
	}
	m.history = append(m.history, e)
	if len(m.history) > maxScrollback {
		m.history = m.history[len(m.history)-maxScrollback:]
	}
}

// recallStep moves through earlier inputs, newest first.
func (m *replModel) recallStep(delta int) {
	next := m.recall + delta
	if next < -1 || next >= len(m.history) {
		return
	}
	m.recall = next
	if next == -1 {
		m.editBuf = ""
		return
	}
	m.editBuf = m.history[len(m.history)-1-next].input
}

func (m replModel) View() string {
	var b strings.Builder
	b.WriteString(Title.Render("numcalc") + " " + Subtle.Render("expression evaluator") + "\n")
	b.WriteString(Separator(min(m.width, 60)) + "\n")

	visible := m.history
	if rows := max(m.height-6, 1) / 2; len(visible) > rows {
		visible = visible[len(visible)-rows:]
	}
	for _, e := range visible {
		b.WriteString(Subtle.Render("> ") + e.input + "\n")
		if e.failed {
			b.WriteString(e.output + "\n")
		} else {
			b.WriteString(Value.Render(e.output) + "\n")
		}
	}

	b.WriteString(Prompt.Render("> ") + m.editBuf + "_\n")
	b.WriteString(KeyHint.Render("enter evaluate  ↑/↓ history  esc quit  help commands") + "\n")
	return b.String()
}

// RunREPL starts the interactive evaluator on the terminal.
func RunREPL(e *calculus.Engine) error {
	_, err := tea.NewProgram(newREPL(e)).Run()
	return err
}
