package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// secretModel is a single masked input line.
type secretModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newSecretModel(label string) secretModel {
	ti := textinput.New()
	ti.Prompt = label + " "
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	return secretModel{input: ti}
}

func (m secretModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m secretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m secretModel) View() string {
	if m.done || m.aborted {
		// Leave the masked line on screen once input ends.
		return m.input.Prompt + strings.Repeat("*", len([]rune(m.input.Value()))) + "\n"
	}
	return m.input.View()
}

// readMasked runs the masked input on the terminal in.
func readMasked(in io.Reader, out io.Writer, label string) (string, bool, error) {
	p := tea.NewProgram(newSecretModel(label), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	m, ok := final.(secretModel)
	if !ok {
		return "", true, nil
	}
	return m.input.Value(), m.aborted, nil
}
