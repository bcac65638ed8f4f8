// Package tui renders the prediction form in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"soilindex/form"
	"soilindex/soil"
)

const (
	predictButton = soil.FieldCount + iota
	copyButton
	focusCount
)

type Model struct {
	state     form.State
	inputs    []textinput.Model
	focus     int
	runner    *soil.Runner
	clipboard Clipboard
	logger    *zap.Logger
	width     int
}

func New(runner *soil.Runner, clipboard Clipboard, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	inputs := make([]textinput.Model, soil.FieldCount)
	for _, f := range soil.Fields() {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = f.Description()
		in.CharLimit = 32
		in.Width = 24
		inputs[f] = in
	}
	inputs[0].Focus()

	return Model{
		state:     form.New(),
		inputs:    inputs,
		runner:    runner,
		clipboard: clipboard,
		logger:    logger.Named("form"),
	}
}

func (m Model) State() form.State {
	return m.state
}

func (m Model) Focus() int {
	return m.focus
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// a notice blocks the form until it is dismissed
	if m.state.Blocked() {
		switch key {
		case "enter", "esc", " ":
			m.state = form.Dismiss(m.state)
		}
		return m, nil
	}

	switch key {
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+p":
		m.predict()
		return m, nil
	case "ctrl+y":
		m.copyAll()
		return m, nil
	case "f1":
		m.state = form.HowToUse(m.state)
		return m, nil
	case "f2":
		m.state = form.About(m.state)
		return m, nil
	case "enter":
		if m.focus == copyButton {
			m.copyAll()
		} else {
			m.predict()
		}
		return m, nil
	}

	if m.focus >= soil.FieldCount {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.state = form.SetField(m.state, soil.Field(m.focus), m.inputs[m.focus].Value())
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) predict() {
	m.state = form.Submit(context.Background(), m.state, m.runner)
	if n := m.state.Notice; n != nil {
		m.logger.Warn("prediction rejected",
			zap.String("kind", n.Kind.String()),
			zap.String("message", n.Message),
			zap.Strings("input", m.state.Raw[:]))
		return
	}
	m.logger.Info("prediction",
		zap.Strings("input", m.state.Raw[:]),
		zap.String("pi", m.state.PI()),
		zap.String("result", m.state.Result))
}

func (m *Model) copyAll() {
	if m.clipboard == nil {
		m.state = form.CopyFailed(m.state, fmt.Errorf("clipboard not available"))
		return
	}
	if err := m.clipboard.Copy(form.ClipboardText(m.state)); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.state = form.CopyFailed(m.state, err)
		return
	}
	m.logger.Debug("copied inputs and results")
	m.state = form.Copied(m.state)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Cc and SI Prediction"))
	b.WriteString("\n")

	if n := m.state.Notice; n != nil {
		b.WriteString(renderNotice(n))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("enter/esc: dismiss • ctrl+c: quit"))
		return b.String()
	}

	for _, f := range soil.Fields() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(f.Label()), m.inputs[f].View()))
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render("  " + f.Description()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Plasticity Index (PI):"))
	b.WriteString(PIStyle.Render(m.state.PI()))
	if w := m.state.Warning(); w != "" {
		b.WriteString("  ")
		b.WriteString(WarningStyle.Render(w))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.button("Predict Cc & SI", predictButton),
		m.button("Copy All", copyButton)))
	b.WriteString("\n")

	result := m.state.Result
	if result == "" {
		result = " "
	}
	panel := PanelStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 4)
	}
	b.WriteString(panel.Render("Results:\n" + result))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab/↑/↓: move • enter/ctrl+p: predict • ctrl+y: copy all • f1: how to use • f2: about • ctrl+c: quit"))
	return b.String()
}

func (m Model) button(label string, index int) string {
	if m.focus == index {
		return ActiveButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

func renderNotice(n *form.Notice) string {
	title := n.Title
	if n.Level == form.LevelError {
		title = ErrorStyle.Render(title)
	}
	return NoticeStyle.Render(title + "\n\n" + n.Message)
}
