package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/models"
	"github.com/lifelens/lifelens-cli/internal/render"
)

// SendMsg carries a submitted message up to the root model, which owns
// the network call.
type SendMsg struct {
	Message string
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	aiStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
)

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	messages []models.ChatMessage
	waiting  bool
	width    int
}

func New(width, height int) Model {
	vp := viewport.New(width, height-3)

	ti := textinput.New()
	ti.Placeholder = "Ask the assistant..."
	ti.CharLimit = 4000
	ti.Focus()

	return Model{
		viewport: vp,
		input:    ti,
		width:    width,
	}
}

// SetMessages replaces the conversation and scrolls to the bottom.
func (m *Model) SetMessages(messages []models.ChatMessage) {
	m.messages = messages
	m.waiting = false
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// SetWaiting toggles the "assistant is thinking" indicator.
func (m *Model) SetWaiting(waiting bool) {
	m.waiting = waiting
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// SetSize resizes the viewport and input.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - 3
	m.input.Width = width - 4
	m.viewport.SetContent(m.renderMessages())
}

func (m Model) renderMessages() string {
	if len(m.messages) == 0 && !m.waiting {
		return "No conversation yet. Type a message and press enter."
	}

	var b strings.Builder
	for _, msg := range m.messages {
		if msg.Sender == string(constants.SenderAI) {
			b.WriteString(aiStyle.Render("assistant"))
			b.WriteString("\n")
			b.WriteString(render.Markdown(msg.Message, m.width))
		} else {
			b.WriteString(userStyle.Render("you"))
			b.WriteString("  " + msg.Message + "\n")
		}
		b.WriteString("\n")
	}
	if m.waiting {
		b.WriteString(aiStyle.Render("assistant") + " is thinking...\n")
	}
	return b.String()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.waiting {
			return m, nil
		}
		m.input.Reset()
		return m, func() tea.Msg { return SendMsg{Message: text} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.viewport.View() + "\n\n" + m.input.View()
}
