package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/draft"
)

func NewApp(clientCfg analyze.Config, authSecret string, store *draft.Store) *Model {
	return &Model{
		state:  StateForm,
		form:   NewFormModel(clientCfg, authSecret, store),
		result: NewResultModel(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateResult {
				m.state = StateForm
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetSize(msg.Width, msg.Height)
		m.result.SetSize(msg.Width, msg.Height)
		return m, nil

	case analyzeSuccessMsg:
		// a success outcome is consumed by the display layer and the
		// exchange is over; the form is free for the next submission
		m.form.FinishExchange("")
		m.result.SetResult(msg.result)
		m.state = StateResult
		return m, nil

	case analyzeFailureMsg:
		m.form.FinishExchange(msg.err.Message)
		return m, nil
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)

	case StateResult:
		return m.updateResult(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateForm:
		return m.form.View()

	case StateResult:
		return m.result.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	return m, cmd
}

func (m *Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)

	return m, cmd
}
