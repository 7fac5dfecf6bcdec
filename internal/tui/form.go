package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/draft"
)

// which form field currently has focus
type focusField int

const (
	focusLanguage focusField = iota
	focusMode
	focusProblem
	focusConstraints
	focusSolution
	fieldCount
)

// the submission form: the presentation shell over DraftStore and the
// analyze client. Owns the single-flight gate; the request client stays
// stateless.
type FormModel struct {
	clientCfg  analyze.Config
	authSecret string
	store      *draft.Store

	langIndex   int
	modeIndex   int
	problem     textinput.Model
	constraints textinput.Model
	solution    textarea.Model
	focus       focusField

	inFlight bool
	errMsg   string
	spinner  spinner.Model

	width  int
	height int
}

func NewFormModel(clientCfg analyze.Config, authSecret string, store *draft.Store) *FormModel {
	problem := textinput.New()
	problem.Placeholder = "problem statement (optional)"
	problem.CharLimit = 0
	problem.Prompt = ""

	constraints := textinput.New()
	constraints.Placeholder = "constraints, e.g. n <= 10^5 (optional)"
	constraints.CharLimit = 0
	constraints.Prompt = ""

	solution := textarea.New()
	solution.Placeholder = "paste your solution here..."
	solution.CharLimit = 0
	solution.SetHeight(12)

	m := &FormModel{
		clientCfg:   clientCfg,
		authSecret:  authSecret,
		store:       store,
		problem:     problem,
		constraints: constraints,
		solution:    solution,
		focus:       focusSolution,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.seedFromDraft(store.Load())
	m.applyFocus()

	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textarea.Blink
}

// fills the form from a persisted draft
func (m *FormModel) seedFromDraft(d draft.Draft) {
	m.langIndex = optionIndex(languageOptions, d.Language)
	m.modeIndex = optionIndex(modeOptions, d.Mode)
	m.problem.SetValue(d.Problem)
	m.constraints.SetValue(d.Constraints)
	m.solution.SetValue(d.Solution)
}

func optionIndex(options []Option, id string) int {
	for i, opt := range options {
		if opt.ID == id {
			return i
		}
	}

	return 0
}

// the draft as currently edited; always fully populated
func (m *FormModel) currentDraft() draft.Draft {
	return draft.Draft{
		Language:    languageOptions[m.langIndex].ID,
		Mode:        modeOptions[m.modeIndex].ID,
		Problem:     m.problem.Value(),
		Constraints: m.constraints.Value(),
		Solution:    m.solution.Value(),
	}
}

func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.focus = (m.focus + 1) % fieldCount
			return m, m.applyFocus()

		case "shift+tab":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			return m, m.applyFocus()

		case "ctrl+s":
			return m, m.submit()

		case "ctrl+l":
			m.clear()
			return m, nil
		}

		if m.focus == focusLanguage || m.focus == focusMode {
			m.updateSelector(msg.String())
			return m, nil
		}

		cmd := m.updateFocusedInput(msg)
		// persist after every mutation - the whole draft, as one unit
		m.store.Save(m.currentDraft())

		return m, cmd

	case spinner.TickMsg:
		if m.inFlight {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}

		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

// cycles the focused selector with left/right
func (m *FormModel) updateSelector(key string) {
	var index *int
	var size int

	if m.focus == focusLanguage {
		index, size = &m.langIndex, len(languageOptions)
	} else {
		index, size = &m.modeIndex, len(modeOptions)
	}

	switch key {
	case "left", "h":
		*index = (*index + size - 1) % size
	case "right", "l":
		*index = (*index + 1) % size
	default:
		return
	}

	m.store.Save(m.currentDraft())
}

func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.focus {
	case focusProblem:
		m.problem, cmd = m.problem.Update(msg)
	case focusConstraints:
		m.constraints, cmd = m.constraints.Update(msg)
	case focusSolution:
		m.solution, cmd = m.solution.Update(msg)
	}

	return cmd
}

func (m *FormModel) applyFocus() tea.Cmd {
	m.problem.Blur()
	m.constraints.Blur()
	m.solution.Blur()

	switch m.focus {
	case focusProblem:
		return m.problem.Focus()
	case focusConstraints:
		return m.constraints.Focus()
	case focusSolution:
		return m.solution.Focus()
	default:
		return nil
	}
}

// starts one exchange if the gate allows it. The previous error is
// cleared as soon as a new submission starts.
func (m *FormModel) submit() tea.Cmd {
	d := m.currentDraft()

	verdict := m.store.Validate(d, m.inFlight)
	if !verdict.CanSubmit {
		return nil
	}

	m.inFlight = true
	m.errMsg = ""

	return tea.Batch(m.spinner.Tick, submitCmd(m.clientCfg, m.authSecret, buildRequest(d)))
}

// marks the current exchange finished; errMsg is empty on success
func (m *FormModel) FinishExchange(errMsg string) {
	m.inFlight = false
	m.errMsg = errMsg
}

// resets the form to defaults and removes the persisted draft
func (m *FormModel) clear() {
	m.store.Clear()
	m.seedFromDraft(draft.DefaultDraft())
	m.errMsg = ""
}

func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inner := max(20, width-8)
	m.problem.Width = inner
	m.constraints.Width = inner
	m.solution.SetWidth(inner)
}

func (m *FormModel) View() string {
	var b strings.Builder

	header := titleStyle.Render("CRITIQUE")
	help := helpStyle.Render("[Tab: Next Field] [Ctrl+S: Analyze] [Ctrl+L: Clear] [Ctrl+C: Exit]")

	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(help)
	b.WriteString("\n\n")

	b.WriteString(m.selectorView("Language", languageOptions, m.langIndex, m.focus == focusLanguage))
	b.WriteString("   ")
	b.WriteString(m.selectorView("Mode", modeOptions, m.modeIndex, m.focus == focusMode))
	b.WriteString("\n\n")

	b.WriteString(m.inputView("Problem", m.problem.View(), m.focus == focusProblem))
	b.WriteString("\n")
	b.WriteString(m.inputView("Constraints", m.constraints.View(), m.focus == focusConstraints))
	b.WriteString("\n")
	b.WriteString(m.inputView("Solution", m.solution.View(), m.focus == focusSolution))
	b.WriteString("\n")

	b.WriteString(m.statusView())

	return b.String()
}

func (m *FormModel) selectorView(label string, options []Option, index int, focused bool) string {
	style := labelStyle
	if focused {
		style = labelFocusedStyle
	}

	value := fmt.Sprintf("< %s >", options[index].Label)

	return style.Render(label+":") + " " + selectorValueStyle.Render(value)
}

func (m *FormModel) inputView(label string, view string, focused bool) string {
	border := blurredBorderStyle
	if focused {
		border = focusedBorderStyle
	}

	inner := max(20, m.width-8)

	return labelStyle.Render(label) + "\n" + border.Width(inner+2).Render(view)
}

// exactly one message at a time: the spinner while in flight, else the
// last exchange error, else the validation verdict
func (m *FormModel) statusView() string {
	if m.inFlight {
		return statusStyle.Render(m.spinner.View() + " analyzing your solution...")
	}

	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}

	verdict := m.store.Validate(m.currentDraft(), false)
	if !verdict.CanSubmit {
		return statusStyle.Render(verdict.Message)
	}

	return readyStyle.Render("Ready. Press Ctrl+S to analyze.")
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
