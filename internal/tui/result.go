package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/logger"
)

// displays one analysis result as rendered markdown in a scrollable
// viewport. Holds at most one result; a new exchange replaces it.
type ResultModel struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	ready    bool
}

func NewResultModel() *ResultModel {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.ErrorErr(err, "failed to create markdown renderer")
	}

	return &ResultModel{
		viewport: viewport.New(100, 30),
		renderer: renderer,
	}
}

func (m *ResultModel) SetResult(result *analyze.Result) {
	markdown := formatResult(result)

	content := markdown
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(markdown); err == nil {
			content = rendered
		}
	}

	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.ready = true
}

func (m *ResultModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(20, width-4)
	m.viewport.Height = max(5, height-6)
}

func (m *ResultModel) Update(msg tea.Msg) (*ResultModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *ResultModel) View() string {
	if !m.ready {
		return infoStyle.Render("no result yet")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ANALYSIS"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[↑/↓: Scroll] [Esc: Back to Form] [Ctrl+C: Exit]"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())

	return b.String()
}

// lays the result out as markdown, sections in service order, sequence
// fields in the order the service returned them
func formatResult(r *analyze.Result) string {
	var b strings.Builder

	writeListSection(&b, "Summary", r.Summary)

	b.WriteString("## Correctness\n\n")
	if r.Correctness.Intuition != "" {
		fmt.Fprintf(&b, "**Intuition.** %s\n\n", r.Correctness.Intuition)
	}
	for _, inv := range r.Correctness.Invariants {
		fmt.Fprintf(&b, "- %s\n", inv)
	}
	if len(r.Correctness.Invariants) > 0 {
		b.WriteString("\n")
	}
	if r.Correctness.ProofSketch != "" {
		fmt.Fprintf(&b, "**Proof sketch.** %s\n\n", r.Correctness.ProofSketch)
	}

	b.WriteString("## Complexity\n\n")
	fmt.Fprintf(&b, "- Time: %s\n", r.Complexity.Time)
	fmt.Fprintf(&b, "- Space: %s\n", r.Complexity.Space)
	if r.Complexity.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Complexity.Explanation)
	}
	b.WriteString("\n")

	if len(r.EdgeCases) > 0 {
		b.WriteString("## Edge Cases\n\n")
		for _, ec := range r.EdgeCases {
			fmt.Fprintf(&b, "- **%s**: %s\n", ec.Case, ec.Why)
		}
		b.WriteString("\n")
	}

	writeListSection(&b, "Pitfalls", r.Pitfalls)

	if len(r.Tests) > 0 {
		b.WriteString("## Tests\n\n")
		for _, tc := range r.Tests {
			fmt.Fprintf(&b, "- input `%s` expects `%s` (%s)\n", tc.Input, tc.Expected, tc.Purpose)
		}
		b.WriteString("\n")
	}

	writeListSection(&b, "Improvements", r.Improvements)

	return b.String()
}

func writeListSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
