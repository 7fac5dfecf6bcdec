package tui

import (
	"codeberg.org/critique/client/internal/analyze"
)

// represents the current state of the TUI
type AppState int

const (
	StateForm AppState = iota
	StateResult
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	form   *FormModel
	result *ResultModel
}

// a selectable language or feedback mode
type Option struct {
	ID    string
	Label string
}

// languages the service accepts. Fixed enumeration owned by the shell;
// the core components only see the selected identifier.
var languageOptions = []Option{
	{ID: "python", Label: "Python"},
	{ID: "java", Label: "Java"},
	{ID: "cpp", Label: "C++"},
	{ID: "javascript", Label: "JavaScript"},
}

// feedback modes the service accepts
var modeOptions = []Option{
	{ID: "interview", Label: "Interview"},
	{ID: "simple", Label: "Simple"},
	{ID: "deep", Label: "Deep"},
}

// sent when an exchange completes successfully
type analyzeSuccessMsg struct {
	result *analyze.Result
}

// sent when an exchange fails
type analyzeFailureMsg struct {
	err *analyze.Error
}
