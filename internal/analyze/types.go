package analyze

// feedback depth requested from the analysis service
type Mode string

const (
	ModeInterview Mode = "interview"
	ModeSimple    Mode = "simple"
	ModeDeep      Mode = "deep"
)

// reports whether m is one of the modes the service accepts
func (m Mode) Valid() bool {
	switch m {
	case ModeInterview, ModeSimple, ModeDeep:
		return true
	}

	return false
}

// wire payload for one analyze exchange.
// Problem and Constraints are omitted entirely when empty - the service
// treats an empty string and an absent field differently.
type Request struct {
	Language    string `json:"language"`
	Mode        Mode   `json:"mode"`
	Problem     string `json:"problem,omitempty"`
	Constraints string `json:"constraints,omitempty"`
	Solution    string `json:"solution"`
}

// structured feedback returned by the analysis service.
// The client passes these fields through untouched; interpreting them is
// the display layer's job.
type Result struct {
	Summary      []string    `json:"summary"`
	Correctness  Correctness `json:"correctness"`
	Complexity   Complexity  `json:"complexity"`
	EdgeCases    []EdgeCase  `json:"edgeCases"`
	Pitfalls     []string    `json:"pitfalls"`
	Tests        []TestCase  `json:"tests"`
	Improvements []string    `json:"improvements"`
}

// correctness analysis of the submitted solution
type Correctness struct {
	Intuition   string   `json:"intuition"`
	Invariants  []string `json:"invariants"`
	ProofSketch string   `json:"proofSketch"`
}

// time/space complexity analysis
type Complexity struct {
	Time        string `json:"time"`
	Space       string `json:"space"`
	Explanation string `json:"explanation"`
}

// an edge case the solution should handle
type EdgeCase struct {
	Case string `json:"case"`
	Why  string `json:"why"`
}

// a generated test case
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Purpose  string `json:"purpose"`
}
