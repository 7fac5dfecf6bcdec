package analyze

// request payload for a code analysis
type AnalyzeRequest struct {
	Language    string `json:"language" binding:"required"`
	Mode        string `json:"mode" binding:"required"`
	Problem     string `json:"problem,omitempty"`
	Constraints string `json:"constraints,omitempty"`
	Solution    string `json:"solution" binding:"required"`
}

// response payload for a code analysis
type AnalyzeResponse struct {
	Summary      []string    `json:"summary"`
	Correctness  Correctness `json:"correctness"`
	Complexity   Complexity  `json:"complexity"`
	EdgeCases    []EdgeCase  `json:"edgeCases"`
	Pitfalls     []string    `json:"pitfalls"`
	Tests        []TestCase  `json:"tests"`
	Improvements []string    `json:"improvements"`
}

type Correctness struct {
	Intuition   string   `json:"intuition"`
	Invariants  []string `json:"invariants"`
	ProofSketch string   `json:"proofSketch"`
}

type Complexity struct {
	Time        string `json:"time"`
	Space       string `json:"space"`
	Explanation string `json:"explanation"`
}

type EdgeCase struct {
	Case string `json:"case"`
	Why  string `json:"why"`
}

type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Purpose  string `json:"purpose"`
}
