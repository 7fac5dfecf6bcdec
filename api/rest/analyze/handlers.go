package analyze

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/critique/client/internal/errors"
	"codeberg.org/critique/client/internal/logger"
)

const minSolutionLength = 20

var validModes = map[string]bool{
	"interview": true,
	"simple":    true,
	"deep":      true,
}

// serves a deterministic canned analysis so the TUI can be developed
// against a real HTTP surface without the production service
func Handler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.ValidationError(c, err)
		return
	}

	if !validModes[req.Mode] {
		errors.BadRequest(c, fmt.Sprintf("unknown mode %q", req.Mode))
		return
	}

	if len(strings.TrimSpace(req.Solution)) < minSolutionLength {
		errors.BadRequest(c, fmt.Sprintf("solution must be at least %d characters", minSolutionLength))
		return
	}

	logger.Info("serving canned analysis",
		"language", req.Language,
		"mode", req.Mode,
		"solution_length", len(req.Solution),
	)

	c.JSON(http.StatusOK, cannedResponse(req))
}

// builds a plausible response shaped by the request. Deep mode returns
// more material, matching how the production service scales its output.
func cannedResponse(req AnalyzeRequest) AnalyzeResponse {
	resp := AnalyzeResponse{
		Summary: []string{
			fmt.Sprintf("A %s solution submitted in %s mode.", req.Language, req.Mode),
			fmt.Sprintf("The solution is %d characters long.", len(req.Solution)),
		},
		Correctness: Correctness{
			Intuition:   "The approach iterates over the input once, accumulating state.",
			Invariants:  []string{"processed prefix is always consistent with the accumulator"},
			ProofSketch: "Induction over the input: each step preserves the accumulator invariant.",
		},
		Complexity: Complexity{
			Time:        "O(n)",
			Space:       "O(1)",
			Explanation: "One pass over the input with constant extra state.",
		},
		EdgeCases: []EdgeCase{
			{Case: "empty input", Why: "the loop body never runs"},
		},
		Pitfalls: []string{
			"Integer overflow on large accumulations.",
		},
		Tests: []TestCase{
			{Input: "[]", Expected: "0", Purpose: "empty input"},
			{Input: "[1, 2, 3]", Expected: "6", Purpose: "typical case"},
		},
		Improvements: []string{
			"Name intermediate values to make the invariant visible.",
		},
	}

	if req.Problem == "" {
		resp.Summary = append(resp.Summary, "No problem statement was provided; the analysis is based on the code alone.")
	}

	if req.Mode == "deep" {
		resp.Correctness.Invariants = append(resp.Correctness.Invariants,
			"no element is visited twice")
		resp.EdgeCases = append(resp.EdgeCases,
			EdgeCase{Case: "single element", Why: "boundary between empty and typical inputs"},
			EdgeCase{Case: "all elements equal", Why: "stresses tie-breaking logic"},
		)
		resp.Tests = append(resp.Tests,
			TestCase{Input: "[5]", Expected: "5", Purpose: "singleton"},
		)
	}

	return resp
}
