package draft

// the user's in-progress form input, persisted between sessions.
// Always fully populated: problem/constraints are stored as empty
// strings when unset and only converted to absent fields when the wire
// request is built.
type Draft struct {
	Language    string `json:"language"`
	Mode        string `json:"mode"`
	Problem     string `json:"problem"`
	Constraints string `json:"constraints"`
	Solution    string `json:"solution"`
}

// first-run defaults, also used when a persisted draft is unusable
func DefaultDraft() Draft {
	return Draft{
		Language:    "python",
		Mode:        "interview",
		Problem:     "",
		Constraints: "",
		Solution:    "",
	}
}

// reports whether a decoded draft has the expected shape. A persisted
// entry that fails this check is discarded wholesale.
func (d Draft) wellFormed() bool {
	if d.Language == "" {
		return false
	}

	switch d.Mode {
	case "interview", "simple", "deep":
		return true
	}

	return false
}
