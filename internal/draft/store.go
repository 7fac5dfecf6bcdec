package draft

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/critique/client/internal/logger"
)

// fixed identifier of the single draft slot
const draftKey = "critique_draft"

// minimum trimmed solution length before submission is allowed
const MinSolutionLength = 20

// result of gating a draft against the submission rules
type Verdict struct {
	CanSubmit bool
	Message   string
}

// durable source of truth for in-progress form input. Persistence
// failures degrade to "no persistence this session" - they are logged at
// debug level and never surfaced to the user, since losing a draft is
// not a correctness failure.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// reads the persisted draft. An absent, corrupt, or schema-mismatched
// entry yields the defaults; a corrupt entry is removed so it is not
// reread on the next load.
func (s *Store) Load() Draft {
	raw, ok, err := s.storage.Get(draftKey)
	if err != nil {
		logger.Debug("draft load failed, using defaults", "error", err)
		return DefaultDraft()
	}
	if !ok {
		return DefaultDraft()
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil || !d.wellFormed() {
		logger.Debug("discarding unusable persisted draft")
		s.discard()
		return DefaultDraft()
	}

	return d
}

// writes the full draft as one atomic unit, overwriting any prior value
func (s *Store) Save(d Draft) {
	data, err := json.Marshal(d)
	if err != nil {
		logger.Debug("draft marshal failed", "error", err)
		return
	}

	if err := s.storage.Set(draftKey, string(data)); err != nil {
		logger.Debug("draft save failed", "error", err)
	}
}

// removes the persisted entry; the next Load behaves as first-run
func (s *Store) Clear() {
	s.discard()
}

func (s *Store) discard() {
	if err := s.storage.Remove(draftKey); err != nil {
		logger.Debug("draft remove failed", "error", err)
	}
}

// gates submission: an exchange already in flight always blocks, then
// the trimmed solution must reach the minimum length
func (s *Store) Validate(d Draft, inFlight bool) Verdict {
	if inFlight {
		return Verdict{CanSubmit: false, Message: "Analysis already in progress."}
	}

	length := utf8.RuneCountInString(strings.TrimSpace(d.Solution))

	switch {
	case length == 0:
		return Verdict{CanSubmit: false, Message: "Paste a solution to get feedback."}
	case length < MinSolutionLength:
		need := MinSolutionLength - length
		return Verdict{CanSubmit: false, Message: fmt.Sprintf("Add at least %d more characters to submit.", need)}
	default:
		return Verdict{CanSubmit: true}
	}
}
