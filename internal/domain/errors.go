package domain

import "errors"

var (
	// ErrSessionNotFound is returned when no live session matches a join code.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTeamNotFound is returned when a team tries to act before joining.
	ErrTeamNotFound = errors.New("team not found in session")
	// ErrInvalidPhase rejects an operation that is not valid in the current phase.
	ErrInvalidPhase = errors.New("operation not valid in current phase")
	// ErrAlreadyClaimed indicates another team won the buzzer this cycle.
	ErrAlreadyClaimed = errors.New("buzzer already claimed")
	// ErrDuplicateSubmission rejects a second answer for the same question.
	ErrDuplicateSubmission = errors.New("answer already submitted for this question")
	// ErrProviderUnavailable indicates the remote question source failed.
	ErrProviderUnavailable = errors.New("question provider unavailable")
	// ErrEmptyQuestionSet rejects starting a session with no questions loaded.
	ErrEmptyQuestionSet = errors.New("no questions loaded")
	// ErrCapacityReached indicates every join code is assigned to a live session.
	ErrCapacityReached = errors.New("no free join codes")
)

// Kind maps an error to the wire-level error kind reported in acknowledgements.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return "not-found"
	case errors.Is(err, ErrTeamNotFound):
		return "team-not-found"
	case errors.Is(err, ErrInvalidPhase):
		return "invalid-phase"
	case errors.Is(err, ErrAlreadyClaimed):
		return "already-claimed"
	case errors.Is(err, ErrDuplicateSubmission):
		return "duplicate-submission"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider-unavailable"
	case errors.Is(err, ErrEmptyQuestionSet):
		return "empty-question-set"
	case errors.Is(err, ErrCapacityReached):
		return "capacity"
	default:
		return "internal"
	}
}
