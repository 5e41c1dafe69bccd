package app

import (
	"time"

	"bar-trivia-service/internal/domain"
)

// claimAuditCap bounds the losing-claim audit entries kept per arming cycle.
const claimAuditCap = 8

type buzzerClaim struct {
	TeamID string    `json:"teamId"`
	At     time.Time `json:"at"`
}

// buzzerState tracks one arming cycle of the buzzer race. claimedBy, once
// set, does not change until the host re-arms or clears the buzzer.
type buzzerState struct {
	claimedBy  string
	claimOrder []buzzerClaim
}

// ArmBuzzer puts the session into the buzzer-active sub-state with a fresh
// claim cycle. Only valid in buzzer mode, from the question phase (or while
// already armed, which re-arms).
func (s *Session) ArmBuzzer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeBuzzer {
		return domain.ErrInvalidPhase
	}
	if s.phase != domain.PhaseQuestion && s.phase != domain.PhaseBuzzerActive {
		return domain.ErrInvalidPhase
	}
	s.phase = domain.PhaseBuzzerActive
	s.buzzer = buzzerState{}
	return nil
}

// ClearBuzzer resets the claim cycle but keeps the buzzer armed.
func (s *Session) ClearBuzzer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseBuzzerActive {
		return domain.ErrInvalidPhase
	}
	s.buzzer = buzzerState{}
	return nil
}

// ClaimBuzzer resolves a team's claim. The first claim applied under the
// session mutex wins and transitions the session back to the question phase;
// every later claim in the same arming cycle gets ErrAlreadyClaimed, even
// though the winner already moved the phase on. ErrInvalidPhase is reserved
// for sessions where no cycle is open at all. Arrival order into the engine
// breaks ties, never client-reported timestamps.
func (s *Session) ClaimBuzzer(teamID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return "", domain.ErrTeamNotFound
	}
	if s.buzzer.claimedBy != "" {
		// The cycle is settled; record the loser, capped.
		if len(s.buzzer.claimOrder) < claimAuditCap {
			s.buzzer.claimOrder = append(s.buzzer.claimOrder, buzzerClaim{TeamID: teamID, At: s.now()})
		}
		return "", domain.ErrAlreadyClaimed
	}
	if s.phase != domain.PhaseBuzzerActive {
		return "", domain.ErrInvalidPhase
	}

	s.buzzer.claimedBy = teamID
	s.buzzer.claimOrder = append(s.buzzer.claimOrder, buzzerClaim{TeamID: teamID, At: s.now()})
	s.phase = domain.PhaseQuestion
	return team.DisplayName, nil
}

// BuzzerWinner returns the team holding the current claim, if any.
func (s *Session) BuzzerWinner() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buzzer.claimedBy, s.buzzer.claimedBy != ""
}
