package app

import (
	"sort"
	"sync"
	"time"

	"bar-trivia-service/internal/domain"
)

// Session is the in-memory state machine for one live quiz game. All
// mutations take the session mutex, so concurrent operations against the
// same session are applied one at a time in arrival order.
type Session struct {
	id       string
	hostID   string
	hostName string
	mode     domain.Mode
	genre    string

	now       func() time.Time
	createdAt time.Time

	mu                sync.RWMutex
	joinCode          string
	phase             domain.Phase
	questions         []domain.Question
	current           int
	questionStartedAt time.Time
	teams             map[string]*domain.Team
	buzzer            buzzerState
	final             []domain.LeaderboardEntry
	endedAt           time.Time
	hostGoneSince     time.Time
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id, hostID, hostName string, mode domain.Mode, genre string) *Session {
	return newSessionWithClock(id, hostID, hostName, mode, genre, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id, hostID, hostName string, mode domain.Mode, genre string, now func() time.Time) *Session {
	return newSessionWithClock(id, hostID, hostName, mode, genre, now)
}

func newSessionWithClock(id, hostID, hostName string, mode domain.Mode, genre string, now func() time.Time) *Session {
	return &Session{
		id:        id,
		hostID:    hostID,
		hostName:  hostName,
		mode:      mode,
		genre:     genre,
		now:       now,
		createdAt: now(),
		phase:     domain.PhaseLobby,
		current:   -1,
		teams:     make(map[string]*domain.Team),
	}
}

// ID returns the session's immutable identifier.
func (s *Session) ID() string { return s.id }

// HostID returns the creating client's identifier.
func (s *Session) HostID() string { return s.hostID }

// Mode returns the session's game mode.
func (s *Session) Mode() domain.Mode { return s.mode }

// Genre returns the session's topic filter.
func (s *Session) Genre() string { return s.genre }

// JoinCode returns the code assigned by the registry, or "" before registration.
func (s *Session) JoinCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinCode
}

// SetJoinCode is called by the registry exactly once at registration.
func (s *Session) SetJoinCode(code string) {
	s.mu.Lock()
	s.joinCode = code
	s.mu.Unlock()
}

// Phase returns the current state-machine phase.
func (s *Session) Phase() domain.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// TeamCount returns the number of joined teams.
func (s *Session) TeamCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}

// QuestionCount returns the number of loaded questions.
func (s *Session) QuestionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

// IsEmpty reports whether the session has no teams.
func (s *Session) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams) == 0
}

// Join registers a team while the session is still in the lobby.
func (s *Session) Join(teamID, displayName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseLobby {
		return 0, domain.ErrInvalidPhase
	}
	s.teams[teamID] = &domain.Team{
		ID:          teamID,
		DisplayName: displayName,
		JoinedAt:    s.now(),
	}
	return len(s.teams), nil
}

// RemoveTeam drops a team (explicit leave or disconnect) and returns its
// display name with the remaining roster size.
func (s *Session) RemoveTeam(teamID string) (string, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return "", len(s.teams), false
	}
	delete(s.teams, teamID)
	return team.DisplayName, len(s.teams), true
}

// AddQuestions appends questions while in the lobby. The append is
// all-or-nothing: it either succeeds entirely or leaves the list untouched.
func (s *Session) AddQuestions(qs []domain.Question) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseLobby {
		return len(s.questions), domain.ErrInvalidPhase
	}
	s.questions = append(s.questions, qs...)
	return len(s.questions), nil
}

// QuestionTexts returns the texts of already loaded questions, used by the
// bank source to avoid drawing repeats.
func (s *Session) QuestionTexts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	texts := make([]string, 0, len(s.questions))
	for _, q := range s.questions {
		texts = append(texts, q.Text)
	}
	return texts
}

// Start moves the session from lobby to the first question.
func (s *Session) Start() (domain.QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseLobby {
		return domain.QuestionView{}, domain.ErrInvalidPhase
	}
	if len(s.questions) == 0 {
		return domain.QuestionView{}, domain.ErrEmptyQuestionSet
	}
	s.advanceLocked()
	return s.currentViewLocked(), nil
}

// AdvanceResult is the outcome of a host advance: either the next question
// or the terminal state with the final leaderboard.
type AdvanceResult struct {
	Ended          bool
	Question       domain.QuestionView
	FinalBoard     []domain.LeaderboardEntry
	TotalQuestions int
}

// Advance moves to the next question, or ends the session when none remain.
// The final leaderboard is computed exactly once on the lobby-to-ended edge.
func (s *Session) Advance() (AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case domain.PhaseLobby, domain.PhaseEnded:
		return AdvanceResult{}, domain.ErrInvalidPhase
	}

	if s.advanceLocked() {
		return AdvanceResult{Question: s.currentViewLocked()}, nil
	}
	return AdvanceResult{
		Ended:          true,
		FinalBoard:     s.final,
		TotalQuestions: len(s.questions),
	}, nil
}

// advanceLocked bumps the question index, returning false once exhausted.
func (s *Session) advanceLocked() bool {
	s.current++
	if s.current < len(s.questions) {
		s.phase = domain.PhaseQuestion
		s.questionStartedAt = s.now()
		s.buzzer = buzzerState{}
		return true
	}
	s.phase = domain.PhaseEnded
	s.endedAt = s.now()
	s.final = s.leaderboardLocked()
	return false
}

// SubmitResult reports the scored outcome of one answer.
type SubmitResult struct {
	Correct       bool
	Points        int
	TotalScore    int
	ElapsedMillis int64
}

// SubmitAnswer records a team's answer for the active question. The first
// submission per (team, question) is authoritative; later ones are rejected.
func (s *Session) SubmitAnswer(teamID, answer string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseQuestion {
		return SubmitResult{}, domain.ErrInvalidPhase
	}
	team, ok := s.teams[teamID]
	if !ok {
		return SubmitResult{}, domain.ErrTeamNotFound
	}
	question := s.questions[s.current]
	for _, rec := range team.Answers {
		if rec.QuestionID == question.ID {
			return SubmitResult{}, domain.ErrDuplicateSubmission
		}
	}

	elapsed := s.now().Sub(s.questionStartedAt)
	correct, points := scoreAnswer(answer, question, elapsed)
	team.Answers = append(team.Answers, domain.AnswerRecord{
		QuestionID:    question.ID,
		Answer:        answer,
		Correct:       correct,
		Points:        points,
		ElapsedMillis: elapsed.Milliseconds(),
	})
	team.Score += points

	return SubmitResult{
		Correct:       correct,
		Points:        points,
		TotalScore:    team.Score,
		ElapsedMillis: elapsed.Milliseconds(),
	}, nil
}

// RevealResult carries the answer and standings exposed on reveal.
type RevealResult struct {
	CorrectAnswer string                    `json:"correctAnswer"`
	Leaderboard   []domain.LeaderboardEntry `json:"leaderboard"`
}

// Reveal freezes scoring for the active question and exposes the answer.
func (s *Session) Reveal() (RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseQuestion {
		return RevealResult{}, domain.ErrInvalidPhase
	}
	s.phase = domain.PhaseAnswerReveal
	return RevealResult{
		CorrectAnswer: s.questions[s.current].CorrectAnswer,
		Leaderboard:   s.leaderboardLocked(),
	}, nil
}

// Leaderboard returns the current standings, non-increasing by score.
func (s *Session) Leaderboard() []domain.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaderboardLocked()
}

func (s *Session) leaderboardLocked() []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(s.teams))
	for _, team := range s.teams {
		entries = append(entries, domain.LeaderboardEntry{
			TeamID:       team.ID,
			DisplayName:  team.DisplayName,
			Score:        team.Score,
			AnswersCount: len(team.Answers),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})
	return entries
}

func (s *Session) currentViewLocked() domain.QuestionView {
	q := s.questions[s.current]
	return domain.QuestionView{
		ID:               q.ID,
		Text:             q.Text,
		Options:          q.Options,
		TimeLimitSeconds: q.TimeLimitSeconds,
		Topic:            q.Topic,
		QuestionNumber:   s.current + 1,
		TotalQuestions:   len(s.questions),
		Mode:             s.mode,
	}
}

// CurrentQuestion returns the active question's client view, if any.
func (s *Session) CurrentQuestion() (domain.QuestionView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current < 0 || s.current >= len(s.questions) {
		return domain.QuestionView{}, false
	}
	return s.currentViewLocked(), true
}

// EndedSince returns when the session reached the ended phase.
func (s *Session) EndedSince() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endedAt, s.phase == domain.PhaseEnded
}

// ForceEnd moves the session to ended regardless of phase, computing the
// final leaderboard if it has not been computed yet. Used by the sweeper
// when a host never returns.
func (s *Session) ForceEnd() []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseEnded {
		s.phase = domain.PhaseEnded
		s.endedAt = s.now()
		s.final = s.leaderboardLocked()
	}
	return s.final
}

// MarkHostGone records a host disconnect; zero time clears the marker.
func (s *Session) MarkHostGone(at time.Time) {
	s.mu.Lock()
	s.hostGoneSince = at
	s.mu.Unlock()
}

// HostGoneSince returns when the host disconnected, if it has.
func (s *Session) HostGoneSince() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hostGoneSince, !s.hostGoneSince.IsZero()
}
