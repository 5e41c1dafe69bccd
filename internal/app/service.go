package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/questions"
)

const defaultQuestionCount = 10

// GameService contains the core session use cases. It resolves sessions
// through the registry on every call; liveness is never cached across the
// remote provider's await.
type GameService struct {
	registry SessionRegistry
	bank     questions.Source
	trivia   questions.Source
	now      func() time.Time
}

func NewGameService(registry SessionRegistry, bank, trivia questions.Source) *GameService {
	return &GameService{registry: registry, bank: bank, trivia: trivia, now: time.Now}
}

// NewGameServiceWithClock is test-only for deterministic timestamps; sessions
// created through the service inherit the clock.
func NewGameServiceWithClock(registry SessionRegistry, bank, trivia questions.Source, now func() time.Time) *GameService {
	s := NewGameService(registry, bank, trivia)
	s.now = now
	return s
}

// CreateResult is the acknowledgement payload for session creation.
type CreateResult struct {
	SessionID string      `json:"sessionId"`
	JoinCode  string      `json:"joinCode"`
	HostID    string      `json:"hostId"`
	Mode      domain.Mode `json:"gameMode"`
	Genre     string      `json:"genre"`
}

// CreateSession registers a new session under a fresh join code. Unknown
// modes and empty genres fall back to the classic/mixed defaults at this
// boundary so the state machine only ever sees valid shapes.
func (s *GameService) CreateSession(hostName string, mode domain.Mode, genre string) (CreateResult, error) {
	if !mode.Valid() {
		mode = domain.ModeClassic
	}
	if genre == "" {
		genre = domain.GenreMixed
	}

	session := newSessionWithClock(uuid.NewString(), uuid.NewString(), hostName, mode, genre, s.now)
	code, err := s.registry.Register(session)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{
		SessionID: session.ID(),
		JoinCode:  code,
		HostID:    session.HostID(),
		Mode:      mode,
		Genre:     genre,
	}, nil
}

// Session resolves a live session by join code.
func (s *GameService) Session(joinCode string) (*Session, bool) {
	return s.registry.Get(joinCode)
}

// LiveCount reports the number of live sessions, for the health endpoint.
func (s *GameService) LiveCount() int {
	return s.registry.Count()
}

// LoadBankQuestions draws count questions from the curated bank into a lobby
// session, skipping texts the session already holds.
func (s *GameService) LoadBankQuestions(ctx context.Context, joinCode string, count int) (int, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if count <= 0 {
		count = defaultQuestionCount
	}

	records, err := s.bank.Draw(ctx, count, session.Genre(), session.QuestionTexts())
	if err != nil {
		return 0, err
	}
	return session.AddQuestions(s.buildQuestions(session.Mode(), records))
}

// LoadTriviaQuestions draws count questions from the remote provider. The
// fetch holds no session state; the session is re-resolved afterwards and
// questions are applied only if it still exists and is still in the lobby.
// An eviction during the fetch is a no-op, not an error.
func (s *GameService) LoadTriviaQuestions(ctx context.Context, joinCode string, count int) (int, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if session.Phase() != domain.PhaseLobby {
		return 0, domain.ErrInvalidPhase
	}
	if count <= 0 {
		count = defaultQuestionCount
	}
	mode, genre := session.Mode(), session.Genre()

	records, err := s.trivia.Draw(ctx, count, genre, nil)
	if err != nil {
		return 0, err
	}

	session, ok = s.registry.Get(joinCode)
	if !ok {
		return 0, nil
	}
	return session.AddQuestions(s.buildQuestions(mode, records))
}

// AddQuestion appends one host-authored question to a lobby session.
func (s *GameService) AddQuestion(joinCode string, record questions.Record) (int, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return session.AddQuestions(s.buildQuestions(session.Mode(), []questions.Record{record}))
}

func (s *GameService) buildQuestions(mode domain.Mode, records []questions.Record) []domain.Question {
	limit := int(mode.TimeLimit().Seconds())
	qs := make([]domain.Question, 0, len(records))
	for _, rec := range records {
		qs = append(qs, domain.Question{
			ID:               uuid.NewString(),
			Text:             rec.Text,
			Options:          rec.Options,
			CorrectAnswer:    rec.CorrectAnswer,
			TimeLimitSeconds: limit,
			Topic:            rec.Topic,
		})
	}
	return qs
}

// JoinResult is the acknowledgement payload for a team join.
type JoinResult struct {
	TeamID      string       `json:"teamId"`
	DisplayName string       `json:"displayName"`
	Phase       domain.Phase `json:"phase"`
	TotalTeams  int          `json:"totalTeams"`
}

// JoinSession adds a team to a lobby session under a fresh team id.
func (s *GameService) JoinSession(joinCode, displayName string) (JoinResult, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return JoinResult{}, domain.ErrSessionNotFound
	}
	teamID := uuid.NewString()
	total, err := session.Join(teamID, displayName)
	if err != nil {
		return JoinResult{}, err
	}
	return JoinResult{
		TeamID:      teamID,
		DisplayName: displayName,
		Phase:       session.Phase(),
		TotalTeams:  total,
	}, nil
}

// StartSession begins the game, returning the first question's client view.
func (s *GameService) StartSession(joinCode string) (domain.QuestionView, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return domain.QuestionView{}, domain.ErrSessionNotFound
	}
	return session.Start()
}

// AdvanceQuestion moves the session forward, ending it past the last question.
func (s *GameService) AdvanceQuestion(joinCode string) (AdvanceResult, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return AdvanceResult{}, domain.ErrSessionNotFound
	}
	return session.Advance()
}

// SubmitAnswer records a team's answer for the active question.
func (s *GameService) SubmitAnswer(joinCode, teamID, answer string) (SubmitResult, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return SubmitResult{}, domain.ErrSessionNotFound
	}
	return session.SubmitAnswer(teamID, answer)
}

// RevealAnswer freezes the active question and exposes answer plus standings.
func (s *GameService) RevealAnswer(joinCode string) (RevealResult, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return RevealResult{}, domain.ErrSessionNotFound
	}
	return session.Reveal()
}

// Leaderboard returns the current standings for any participant.
func (s *GameService) Leaderboard(joinCode string) ([]domain.LeaderboardEntry, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session.Leaderboard(), nil
}

// ArmBuzzer opens a buzzer race cycle.
func (s *GameService) ArmBuzzer(joinCode string) error {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.ArmBuzzer()
}

// ClearBuzzer resets the claim cycle while keeping the buzzer armed.
func (s *GameService) ClearBuzzer(joinCode string) error {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.ClearBuzzer()
}

// ClaimResult identifies the buzzer race winner.
type ClaimResult struct {
	TeamID      string `json:"teamId"`
	DisplayName string `json:"displayName"`
}

// ClaimBuzzer arbitrates a team's claim; at most one wins per cycle.
func (s *GameService) ClaimBuzzer(joinCode, teamID string) (ClaimResult, error) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return ClaimResult{}, domain.ErrSessionNotFound
	}
	name, err := session.ClaimBuzzer(teamID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{TeamID: teamID, DisplayName: name}, nil
}

// TeamLeft describes a roster change from a leave or disconnect.
type TeamLeft struct {
	TeamID      string `json:"teamId"`
	DisplayName string `json:"displayName"`
	TotalTeams  int    `json:"totalTeams"`
	Evicted     bool   `json:"-"`
}

// LeaveTeam removes a team and evicts the session immediately when it was
// the last team in a lobby.
func (s *GameService) LeaveTeam(joinCode, teamID string) (TeamLeft, bool) {
	session, ok := s.registry.Get(joinCode)
	if !ok {
		return TeamLeft{}, false
	}
	name, remaining, removed := session.RemoveTeam(teamID)
	if !removed {
		return TeamLeft{}, false
	}

	left := TeamLeft{TeamID: teamID, DisplayName: name, TotalTeams: remaining}
	if remaining == 0 && session.Phase() == domain.PhaseLobby {
		s.registry.Evict(joinCode)
		left.Evicted = true
	}
	return left, true
}

// HostDisconnected starts the abandonment clock for a session whose host
// connection dropped. The session keeps running; the sweeper ends it only
// after the grace period.
func (s *GameService) HostDisconnected(joinCode string) {
	if session, ok := s.registry.Get(joinCode); ok {
		session.MarkHostGone(s.now())
	}
}

// HostReconnected clears the abandonment clock.
func (s *GameService) HostReconnected(joinCode string) {
	if session, ok := s.registry.Get(joinCode); ok {
		session.MarkHostGone(time.Time{})
	}
}
