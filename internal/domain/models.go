package domain

import "time"

// Mode selects the pacing rules for a session. It is fixed at creation.
type Mode string

const (
	ModeClassic    Mode = "classic"
	ModeBuzzer     Mode = "buzzer"
	ModeSpeedRound Mode = "speed-round"
	ModeLightning  Mode = "lightning"
)

// TimeLimit returns the per-question time limit for the mode.
func (m Mode) TimeLimit() time.Duration {
	switch m {
	case ModeSpeedRound:
		return 15 * time.Second
	case ModeLightning:
		return 10 * time.Second
	default:
		return 30 * time.Second
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeClassic, ModeBuzzer, ModeSpeedRound, ModeLightning:
		return true
	}
	return false
}

// Phase is the session state machine's current state.
type Phase string

const (
	PhaseLobby        Phase = "lobby"
	PhaseQuestion     Phase = "question"
	PhaseBuzzerActive Phase = "buzzer-active"
	PhaseAnswerReveal Phase = "answer-reveal"
	PhaseEnded        Phase = "ended"
)

// GenreMixed disables topic filtering and pools questions from every genre.
const GenreMixed = "mixed"

// Question is immutable once added to a session. CorrectAnswer must never
// reach team clients while the question is active.
type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Options          []string `json:"options"`
	CorrectAnswer    string   `json:"correctAnswer"`
	TimeLimitSeconds int      `json:"timeLimitSeconds"`
	Topic            string   `json:"topic"`
}

// QuestionView is the answer-free projection of a question sent to clients.
type QuestionView struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Options          []string `json:"options"`
	TimeLimitSeconds int      `json:"timeLimitSeconds"`
	Topic            string   `json:"topic"`
	QuestionNumber   int      `json:"questionNumber"`
	TotalQuestions   int      `json:"totalQuestions"`
	Mode             Mode     `json:"gameMode"`
}

// AnswerRecord is one team's submission for one question, append-only.
type AnswerRecord struct {
	QuestionID    string `json:"questionId"`
	Answer        string `json:"answer"`
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	ElapsedMillis int64  `json:"elapsedMillis"`
}

// Team is a joined participant device.
type Team struct {
	ID          string         `json:"teamId"`
	DisplayName string         `json:"displayName"`
	Score       int            `json:"score"`
	Answers     []AnswerRecord `json:"answers,omitempty"`
	JoinedAt    time.Time      `json:"-"`
}

// LeaderboardEntry is a snapshot-friendly view of one team's standing.
type LeaderboardEntry struct {
	TeamID       string `json:"teamId"`
	DisplayName  string `json:"displayName"`
	Score        int    `json:"score"`
	AnswersCount int    `json:"answersCount"`
}
