package memory

import (
	"math/rand"
	"sync"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
)

// SessionRegistry is the in-memory implementation of app.SessionRegistry.
type SessionRegistry struct {
	mu       sync.RWMutex
	rnd      *rand.Rand
	sessions map[string]*app.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*app.Session),
	}
}

// Register stores the session under a join code that no live session holds,
// retrying generation on collision. A registry already holding every code
// reports capacity instead of spinning.
func (r *SessionRegistry) Register(session *app.Session) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sessions) >= app.JoinCodeSpace {
		return "", domain.ErrCapacityReached
	}
	var code string
	for {
		code = app.NewJoinCode(r.rnd)
		if _, taken := r.sessions[code]; !taken {
			break
		}
	}
	r.sessions[code] = session
	session.SetJoinCode(code)
	return code, nil
}

func (r *SessionRegistry) Get(joinCode string) (*app.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[joinCode]
	return session, ok
}

func (r *SessionRegistry) Evict(joinCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, joinCode)
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) Live() []*app.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	live := make([]*app.Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		live = append(live, session)
	}
	return live
}
