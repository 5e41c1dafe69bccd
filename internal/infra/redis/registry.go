package redis

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SessionRegistry is a Redis-aware implementation of app.SessionRegistry.
// Notes:
//   - Sessions themselves stay in a local map: the state machine runs
//     in-process and is not serialized.
//   - Redis keys mark join-code liveness with a TTL safety net, and could be
//     extended to share snapshots or route cross-instance pub/sub.
type SessionRegistry struct {
	client *redis.Client
	ttl    time.Duration

	mu       sync.RWMutex
	rnd      *rand.Rand
	sessions map[string]*app.Session
}

func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		client:   client,
		ttl:      ttl,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*app.Session),
	}
}

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
	// best-effort liveness marker
	_ = r.client.Set(context.Background(), r.key(code), session.ID(), r.ttl).Err()
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
	if _, ok := r.sessions[joinCode]; !ok {
		return
	}
	delete(r.sessions, joinCode)
	_ = r.client.Del(context.Background(), r.key(joinCode)).Err()
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

func (r *SessionRegistry) key(joinCode string) string {
	return "trivia:session:" + joinCode
}
