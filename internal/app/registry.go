package app

import (
	"fmt"
	"math/rand"
)

// JoinCodeSpace is the number of distinct join codes. A registry holding
// this many live sessions cannot accept another.
const JoinCodeSpace = 9000

// SessionRegistry is the process-wide table of live sessions keyed by join
// code. It is the single source of truth for whether a code is live; callers
// must not cache that answer across asynchronous work.
type SessionRegistry interface {
	// Register assigns a free join code to the session, stores it, and
	// returns the code. Code generation retries on collision with a live
	// session; a full registry returns domain.ErrCapacityReached.
	Register(session *Session) (string, error)
	// Get resolves a live session by join code.
	Get(joinCode string) (*Session, bool)
	// Evict removes a session from the registry.
	Evict(joinCode string)
	// Count returns the number of live sessions.
	Count() int
	// Live snapshots the current sessions for sweeps.
	Live() []*Session
}

// NewJoinCode draws a 4-digit code in 1000–9999. Uniqueness against live
// sessions is the registry's responsibility, not the generator's.
func NewJoinCode(rnd *rand.Rand) string {
	return fmt.Sprintf("%04d", 1000+rnd.Intn(9000))
}
