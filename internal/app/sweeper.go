package app

import (
	"context"
	"log"
	"time"
)

const (
	// DefaultRetention keeps ended sessions resolvable for late leaderboard
	// reads before the sweep reclaims their codes.
	DefaultRetention = 30 * time.Minute
	// DefaultHostGrace is how long a session survives without its host
	// before the sweep force-ends it.
	DefaultHostGrace = 10 * time.Minute

	sweepInterval = time.Minute
)

// Sweeper periodically reclaims registry entries: ended sessions past the
// retention window, and sessions abandoned by their host past the grace
// period.
type Sweeper struct {
	registry  SessionRegistry
	retention time.Duration
	hostGrace time.Duration
	now       func() time.Time
}

func NewSweeper(registry SessionRegistry, retention, hostGrace time.Duration) *Sweeper {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if hostGrace <= 0 {
		hostGrace = DefaultHostGrace
	}
	return &Sweeper{registry: registry, retention: retention, hostGrace: hostGrace, now: time.Now}
}

// NewSweeperWithClock is test-only for deterministic sweeps.
func NewSweeperWithClock(registry SessionRegistry, retention, hostGrace time.Duration, now func() time.Time) *Sweeper {
	s := NewSweeper(registry, retention, hostGrace)
	s.now = now
	return s
}

// Start runs the sweep loop until ctx is canceled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
	log.Println("session sweep routine started")
}

// Sweep runs one pass and returns the join codes it evicted.
func (s *Sweeper) Sweep() []string {
	now := s.now()
	var evicted []string

	for _, session := range s.registry.Live() {
		code := session.JoinCode()

		if endedAt, ended := session.EndedSince(); ended {
			if now.Sub(endedAt) >= s.retention {
				s.registry.Evict(code)
				evicted = append(evicted, code)
				log.Printf("evicted ended session %s", code)
			}
			continue
		}

		if goneAt, gone := session.HostGoneSince(); gone && now.Sub(goneAt) >= s.hostGrace {
			session.ForceEnd()
			s.registry.Evict(code)
			evicted = append(evicted, code)
			log.Printf("evicted host-abandoned session %s", code)
		}
	}
	return evicted
}
