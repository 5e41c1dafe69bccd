package app_test

import (
	"testing"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/infra/memory"
)

func TestSweepEvictsEndedSessions(t *testing.T) {
	clock := newTestClock()
	registry := memory.NewSessionRegistry()
	sweeper := app.NewSweeperWithClock(registry, 30*time.Minute, 10*time.Minute, clock.Now)

	session := newTestSession(domain.ModeClassic, clock)
	code, _ := registry.Register(session)
	session.ForceEnd()

	clock.Advance(29 * time.Minute)
	if evicted := sweeper.Sweep(); len(evicted) != 0 {
		t.Fatalf("expected nothing evicted inside retention, got %v", evicted)
	}

	clock.Advance(2 * time.Minute)
	evicted := sweeper.Sweep()
	if len(evicted) != 1 || evicted[0] != code {
		t.Fatalf("expected %s evicted, got %v", code, evicted)
	}
	if _, ok := registry.Get(code); ok {
		t.Fatal("session still resolvable after sweep")
	}
}

func TestSweepForceEndsAbandonedSessions(t *testing.T) {
	clock := newTestClock()
	registry := memory.NewSessionRegistry()
	sweeper := app.NewSweeperWithClock(registry, 30*time.Minute, 10*time.Minute, clock.Now)

	session := newTestSession(domain.ModeClassic, clock)
	session.AddQuestions(sampleQuestions(1))
	session.Join("t1", "Alpha")
	registry.Register(session)
	session.Start()
	session.MarkHostGone(clock.Now())

	clock.Advance(9 * time.Minute)
	if evicted := sweeper.Sweep(); len(evicted) != 0 {
		t.Fatalf("expected session to survive the grace period, got %v", evicted)
	}

	clock.Advance(2 * time.Minute)
	if evicted := sweeper.Sweep(); len(evicted) != 1 {
		t.Fatalf("expected abandoned session evicted, got %v", evicted)
	}
	if session.Phase() != domain.PhaseEnded {
		t.Fatalf("expected force-ended session, got phase %s", session.Phase())
	}
}

func TestSweepSparesHealthySessions(t *testing.T) {
	clock := newTestClock()
	registry := memory.NewSessionRegistry()
	sweeper := app.NewSweeperWithClock(registry, 30*time.Minute, 10*time.Minute, clock.Now)

	session := newTestSession(domain.ModeClassic, clock)
	session.AddQuestions(sampleQuestions(1))
	session.Join("t1", "Alpha")
	code, _ := registry.Register(session)
	session.Start()

	clock.Advance(3 * time.Hour)
	if evicted := sweeper.Sweep(); len(evicted) != 0 {
		t.Fatalf("expected a running hosted session to survive, got %v", evicted)
	}
	if _, ok := registry.Get(code); !ok {
		t.Fatal("healthy session lost")
	}
}

func TestSweepGraceClearedByReturningHost(t *testing.T) {
	clock := newTestClock()
	registry := memory.NewSessionRegistry()
	sweeper := app.NewSweeperWithClock(registry, 30*time.Minute, 10*time.Minute, clock.Now)

	session := newTestSession(domain.ModeClassic, clock)
	session.AddQuestions(sampleQuestions(1))
	session.Join("t1", "Alpha")
	registry.Register(session)
	session.Start()

	session.MarkHostGone(clock.Now())
	clock.Advance(5 * time.Minute)
	session.MarkHostGone(time.Time{})
	clock.Advance(20 * time.Minute)

	if evicted := sweeper.Sweep(); len(evicted) != 0 {
		t.Fatalf("expected reconnected host to reset the clock, got %v", evicted)
	}
}
