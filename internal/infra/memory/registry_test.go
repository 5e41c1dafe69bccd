package memory_test

import (
	"regexp"
	"testing"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/infra/memory"
)

var codePattern = regexp.MustCompile(`^[1-9]\d{3}$`)

func newSession(id string) *app.Session {
	return app.NewSession(id, "host-"+id, "Host", domain.ModeClassic, "mixed")
}

func TestRegisterAssignsUniqueCodes(t *testing.T) {
	registry := memory.NewSessionRegistry()

	codes := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		session := newSession(string(rune('a' + i%26)))
		code, err := registry.Register(session)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if !codePattern.MatchString(code) {
			t.Fatalf("unexpected code format %q", code)
		}
		if _, dup := codes[code]; dup {
			t.Fatalf("code %s assigned twice", code)
		}
		codes[code] = struct{}{}
		if session.JoinCode() != code {
			t.Fatalf("session not stamped with its code: %q vs %q", session.JoinCode(), code)
		}
	}
	if registry.Count() != 200 {
		t.Fatalf("expected 200 live sessions, got %d", registry.Count())
	}
}

func TestGetAndEvict(t *testing.T) {
	registry := memory.NewSessionRegistry()
	session := newSession("s1")
	code, _ := registry.Register(session)

	got, ok := registry.Get(code)
	if !ok || got.ID() != "s1" {
		t.Fatalf("lookup failed: ok=%v", ok)
	}

	registry.Evict(code)
	if _, ok := registry.Get(code); ok {
		t.Fatal("session resolvable after evict")
	}
	if registry.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", registry.Count())
	}
}

func TestLiveSnapshot(t *testing.T) {
	registry := memory.NewSessionRegistry()
	registry.Register(newSession("s1"))
	registry.Register(newSession("s2"))

	live := registry.Live()
	if len(live) != 2 {
		t.Fatalf("expected 2 live sessions, got %d", len(live))
	}
}

func fillRegistry(t *testing.T, registry *memory.SessionRegistry) {
	t.Helper()
	for i := 0; i < app.JoinCodeSpace; i++ {
		if _, err := registry.Register(newSession("fill")); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
}

func TestRegisterFailsWhenAllCodesTaken(t *testing.T) {
	registry := memory.NewSessionRegistry()
	fillRegistry(t, registry)

	if _, err := registry.Register(newSession("overflow")); err != domain.ErrCapacityReached {
		t.Fatalf("expected ErrCapacityReached, got %v", err)
	}
	if registry.Count() != app.JoinCodeSpace {
		t.Fatalf("expected %d live sessions, got %d", app.JoinCodeSpace, registry.Count())
	}
}

func TestEvictedCodeCanBeReassigned(t *testing.T) {
	registry := memory.NewSessionRegistry()
	fillRegistry(t, registry)

	// With every other code taken, the freed one is the only candidate.
	registry.Evict("4242")
	code, err := registry.Register(newSession("reuse"))
	if err != nil {
		t.Fatalf("register after evict: %v", err)
	}
	if code != "4242" {
		t.Fatalf("expected freed code 4242 to be reassigned, got %s", code)
	}
}
