// Package questions normalizes question content from either the curated
// bank or the Open Trivia DB into one canonical record shape.
package questions

import (
	"context"
	"math/rand"
)

// Record is a canonical question before a session assigns it an id and a
// time limit.
type Record struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Topic         string   `json:"topic"`
}

// Source draws up to count questions matching the genre filter. exclude
// lists question texts the caller already holds, so a draw avoids repeats.
// A failed draw returns no records at all, never a partial batch.
type Source interface {
	Draw(ctx context.Context, count int, genre string, exclude []string) ([]Record, error)
}

// Catalog supplies the curated pool for a genre (or everything for the
// mixed sentinel). Implementations live in infra: static, postgres, and the
// TTL caches wrapping them.
type Catalog interface {
	Load(ctx context.Context, genre string) ([]Record, error)
}

// shuffledOptions copies and reorders options so the correct answer's
// position carries no signal from the source ordering.
func shuffledOptions(rnd *rand.Rand, options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
