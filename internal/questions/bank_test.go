package questions

import (
	"context"
	"testing"
)

type mapCatalog map[string][]Record

func (c mapCatalog) Load(_ context.Context, genre string) ([]Record, error) {
	return c[genre], nil
}

func scienceCatalog() mapCatalog {
	return mapCatalog{
		"science": {
			{Text: "q1", Options: []string{"a", "b", "c"}, CorrectAnswer: "a", Topic: "Science"},
			{Text: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: "b", Topic: "Science"},
			{Text: "q3", Options: []string{"a", "b", "c"}, CorrectAnswer: "c", Topic: "Science"},
		},
	}
}

func TestDrawSkipsExcludedTexts(t *testing.T) {
	bank := NewBankSource(scienceCatalog())

	drawn, err := bank.Draw(context.Background(), 3, "science", []string{"q1", "q3"})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if len(drawn) != 1 || drawn[0].Text != "q2" {
		t.Fatalf("expected only q2 available, got %+v", drawn)
	}
}

func TestDrawFallsBackToRepeats(t *testing.T) {
	bank := NewBankSource(scienceCatalog())

	drawn, err := bank.Draw(context.Background(), 2, "science", []string{"q1", "q2", "q3"})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if len(drawn) != 2 {
		t.Fatalf("expected repeats once the pool is exhausted, got %d", len(drawn))
	}
}

func TestDrawCapsAtPoolSize(t *testing.T) {
	bank := NewBankSource(scienceCatalog())

	drawn, err := bank.Draw(context.Background(), 50, "science", nil)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if len(drawn) != 3 {
		t.Fatalf("expected the whole pool, got %d", len(drawn))
	}
}

func TestDrawShufflesOptionsKeepingAnswer(t *testing.T) {
	bank := NewBankSource(scienceCatalog())

	drawn, err := bank.Draw(context.Background(), 3, "science", nil)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	for _, rec := range drawn {
		if len(rec.Options) != 3 {
			t.Fatalf("options lost in shuffle: %+v", rec)
		}
		found := false
		for _, opt := range rec.Options {
			if opt == rec.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Fatalf("correct answer missing from options: %+v", rec)
		}
	}
}

func TestCuratedBankShape(t *testing.T) {
	for genre, pool := range CuratedBank() {
		if len(pool) == 0 {
			t.Fatalf("genre %q has no questions", genre)
		}
		for _, rec := range pool {
			if rec.Text == "" || len(rec.Options) < 2 {
				t.Fatalf("malformed question in %q: %+v", genre, rec)
			}
			found := false
			for _, opt := range rec.Options {
				if opt == rec.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Fatalf("answer not among options in %q: %+v", genre, rec)
			}
		}
	}
}
