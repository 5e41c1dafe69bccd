package questions

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// BankSource draws from a curated catalog. It never fails for a known
// catalog: when every question matching the filter has already been used it
// falls back to allowing repeats rather than coming up short.
type BankSource struct {
	catalog Catalog

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBankSource(catalog Catalog) *BankSource {
	return &BankSource{
		catalog: catalog,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Draw selects up to count questions from the catalog's pool for genre,
// skipping texts in exclude until the filtered pool is exhausted. Option
// order is randomized per question.
func (b *BankSource) Draw(ctx context.Context, count int, genre string, exclude []string) ([]Record, error) {
	pool, err := b.catalog.Load(ctx, genre)
	if err != nil {
		return nil, err
	}

	used := make(map[string]struct{}, len(exclude))
	for _, text := range exclude {
		used[text] = struct{}{}
	}
	fresh := make([]Record, 0, len(pool))
	for _, rec := range pool {
		if _, ok := used[rec.Text]; !ok {
			fresh = append(fresh, rec)
		}
	}
	// Every matching question already used: allow repeats.
	if len(fresh) == 0 {
		fresh = append(fresh, pool...)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.rnd.Shuffle(len(fresh), func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})
	if count > len(fresh) {
		count = len(fresh)
	}

	drawn := make([]Record, 0, count)
	for _, rec := range fresh[:count] {
		rec.Options = shuffledOptions(b.rnd, rec.Options)
		drawn = append(drawn, rec)
	}
	return drawn, nil
}
