package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/questions"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Catalog loads curated question pools from Postgres. Options are stored as
// a JSONB array per row.
type Catalog struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func (c *Catalog) Load(ctx context.Context, genre string) ([]questions.Record, error) {
	const byGenre = `SELECT text, options, correct_answer, topic FROM trivia_questions WHERE genre=$1`
	const all = `SELECT text, options, correct_answer, topic FROM trivia_questions`

	var (
		rows pgx.Rows
		err  error
	)
	if genre == domain.GenreMixed || genre == "" {
		rows, err = c.pool.Query(ctx, all)
	} else {
		rows, err = c.pool.Query(ctx, byGenre, genre)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var records []questions.Record
	for rows.Next() {
		var rec questions.Record
		var rawOptions []byte
		if err := rows.Scan(&rec.Text, &rawOptions, &rec.CorrectAnswer, &rec.Topic); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if err := json.Unmarshal(rawOptions, &rec.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return records, nil
}
