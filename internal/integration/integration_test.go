package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"bar-trivia-service/internal/app"
	"bar-trivia-service/internal/domain"
	pgcatalog "bar-trivia-service/internal/infra/postgres"
	pgmigrations "bar-trivia-service/internal/infra/postgres/migrations"
	infraredis "bar-trivia-service/internal/infra/redis"
	"bar-trivia-service/internal/questions"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestGameFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuestions(t, ctx, pgURL, seedRows())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	catalog := infraredis.NewCatalog(redisClient, pgcatalog.NewCatalog(pool), 5*time.Minute)
	bank := questions.NewBankSource(catalog)
	registry := infraredis.NewSessionRegistry(redisClient, 5*time.Minute)
	service := app.NewGameService(registry, bank, bank)

	created, _ := service.CreateSession("Quizmaster", domain.ModeClassic, "science")

	loaded, err := service.LoadBankQuestions(ctx, created.JoinCode, 2)
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("expected 2 questions from the seeded catalog, got %d", loaded)
	}

	// Second session for the same genre must come out of the redis cache.
	other, _ := service.CreateSession("Backup Host", domain.ModeClassic, "science")
	if _, err := service.LoadBankQuestions(ctx, other.JoinCode, 2); err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if val := redisClient.Exists(ctx, "trivia:catalog:science").Val(); val != 1 {
		t.Fatal("expected genre pool cached in redis")
	}

	alpha, err := service.JoinSession(created.JoinCode, "Alpha")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	beta, err := service.JoinSession(created.JoinCode, "Beta")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	view, err := service.StartSession(created.JoinCode)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	session, _ := service.Session(created.JoinCode)
	correct := correctAnswerFor(t, session, view.ID)

	result, err := service.SubmitAnswer(created.JoinCode, alpha.TeamID, correct)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct || result.Points < 100 {
		t.Fatalf("expected a scored correct answer, got %+v", result)
	}
	if _, err := service.SubmitAnswer(created.JoinCode, beta.TeamID, "definitely wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	reveal, err := service.RevealAnswer(created.JoinCode)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if reveal.CorrectAnswer != correct {
		t.Fatalf("reveal mismatch: %q vs %q", reveal.CorrectAnswer, correct)
	}
	if len(reveal.Leaderboard) != 2 || reveal.Leaderboard[0].TeamID != alpha.TeamID {
		t.Fatalf("expected Alpha leading, got %+v", reveal.Leaderboard)
	}

	if val := redisClient.Exists(ctx, "trivia:session:"+created.JoinCode).Val(); val != 1 {
		t.Fatal("expected session liveness key in redis")
	}
}

// correctAnswerFor digs the answer out of the session's own records; the
// client view deliberately hides it.
func correctAnswerFor(t *testing.T, session *app.Session, questionID string) string {
	t.Helper()
	view, ok := session.CurrentQuestion()
	if !ok || view.ID != questionID {
		t.Fatalf("active question mismatch")
	}
	// The seeded rows use the option text "Mars"/"Water" as answers; match
	// by text since views hide correctness.
	for _, row := range seedRows() {
		if row.text == view.Text {
			return row.correct
		}
	}
	t.Fatalf("question %q not in seed data", view.Text)
	return ""
}

type seedRow struct {
	genre   string
	text    string
	options []string
	correct string
	topic   string
}

func seedRows() []seedRow {
	return []seedRow{
		{"science", "What planet is known as the Red Planet?", []string{"Venus", "Mars", "Jupiter"}, "Mars", "Science"},
		{"science", "What is H2O commonly known as?", []string{"Salt", "Water", "Oxygen"}, "Water", "Science"},
		{"history", "In which year did World War II end?", []string{"1943", "1945", "1947"}, "1945", "History"},
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "triviapass", "POSTGRES_DB": "triviadb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://trivia:triviapass@%s:%s/triviadb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuestions(t *testing.T, ctx context.Context, dsn string, rows []seedRow) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, row := range rows {
		options, err := json.Marshal(row.options)
		if err != nil {
			t.Fatalf("marshal options: %v", err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO trivia_questions (genre, text, options, correct_answer, topic) VALUES (?, ?, ?::jsonb, ?, ?)`,
			row.genre, row.text, string(options), row.correct, row.topic); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
