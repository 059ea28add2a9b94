package repository

import (
	"context"
	"errors"
	"fmt"

	"activities-service/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// PostgresRegistry — реестр кружков поверх Postgres.
// Включается только переменной DB_DSN; по умолчанию сервис работает
// с in-memory реестром и теряет состояние при рестарте.
type PostgresRegistry struct {
	db *Postgres
}

// NewPostgresRegistry создаёт реестр поверх существующего пула соединений.
func NewPostgresRegistry(db *Postgres) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

// Bootstrap создаёт схему и заполняет её стартовым набором кружков,
// если таблица пуста. Выполняется один раз при старте сервиса.
func (r *PostgresRegistry) Bootstrap(ctx context.Context, seed map[string]model.Activity) error {
	_, err := r.db.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS activities (
    name             TEXT PRIMARY KEY,
    description      TEXT NOT NULL,
    schedule         TEXT NOT NULL,
    max_participants INT  NOT NULL
);
CREATE TABLE IF NOT EXISTS participants (
    id            BIGSERIAL PRIMARY KEY,
    activity_name TEXT NOT NULL REFERENCES activities (name),
    email         TEXT NOT NULL,
    UNIQUE (activity_name, email)
);
`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	for name, a := range seed {
		_, err = tx.Exec(ctx, `
INSERT INTO activities (name, description, schedule, max_participants)
VALUES ($1, $2, $3, $4)
`, name, a.Description, a.Schedule, a.MaxParticipants)
		if err != nil {
			return fmt.Errorf("insert activity %s: %w", name, err)
		}
		for _, email := range a.Participants {
			_, err = tx.Exec(ctx, `
INSERT INTO participants (activity_name, email) VALUES ($1, $2)
`, name, email)
			if err != nil {
				return fmt.Errorf("insert participant %s: %w", email, err)
			}
		}
	}

	return nil
}

// ListActivities возвращает весь реестр: имя кружка → запись
// с участниками в порядке записи.
func (r *PostgresRegistry) ListActivities(ctx context.Context) (map[string]model.Activity, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT a.name, a.description, a.schedule, a.max_participants, p.email
FROM activities a
LEFT JOIN participants p ON p.activity_name = a.name
ORDER BY a.name, p.id
`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.Activity)

	for rows.Next() {
		var name, description, schedule string
		var maxParticipants int
		var email *string

		if err := rows.Scan(&name, &description, &schedule, &maxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		a, ok := out[name]
		if !ok {
			a = model.Activity{
				Description:     description,
				Schedule:        schedule,
				MaxParticipants: maxParticipants,
				Participants:    make([]string, 0),
			}
		}
		if email != nil {
			a.Participants = append(a.Participants, *email)
		}
		out[name] = a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

// AddParticipant записывает email на кружок. Дубликат перехватывается
// уникальным ограничением (activity_name, email).
func (r *PostgresRegistry) AddParticipant(ctx context.Context, activityName, email string) error {
	if err := r.activityExists(ctx, activityName); err != nil {
		return err
	}

	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO participants (activity_name, email) VALUES ($1, $2)
`, activityName, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальное ограничение по (activity_name, email) нарушено
			return ErrAlreadySignedUp
		}
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

// RemoveParticipant удаляет запись участника с кружка.
func (r *PostgresRegistry) RemoveParticipant(ctx context.Context, activityName, email string) error {
	if err := r.activityExists(ctx, activityName); err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, `
DELETE FROM participants WHERE activity_name = $1 AND email = $2
`, activityName, email)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *PostgresRegistry) activityExists(ctx context.Context, activityName string) error {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM activities WHERE name = $1)
`, activityName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return ErrActivityNotFound
	}
	return nil
}
