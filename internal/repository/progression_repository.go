package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechu-app/gamify/pkg/cleanup"
	"github.com/baechu-app/gamify/pkg/entity"
)

type ProgressionRepository struct {
	conn PgConnection
}

func NewProgressionRepo(cfg DBConfig) *ProgressionRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressionRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressionRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressionRepository{
		conn: pool,
	}
}

func NewProgressionRepoWithConn(conn PgConnection) *ProgressionRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressionRepo: " + err.Error())
	}
	return &ProgressionRepository{
		conn: conn,
	}
}

func (pr *ProgressionRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error) {
	prog := entity.UserProgression{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT xp FROM progression WHERE user_id = $1;`, uid)
	if err := row.Scan(&prog.XP); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Created lazily on first interaction
			return &prog, nil
		}
		return nil, errors.New("getting progression error: " + err.Error())
	}
	return &prog, nil
}

func (pr *ProgressionRepository) Save(ctx context.Context, prog *entity.UserProgression) error {
	if prog == nil {
		return errors.New("progression is nil")
	}
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO progression (user_id, xp) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET xp = EXCLUDED.xp;`,
		prog.UserID,
		prog.XP,
	)
	if err != nil {
		return errors.New("saving progression error: " + err.Error())
	}
	return nil
}
