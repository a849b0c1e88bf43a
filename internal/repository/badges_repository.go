package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechu-app/gamify/pkg/cleanup"
	"github.com/baechu-app/gamify/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(cfg DBConfig) *BadgesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for badgesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BadgesRepository{
		conn: pool,
	}
}

func NewBadgesRepoWithConn(conn PgConnection) *BadgesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) GetEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error) {
	var doc []byte
	row := br.conn.QueryRow(ctx, `SELECT earned FROM badges WHERE user_id = $1;`, uid)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []entity.EarnedBadge{}, nil
		}
		return nil, errors.New("getting earned badges error: " + err.Error())
	}
	earned := make([]entity.EarnedBadge, 0)
	if err := sonic.Unmarshal(doc, &earned); err != nil {
		return nil, errors.New("unmarshalling earned badges error: " + err.Error())
	}
	return earned, nil
}

func (br *BadgesRepository) SaveEarned(ctx context.Context, uid uuid.UUID, earned []entity.EarnedBadge) error {
	doc, err := sonic.Marshal(earned)
	if err != nil {
		return errors.New("marshalling earned badges error: " + err.Error())
	}
	_, err = br.conn.Exec(
		ctx,
		`INSERT INTO badges (user_id, earned) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET earned = EXCLUDED.earned;`,
		uid,
		doc,
	)
	if err != nil {
		return errors.New("saving earned badges error: " + err.Error())
	}
	return nil
}
