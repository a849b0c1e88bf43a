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

type DexRepository struct {
	conn PgConnection
}

func NewDexRepo(cfg DBConfig) *DexRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dexRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dexRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DexRepository{
		conn: pool,
	}
}

func NewDexRepoWithConn(conn PgConnection) *DexRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dexRepo: " + err.Error())
	}
	return &DexRepository{
		conn: conn,
	}
}

func (dr *DexRepository) Get(ctx context.Context, uid uuid.UUID) (map[string]entity.DexEntry, error) {
	var doc []byte
	row := dr.conn.QueryRow(ctx, `SELECT entries FROM dex WHERE user_id = $1;`, uid)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return map[string]entity.DexEntry{}, nil
		}
		return nil, errors.New("getting dex entries error: " + err.Error())
	}
	entries := make(map[string]entity.DexEntry)
	if err := sonic.Unmarshal(doc, &entries); err != nil {
		return nil, errors.New("unmarshalling dex entries error: " + err.Error())
	}
	return entries, nil
}

func (dr *DexRepository) Save(ctx context.Context, uid uuid.UUID, entries map[string]entity.DexEntry) error {
	doc, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("marshalling dex entries error: " + err.Error())
	}
	_, err = dr.conn.Exec(
		ctx,
		`INSERT INTO dex (user_id, entries) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET entries = EXCLUDED.entries;`,
		uid,
		doc,
	)
	if err != nil {
		return errors.New("saving dex entries error: " + err.Error())
	}
	return nil
}
