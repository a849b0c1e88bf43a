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

// PostStatsRepository keeps the per-user counters fed by the boards
// collaborator. Increments are single upsert statements, so a counter bump is
// atomic without explicit locking at the storage level.
type PostStatsRepository struct {
	conn PgConnection
}

func NewPostStatsRepo(cfg DBConfig) *PostStatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for postStatsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for postStatsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PostStatsRepository{
		conn: pool,
	}
}

func NewPostStatsRepoWithConn(conn PgConnection) *PostStatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for postStatsRepo: " + err.Error())
	}
	return &PostStatsRepository{
		conn: conn,
	}
}

func (psr *PostStatsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.PostStats, error) {
	stats := entity.PostStats{UserID: uid}
	row := psr.conn.QueryRow(
		ctx,
		`SELECT total_posts, recipe_posts, qna_answers, comments FROM post_stats WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&stats.TotalPosts, &stats.RecipePosts, &stats.QnaAnswers, &stats.Comments)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &stats, nil
		}
		return nil, errors.New("getting post stats error: " + err.Error())
	}
	return &stats, nil
}

func (psr *PostStatsRepository) IncrementPost(ctx context.Context, uid uuid.UUID, postType entity.PostType) error {
	var recipe, qna int
	switch postType {
	case entity.PostGeneral:
	case entity.PostRecipe:
		recipe = 1
	case entity.PostQnaAnswer:
		qna = 1
	default:
		return errors.New("unknown post type: " + string(postType))
	}
	_, err := psr.conn.Exec(
		ctx,
		`INSERT INTO post_stats (user_id, total_posts, recipe_posts, qna_answers, comments)
		VALUES ($1, 1, $2, $3, 0)
		ON CONFLICT (user_id) DO UPDATE SET
			total_posts = post_stats.total_posts + 1,
			recipe_posts = post_stats.recipe_posts + $2,
			qna_answers = post_stats.qna_answers + $3;`,
		uid,
		recipe,
		qna,
	)
	if err != nil {
		return errors.New("incrementing post stats error: " + err.Error())
	}
	return nil
}

func (psr *PostStatsRepository) IncrementComments(ctx context.Context, uid uuid.UUID) error {
	_, err := psr.conn.Exec(
		ctx,
		`INSERT INTO post_stats (user_id, total_posts, recipe_posts, qna_answers, comments)
		VALUES ($1, 0, 0, 0, 1)
		ON CONFLICT (user_id) DO UPDATE SET comments = post_stats.comments + 1;`,
		uid,
	)
	if err != nil {
		return errors.New("incrementing comment count error: " + err.Error())
	}
	return nil
}
