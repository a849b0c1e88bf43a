package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

func TestGetEarnedBadges(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBadgesRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT earned FROM badges WHERE user_id = $1;`)
	uid := uuid.New()
	ctx := context.Background()
	earned := []entity.EarnedBadge{
		{BadgeID: "first-post", EarnedAt: time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)},
	}
	doc, err := sonic.Marshal(earned)
	require.NoError(t, err)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"earned"}).AddRow(doc))
		result, err := repo.GetEarned(ctx, uid)
		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "first-post", result[0].BadgeID)
	})
	t.Run("absent user gets empty set", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetEarned(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetEarned(ctx, uid)
		assert.Error(t, err)
	})
}

func TestSaveEarnedBadges(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBadgesRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO badges (user_id, earned) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET earned = EXCLUDED.earned;`)
	uid := uuid.New()
	ctx := context.Background()
	earned := []entity.EarnedBadge{
		{BadgeID: "first-post", EarnedAt: time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)},
		{BadgeID: "one-week-flame", EarnedAt: time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)},
	}
	t.Run("upserted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.SaveEarned(ctx, uid, earned))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.SaveEarned(ctx, uid, earned))
	})
}
