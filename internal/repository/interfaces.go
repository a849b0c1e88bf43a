package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/baechu-app/gamify/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ProgressionRepositoryI interface {
	// Loads user's cumulative xp. Unknown users get a fresh zero-xp record
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error)
	// Upserts the whole progression record in one statement
	Save(ctx context.Context, prog *entity.UserProgression) error
}

type AttendanceRepositoryI interface {
	// Loads attended days and streak counters. Unknown users get an empty state
	Get(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error)
	// Upserts the whole attendance record in one statement
	Save(ctx context.Context, state *entity.AttendanceState) error
}

type BadgesRepositoryI interface {
	// Loads the earned-badge set. Unknown users get an empty set
	GetEarned(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error)
	// Upserts the whole earned set in one statement. The set is append-only;
	// callers only ever pass a superset of what is stored
	SaveEarned(ctx context.Context, uid uuid.UUID, earned []entity.EarnedBadge) error
}

type DexRepositoryI interface {
	// Loads the per-item entry document keyed by item id
	Get(ctx context.Context, uid uuid.UUID) (map[string]entity.DexEntry, error)
	// Upserts the whole entry document in one statement
	Save(ctx context.Context, uid uuid.UUID, entries map[string]entity.DexEntry) error
}

type PostStatsRepositoryI interface {
	// Loads post/comment counters fed by the boards collaborator
	Get(ctx context.Context, uid uuid.UUID) (*entity.PostStats, error)
	// Bumps counters for one created post in a single statement
	IncrementPost(ctx context.Context, uid uuid.UUID, postType entity.PostType) error
	// Bumps the comment counter
	IncrementComments(ctx context.Context, uid uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
