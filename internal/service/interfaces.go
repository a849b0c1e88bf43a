package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/baechu-app/gamify/internal/catalog"
	"github.com/baechu-app/gamify/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

// XpProgressInfo describes position inside the current level band.
type XpProgressInfo struct {
	CurrentLevel int    `json:"current_level"`
	NextLevel    int    `json:"next_level,omitempty"`
	Percent      int    `json:"percent"`
	XPToNext     uint64 `json:"xp_to_next"`
}

type ProgressOverview struct {
	XP          uint64              `json:"xp"`
	Level       int                 `json:"level"`
	LevelName   string              `json:"level_name"`
	Permissions []entity.Permission `json:"permissions"`
	Progress    XpProgressInfo      `json:"progress"`
}

type ProgressionServiceI interface {
	// Adds xp and derives level change events. Rejects zero amounts with
	// ErrInvalidAmount before touching any state.
	AddXp(ctx context.Context, uid uuid.UUID, amount uint64) (*entity.LevelChangeResult, error)
	GetProgress(ctx context.Context, uid uuid.UUID) (*ProgressOverview, error)
}

type AttendanceServiceI interface {
	// Records today's check-in, updates streaks, grants xp and runs badge
	// evaluation. Success=false when today is already attended.
	CheckIn(ctx context.Context, uid uuid.UUID) (*entity.CheckInResult, error)
	// Pure predicate, no mutation
	CanCheckInToday(ctx context.Context, uid uuid.UUID) (bool, error)
	// Day numbers attended in the given month, for calendar rendering
	GetMonthAttendance(ctx context.Context, uid uuid.UUID, year int, month time.Month) ([]int, error)
	GetState(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error)
	// Repair utility rebuilding streak counters from the attended-day history.
	// Never called from the check-in path.
	ReconcileStreaks(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error)
}

type BadgeView struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Rarity   catalog.BadgeRarity `json:"rarity"`
	XPReward uint64              `json:"xp_reward"`
	EarnedAt *time.Time          `json:"earned_at,omitempty"`
}

type BadgesOverview struct {
	Earned []BadgeView `json:"earned"`
	Locked []BadgeView `json:"locked"`
}

type BadgeServiceI interface {
	// Evaluates the catalog in declaration order against the snapshot and
	// awards every not-yet-earned badge whose condition is met. Returns the
	// newly earned ids plus the resulting events (badge awards and any level
	// events from reward xp).
	CheckAndAward(ctx context.Context, uid uuid.UUID, snap entity.StatsSnapshot) ([]string, []entity.DomainEvent, error)
	GetBadges(ctx context.Context, uid uuid.UUID) (*BadgesOverview, error)
}

type DexMutationResult struct {
	Entry     *entity.DexEntry     `json:"entry,omitempty"`
	NewBadges []string             `json:"new_badges,omitempty"`
	Events    []entity.DomainEvent `json:"events,omitempty"`
}

type DexProgress struct {
	Percent   int               `json:"percent"`
	Collected int               `json:"collected"`
	Tried     int               `json:"tried"`
	Made      int               `json:"made"`
	Want      int               `json:"want"`
	Total     int               `json:"total"`
	Entries   []entity.DexEntry `json:"entries"`
}

type DexServiceI interface {
	// Upserts the item's status; DexNone deletes the entry with its rating,
	// memo and collectedAt.
	SetStatus(ctx context.Context, uid uuid.UUID, itemID string, status entity.DexStatus) (*DexMutationResult, error)
	// Sets or clears the rating on an existing entry; out-of-range values are
	// clamped into [1,5]. ErrEntryNotFound when no entry exists.
	SetRating(ctx context.Context, uid uuid.UUID, itemID string, rating *int) (*entity.DexEntry, error)
	// Replaces the memo on an existing entry. ErrEntryNotFound when absent.
	SetMemo(ctx context.Context, uid uuid.UUID, itemID, memo string) (*entity.DexEntry, error)
	// Nil without error when the item has no entry
	GetEntry(ctx context.Context, uid uuid.UUID, itemID string) (*entity.DexEntry, error)
	GetProgress(ctx context.Context, uid uuid.UUID) (*DexProgress, error)
}

type ActivityResult struct {
	XPEarned  uint64               `json:"xp_earned"`
	NewBadges []string             `json:"new_badges,omitempty"`
	Events    []entity.DomainEvent `json:"events,omitempty"`
}

// ActivityServiceI receives the inbound collaborator events: posts and
// comments created on the boards, plus generic xp grants.
type ActivityServiceI interface {
	PostCreated(ctx context.Context, uid uuid.UUID, postType entity.PostType) (*ActivityResult, error)
	CommentCreated(ctx context.Context, uid uuid.UUID) (*ActivityResult, error)
	GrantXp(ctx context.Context, uid uuid.UUID, amount uint64, reason string) (*ActivityResult, error)
}

type StatsServiceI interface {
	// Assembles a fresh snapshot; callers invoke it only after their own
	// mutation is persisted so badge evaluation never runs one step behind.
	Snapshot(ctx context.Context, uid uuid.UUID) (entity.StatsSnapshot, error)
}
