package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type UserProgression struct {
	UserID uuid.UUID `json:"uid"`
	XP     uint64    `json:"xp"`
}

type AttendanceState struct {
	UserID        uuid.UUID `json:"uid"`
	AttendedDates []Day     `json:"attended_dates"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastCheckIn   *Day      `json:"last_check_in,omitempty"`
}

// HasDay reports whether the given calendar day was attended.
func (st *AttendanceState) HasDay(d Day) bool {
	for _, att := range st.AttendedDates {
		if att == d {
			return true
		}
	}
	return false
}

type EarnedBadge struct {
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}

type DexStatus string

const (
	DexTried DexStatus = "tried"
	DexMade  DexStatus = "made"
	DexWant  DexStatus = "want"
	DexNone  DexStatus = "none"
)

// Collected statuses are the ones counting towards dex completion.
func (s DexStatus) Collected() bool {
	return s == DexTried || s == DexMade
}

type DexEntry struct {
	ItemID      string     `json:"item_id"`
	Status      DexStatus  `json:"status"`
	Rating      *int       `json:"rating,omitempty"`
	Memo        string     `json:"memo,omitempty"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PostType string

const (
	PostGeneral   PostType = "general"
	PostRecipe    PostType = "recipe"
	PostQnaAnswer PostType = "qna_answer"
)

type PostStats struct {
	UserID      uuid.UUID `json:"uid"`
	TotalPosts  int       `json:"total_posts"`
	RecipePosts int       `json:"recipe_posts"`
	QnaAnswers  int       `json:"qna_answers"`
	Comments    int       `json:"comments"`
}

// StatsSnapshot is assembled fresh right before every badge evaluation and
// is never persisted.
type StatsSnapshot struct {
	TotalPosts    int
	RecipePosts   int
	QnaAnswers    int
	CurrentStreak int
	LongestStreak int
	DexCollected  int
	Level         int
}
