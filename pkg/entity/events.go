package entity

type EventType string

const (
	EventLevelUp          EventType = "level_up"
	EventUnlockPermission EventType = "unlock_permission"
	EventBadgeEarned      EventType = "badge_earned"
	EventStreakBonus      EventType = "streak_bonus"
)

type Permission string

// Catalog order of capability flags. Permission unlock events are emitted in
// this order.
var PermissionOrder = []Permission{
	PermCanPost,
	PermCanComment,
	PermCanSuggestWikiEdit,
	PermCanEditWiki,
	PermCanModerate,
}

const (
	PermCanPost            Permission = "can_post"
	PermCanComment         Permission = "can_comment"
	PermCanSuggestWikiEdit Permission = "can_suggest_wiki_edit"
	PermCanEditWiki        Permission = "can_edit_wiki"
	PermCanModerate        Permission = "can_moderate"
)

// DomainEvent is returned from mutating operations in the order produced.
// DelayMs is a suggested UI stagger; the engine never sleeps on it.
type DomainEvent struct {
	Type       EventType  `json:"type"`
	OldLevel   int        `json:"old_level,omitempty"`
	NewLevel   int        `json:"new_level,omitempty"`
	Permission Permission `json:"permission,omitempty"`
	BadgeID    string     `json:"badge_id,omitempty"`
	Label      string     `json:"label,omitempty"`
	XP         uint64     `json:"xp,omitempty"`
	DelayMs    int        `json:"delay_ms"`
}

// NotifyStaggerMs spaces consecutive notifications in the UI.
const NotifyStaggerMs = 700

// StaggerEvents assigns suggested display delays by position and returns the
// same slice.
func StaggerEvents(events []DomainEvent) []DomainEvent {
	for i := range events {
		events[i].DelayMs = i * NotifyStaggerMs
	}
	return events
}

type LevelChangeResult struct {
	OldLevel             int           `json:"old_level"`
	NewLevel             int           `json:"new_level"`
	NewXP                uint64        `json:"new_xp"`
	UnlockedPermissions  []Permission  `json:"unlocked_permissions,omitempty"`
	Events               []DomainEvent `json:"events,omitempty"`
}

type CheckInResult struct {
	Success    bool          `json:"success"`
	XPEarned   uint64        `json:"xp_earned"`
	BonusLabel string        `json:"bonus_label,omitempty"`
	NewStreak  int           `json:"new_streak"`
	Events     []DomainEvent `json:"events,omitempty"`
}
