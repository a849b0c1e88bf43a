package api

import (
	"fmt"

	"github.com/baechu-app/gamify/internal/catalog"
	"github.com/baechu-app/gamify/pkg/entity"
)

// Notification is the display form of a domain event. DelayMs tells the
// client when to pop it relative to the response arriving.
type Notification struct {
	Type    entity.EventType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Icon    string           `json:"icon"`
	DelayMs int              `json:"delay_ms"`
}

// BuildNotifications renders events in the order the engines produced them.
func BuildNotifications(events []entity.DomainEvent) []Notification {
	if len(events) == 0 {
		return nil
	}
	notifications := make([]Notification, 0, len(events))
	for _, e := range events {
		n := Notification{
			Type:    e.Type,
			DelayMs: e.DelayMs,
		}
		switch e.Type {
		case entity.EventLevelUp:
			n.Title = "Level up!"
			n.Icon = "level-up"
			if level, ok := catalog.LevelByNumber(e.NewLevel); ok {
				n.Message = fmt.Sprintf("You reached Lv.%d %s", level.Level, level.Name)
			} else {
				n.Message = fmt.Sprintf("You reached Lv.%d", e.NewLevel)
			}
		case entity.EventUnlockPermission:
			n.Title = "New ability unlocked"
			n.Icon = "unlock"
			n.Message = permissionMessage(e.Permission)
		case entity.EventBadgeEarned:
			n.Title = "Badge earned"
			n.Icon = "badge"
			n.Message = fmt.Sprintf("%s (+%d XP)", e.Label, e.XP)
		case entity.EventStreakBonus:
			n.Title = "Streak bonus"
			n.Icon = "flame"
			n.Message = fmt.Sprintf("%s bonus: +%d XP", e.Label, e.XP)
		default:
			n.Title = "Update"
			n.Message = e.Label
		}
		notifications = append(notifications, n)
	}
	return notifications
}

func permissionMessage(p entity.Permission) string {
	switch p {
	case entity.PermCanPost:
		return "You can now write posts"
	case entity.PermCanComment:
		return "You can now leave comments"
	case entity.PermCanSuggestWikiEdit:
		return "You can now suggest wiki edits"
	case entity.PermCanEditWiki:
		return "You can now edit the wiki"
	case entity.PermCanModerate:
		return "You can now moderate the boards"
	}
	return "New ability: " + string(p)
}
