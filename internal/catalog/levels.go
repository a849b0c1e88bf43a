// Package catalog holds the read-only configuration tables the engines run
// against: level tiers, badge definitions and the collectible kimchi list.
// The tables are fixed at compile time and never mutated.
package catalog

import (
	"math"

	"github.com/baechu-app/gamify/pkg/entity"
)

type LevelDefinition struct {
	Level       int                 `json:"level"`
	Name        string              `json:"name"`
	MinXP       uint64              `json:"min_xp"`
	MaxXP       uint64              `json:"max_xp"`
	Permissions []entity.Permission `json:"permissions"`
}

func (l LevelDefinition) HasPermission(p entity.Permission) bool {
	for _, perm := range l.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// Seven tiers with contiguous XP bands covering [0, ∞). MinXP is strictly
// increasing; the top band is unbounded.
var levels = []LevelDefinition{
	{
		Level: 1, Name: "Saessak", MinXP: 0, MaxXP: 99,
		Permissions: []entity.Permission{entity.PermCanComment},
	},
	{
		Level: 2, Name: "Jeolim", MinXP: 100, MaxXP: 299,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment},
	},
	{
		Level: 3, Name: "Yangnyeom", MinXP: 300, MaxXP: 599,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment, entity.PermCanSuggestWikiEdit},
	},
	{
		Level: 4, Name: "Suksong", MinXP: 600, MaxXP: 999,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment, entity.PermCanSuggestWikiEdit},
	},
	{
		Level: 5, Name: "Gimjangkkun", MinXP: 1000, MaxXP: 1999,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment, entity.PermCanSuggestWikiEdit, entity.PermCanEditWiki},
	},
	{
		Level: 6, Name: "Myeongin", MinXP: 2000, MaxXP: 4999,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment, entity.PermCanSuggestWikiEdit, entity.PermCanEditWiki},
	},
	{
		Level: 7, Name: "Kimchi Master", MinXP: 5000, MaxXP: math.MaxUint64,
		Permissions: []entity.Permission{entity.PermCanPost, entity.PermCanComment, entity.PermCanSuggestWikiEdit, entity.PermCanEditWiki, entity.PermCanModerate},
	},
}

func Levels() []LevelDefinition {
	return levels
}

// LevelByXP selects the highest tier whose MinXP <= xp. Contiguous bands
// guarantee exactly one match.
func LevelByXP(xp uint64) LevelDefinition {
	result := levels[0]
	for _, l := range levels[1:] {
		if l.MinXP <= xp {
			result = l
		}
	}
	return result
}

func LevelByNumber(level int) (LevelDefinition, bool) {
	for _, l := range levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelDefinition{}, false
}

// NextLevel returns the tier after the given one; false on the top tier.
func NextLevel(level int) (LevelDefinition, bool) {
	return LevelByNumber(level + 1)
}

// TopLevel is the unbounded last tier.
func TopLevel() LevelDefinition {
	return levels[len(levels)-1]
}
