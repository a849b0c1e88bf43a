package catalog

import "github.com/baechu-app/gamify/pkg/entity"

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

type ConditionKind int

const (
	CondPostCount ConditionKind = iota
	CondRecipePostCount
	CondQnaAnswerCount
	CondAttendanceStreak
	CondDexCount
)

// BadgeCondition is a closed tagged variant: a kind plus a numeric threshold.
type BadgeCondition struct {
	Kind      ConditionKind
	Threshold int
}

// Met evaluates the condition against a stats snapshot. Streak conditions
// check the longest streak ever reached, so a later broken streak can't
// retract an award.
func (c BadgeCondition) Met(s entity.StatsSnapshot) bool {
	switch c.Kind {
	case CondPostCount:
		return s.TotalPosts >= c.Threshold
	case CondRecipePostCount:
		return s.RecipePosts >= c.Threshold
	case CondQnaAnswerCount:
		return s.QnaAnswers >= c.Threshold
	case CondAttendanceStreak:
		return s.LongestStreak >= c.Threshold
	case CondDexCount:
		return s.DexCollected >= c.Threshold
	}
	return false
}

type BadgeDefinition struct {
	ID        string
	Name      string
	Rarity    BadgeRarity
	XPReward  uint64
	Condition BadgeCondition
}

// Badge evaluation and award notifications follow declaration order.
var badges = []BadgeDefinition{
	{ID: "first-post", Name: "First Post", Rarity: RarityCommon, XPReward: 20,
		Condition: BadgeCondition{Kind: CondPostCount, Threshold: 1}},
	{ID: "storyteller", Name: "Storyteller", Rarity: RarityRare, XPReward: 50,
		Condition: BadgeCondition{Kind: CondPostCount, Threshold: 10}},
	{ID: "board-fixture", Name: "Board Fixture", Rarity: RarityEpic, XPReward: 150,
		Condition: BadgeCondition{Kind: CondPostCount, Threshold: 50}},
	{ID: "recipe-keeper", Name: "Recipe Keeper", Rarity: RarityRare, XPReward: 60,
		Condition: BadgeCondition{Kind: CondRecipePostCount, Threshold: 5}},
	{ID: "helping-hand", Name: "Helping Hand", Rarity: RarityRare, XPReward: 80,
		Condition: BadgeCondition{Kind: CondQnaAnswerCount, Threshold: 10}},
	{ID: "one-week-flame", Name: "One Week Flame", Rarity: RarityCommon, XPReward: 30,
		Condition: BadgeCondition{Kind: CondAttendanceStreak, Threshold: 7}},
	{ID: "thirty-day-jangin", Name: "Thirty Day Jangin", Rarity: RarityEpic, XPReward: 200,
		Condition: BadgeCondition{Kind: CondAttendanceStreak, Threshold: 30}},
	{ID: "dex-ten", Name: "Ten Jars Deep", Rarity: RarityRare, XPReward: 70,
		Condition: BadgeCondition{Kind: CondDexCount, Threshold: 10}},
	{ID: "dex-complete", Name: "Full Kimchidex", Rarity: RarityLegendary, XPReward: 500,
		Condition: BadgeCondition{Kind: CondDexCount, Threshold: 50}},
}

func Badges() []BadgeDefinition {
	return badges
}

func BadgeByID(id string) (BadgeDefinition, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeDefinition{}, false
}
