package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/baechu-app/gamify/internal/catalog"
	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// BadgeService owns the earned-badge set. Awards are append-only and
// evaluated as one-shot "has this ever been reached" checks, so a snapshot
// that keeps a condition satisfied never re-awards.
type BadgeService struct {
	repo   repository.BadgesRepositoryI
	ledger ProgressionServiceI
}

func NewBadgeService(badgesRepo repository.BadgesRepositoryI, ledger ProgressionServiceI) *BadgeService {
	if badgesRepo == nil || ledger == nil {
		log.Fatal("on badge service provided nil dependencies")
	}
	return &BadgeService{
		repo:   badgesRepo,
		ledger: ledger,
	}
}

func (bs *BadgeService) CheckAndAward(ctx context.Context, uid uuid.UUID, snap entity.StatsSnapshot) ([]string, []entity.DomainEvent, error) {
	earned, err := bs.repo.GetEarned(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("badges repository error: " + err.Error())
	}
	earnedSet := make(map[string]bool, len(earned))
	for _, e := range earned {
		earnedSet[e.BadgeID] = true
	}
	var (
		newIDs []string
		events []entity.DomainEvent
		reward uint64
	)
	for _, b := range catalog.Badges() {
		if earnedSet[b.ID] || !b.Condition.Met(snap) {
			continue
		}
		earned = append(earned, entity.EarnedBadge{BadgeID: b.ID, EarnedAt: time.Now()})
		newIDs = append(newIDs, b.ID)
		reward += b.XPReward
		events = append(events, entity.DomainEvent{
			Type:    entity.EventBadgeEarned,
			BadgeID: b.ID,
			Label:   b.Name,
			XP:      b.XPReward,
		})
	}
	if len(newIDs) == 0 {
		return nil, nil, nil
	}
	if err := bs.repo.SaveEarned(ctx, uid, earned); err != nil {
		return nil, nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	// Reward xp can level the user up but never cascades into more badges:
	// no condition keys off xp or level.
	if reward > 0 {
		change, err := bs.ledger.AddXp(ctx, uid, reward)
		if err != nil {
			return nil, nil, errors.New("granting badge reward error: " + err.Error())
		}
		events = append(events, change.Events...)
	}
	return newIDs, events, nil
}

func (bs *BadgeService) GetBadges(ctx context.Context, uid uuid.UUID) (*BadgesOverview, error) {
	earned, err := bs.repo.GetEarned(ctx, uid)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earnedAt := make(map[string]time.Time, len(earned))
	for _, e := range earned {
		earnedAt[e.BadgeID] = e.EarnedAt
	}
	overview := BadgesOverview{
		Earned: make([]BadgeView, 0, len(earned)),
		Locked: make([]BadgeView, 0),
	}
	for _, b := range catalog.Badges() {
		view := BadgeView{
			ID:       b.ID,
			Name:     b.Name,
			Rarity:   b.Rarity,
			XPReward: b.XPReward,
		}
		if at, ok := earnedAt[b.ID]; ok {
			view.EarnedAt = &at
			overview.Earned = append(overview.Earned, view)
		} else {
			overview.Locked = append(overview.Locked, view)
		}
	}
	return &overview, nil
}
