package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// XP rewards for board activity forwarded by the collaborators.
const (
	generalPostXP = 10
	recipePostXP  = 15
	qnaAnswerXP   = 8
	commentXP     = 2
)

// ActivityService is the entry point for inbound collaborator events: posts,
// comments and generic xp grants. Each operation bumps the relevant counters,
// feeds the ledger and then runs badge evaluation on a fresh snapshot.
type ActivityService struct {
	postStats repository.PostStatsRepositoryI
	ledger    ProgressionServiceI
	badges    BadgeServiceI
	stats     StatsServiceI
	locks     *UserLocks
}

func NewActivityService(
	postStatsRepo repository.PostStatsRepositoryI,
	ledger ProgressionServiceI,
	badges BadgeServiceI,
	stats StatsServiceI,
	locks *UserLocks,
) *ActivityService {
	if postStatsRepo == nil || ledger == nil || badges == nil || stats == nil || locks == nil {
		log.Fatal("on activity service provided nil dependencies")
	}
	return &ActivityService{
		postStats: postStatsRepo,
		ledger:    ledger,
		badges:    badges,
		stats:     stats,
		locks:     locks,
	}
}

func (acts *ActivityService) PostCreated(ctx context.Context, uid uuid.UUID, postType entity.PostType) (*ActivityResult, error) {
	var xp uint64
	switch postType {
	case entity.PostGeneral:
		xp = generalPostXP
	case entity.PostRecipe:
		xp = recipePostXP
	case entity.PostQnaAnswer:
		xp = qnaAnswerXP
	default:
		return nil, errorvalues.ErrUnknownPostType
	}
	unlock := acts.locks.Lock(uid)
	defer unlock()
	if err := acts.postStats.IncrementPost(ctx, uid, postType); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	return acts.grantAndEvaluate(ctx, uid, xp)
}

func (acts *ActivityService) CommentCreated(ctx context.Context, uid uuid.UUID) (*ActivityResult, error) {
	unlock := acts.locks.Lock(uid)
	defer unlock()
	if err := acts.postStats.IncrementComments(ctx, uid); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	return acts.grantAndEvaluate(ctx, uid, commentXP)
}

func (acts *ActivityService) GrantXp(ctx context.Context, uid uuid.UUID, amount uint64, reason string) (*ActivityResult, error) {
	if amount == 0 {
		return nil, errorvalues.ErrInvalidAmount
	}
	unlock := acts.locks.Lock(uid)
	defer unlock()
	return acts.grantAndEvaluate(ctx, uid, amount)
}

// grantAndEvaluate runs under the caller-held user lock.
func (acts *ActivityService) grantAndEvaluate(ctx context.Context, uid uuid.UUID, xp uint64) (*ActivityResult, error) {
	change, err := acts.ledger.AddXp(ctx, uid, xp)
	if err != nil {
		return nil, errors.New("granting activity xp error: " + err.Error())
	}
	events := append([]entity.DomainEvent{}, change.Events...)
	snap, err := acts.stats.Snapshot(ctx, uid)
	if err != nil {
		return nil, errors.New("assembling stats snapshot error: " + err.Error())
	}
	newBadges, badgeEvents, err := acts.badges.CheckAndAward(ctx, uid, snap)
	if err != nil {
		return nil, errors.New("badge evaluation error: " + err.Error())
	}
	events = append(events, badgeEvents...)
	return &ActivityResult{
		XPEarned:  xp,
		NewBadges: newBadges,
		Events:    entity.StaggerEvents(events),
	}, nil
}
