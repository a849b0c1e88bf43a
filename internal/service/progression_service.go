package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/baechu-app/gamify/internal/catalog"
	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// ProgressionService is the xp ledger: cumulative xp only ever grows and the
// level is always derived from it through the level catalog, never stored.
type ProgressionService struct {
	repo repository.ProgressionRepositoryI
}

func NewProgressionService(progressionRepo repository.ProgressionRepositoryI) *ProgressionService {
	if progressionRepo == nil {
		log.Fatal("on progression service provided nil repo")
	}
	return &ProgressionService{
		repo: progressionRepo,
	}
}

func (ps *ProgressionService) AddXp(ctx context.Context, uid uuid.UUID, amount uint64) (*entity.LevelChangeResult, error) {
	if amount == 0 {
		return nil, errorvalues.ErrInvalidAmount
	}
	prog, err := ps.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("progression repository error: " + err.Error())
	}
	oldLevel := catalog.LevelByXP(prog.XP)
	prog.XP += amount
	if err := ps.repo.Save(ctx, prog); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	newLevel := catalog.LevelByXP(prog.XP)
	result := &entity.LevelChangeResult{
		OldLevel: oldLevel.Level,
		NewLevel: newLevel.Level,
		NewXP:    prog.XP,
	}
	if newLevel.Level > oldLevel.Level {
		result.Events = append(result.Events, entity.DomainEvent{
			Type:     entity.EventLevelUp,
			OldLevel: oldLevel.Level,
			NewLevel: newLevel.Level,
		})
		for _, p := range entity.PermissionOrder {
			if !oldLevel.HasPermission(p) && newLevel.HasPermission(p) {
				result.UnlockedPermissions = append(result.UnlockedPermissions, p)
				result.Events = append(result.Events, entity.DomainEvent{
					Type:       entity.EventUnlockPermission,
					NewLevel:   newLevel.Level,
					Permission: p,
				})
			}
		}
		entity.StaggerEvents(result.Events)
	}
	return result, nil
}

// XpProgress reports position inside the current band. On the top level
// percent is 100 and there is nothing left to earn.
func XpProgress(xp uint64) XpProgressInfo {
	current := catalog.LevelByXP(xp)
	next, ok := catalog.NextLevel(current.Level)
	if !ok {
		return XpProgressInfo{
			CurrentLevel: current.Level,
			Percent:      100,
			XPToNext:     0,
		}
	}
	return XpProgressInfo{
		CurrentLevel: current.Level,
		NextLevel:    next.Level,
		Percent:      int((xp - current.MinXP) * 100 / (next.MinXP - current.MinXP)),
		XPToNext:     next.MinXP - xp,
	}
}

func (ps *ProgressionService) GetProgress(ctx context.Context, uid uuid.UUID) (*ProgressOverview, error) {
	prog, err := ps.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("progression repository error: " + err.Error())
	}
	level := catalog.LevelByXP(prog.XP)
	return &ProgressOverview{
		XP:          prog.XP,
		Level:       level.Level,
		LevelName:   level.Name,
		Permissions: level.Permissions,
		Progress:    XpProgress(prog.XP),
	}, nil
}
