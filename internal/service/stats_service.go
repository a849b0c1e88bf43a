package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/baechu-app/gamify/internal/catalog"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// StatsService assembles the ephemeral snapshot badge evaluation runs
// against. Nothing here is cached: every call reads the current records so a
// snapshot taken after a mutation always reflects it.
type StatsService struct {
	progressionRepo repository.ProgressionRepositoryI
	attendanceRepo  repository.AttendanceRepositoryI
	dexRepo         repository.DexRepositoryI
	postStatsRepo   repository.PostStatsRepositoryI
}

func NewStatsService(
	progressionRepo repository.ProgressionRepositoryI,
	attendanceRepo repository.AttendanceRepositoryI,
	dexRepo repository.DexRepositoryI,
	postStatsRepo repository.PostStatsRepositoryI,
) *StatsService {
	if progressionRepo == nil || attendanceRepo == nil || dexRepo == nil || postStatsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		progressionRepo: progressionRepo,
		attendanceRepo:  attendanceRepo,
		dexRepo:         dexRepo,
		postStatsRepo:   postStatsRepo,
	}
}

func (ss *StatsService) Snapshot(ctx context.Context, uid uuid.UUID) (entity.StatsSnapshot, error) {
	var snap entity.StatsSnapshot
	stats, err := ss.postStatsRepo.Get(ctx, uid)
	if err != nil {
		return snap, errors.New("post stats repository error: " + err.Error())
	}
	attendance, err := ss.attendanceRepo.Get(ctx, uid)
	if err != nil {
		return snap, errors.New("attendance repository error: " + err.Error())
	}
	entries, err := ss.dexRepo.Get(ctx, uid)
	if err != nil {
		return snap, errors.New("dex repository error: " + err.Error())
	}
	prog, err := ss.progressionRepo.Get(ctx, uid)
	if err != nil {
		return snap, errors.New("progression repository error: " + err.Error())
	}
	collected := 0
	for _, e := range entries {
		if e.Status.Collected() {
			collected++
		}
	}
	snap = entity.StatsSnapshot{
		TotalPosts:    stats.TotalPosts,
		RecipePosts:   stats.RecipePosts,
		QnaAnswers:    stats.QnaAnswers,
		CurrentStreak: attendance.CurrentStreak,
		LongestStreak: attendance.LongestStreak,
		DexCollected:  collected,
		Level:         catalog.LevelByXP(prog.XP).Level,
	}
	return snap, nil
}
