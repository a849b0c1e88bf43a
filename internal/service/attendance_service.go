package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// Base reward for a daily check-in.
const attendanceXP = 5

// Streak bonuses are granted only on the day the streak exactly hits one of
// these values, not on every day at-or-beyond it. A streak that breaks and
// climbs back re-earns the bonus on the way up.
var streakBonuses = map[int]uint64{
	7:  10,
	14: 20,
	30: 50,
}

var streakBonusLabels = map[int]string{
	7:  "7-day streak",
	14: "14-day streak",
	30: "30-day streak",
}

type AttendanceService struct {
	repo   repository.AttendanceRepositoryI
	ledger ProgressionServiceI
	badges BadgeServiceI
	stats  StatsServiceI
	locks  *UserLocks
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepositoryI,
	ledger ProgressionServiceI,
	badges BadgeServiceI,
	stats StatsServiceI,
	locks *UserLocks,
) *AttendanceService {
	if attendanceRepo == nil || ledger == nil || badges == nil || stats == nil || locks == nil {
		log.Fatal("on attendance service provided nil dependencies")
	}
	return &AttendanceService{
		repo:   attendanceRepo,
		ledger: ledger,
		badges: badges,
		stats:  stats,
		locks:  locks,
	}
}

func (as *AttendanceService) CheckIn(ctx context.Context, uid uuid.UUID) (*entity.CheckInResult, error) {
	unlock := as.locks.Lock(uid)
	defer unlock()
	state, err := as.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("attendance repository error: " + err.Error())
	}
	today := entity.Today()
	if state.HasDay(today) {
		// Informational, not an error: the caller renders it as "already
		// checked in".
		return &entity.CheckInResult{Success: false, NewStreak: state.CurrentStreak}, nil
	}
	newStreak := 1
	if state.HasDay(today.AddDays(-1)) {
		newStreak = state.CurrentStreak + 1
	}
	state.AttendedDates = append(state.AttendedDates, today)
	state.CurrentStreak = newStreak
	if newStreak > state.LongestStreak {
		state.LongestStreak = newStreak
	}
	state.LastCheckIn = &today
	if err := as.repo.Save(ctx, state); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	var events []entity.DomainEvent
	bonus := streakBonuses[newStreak]
	bonusLabel := streakBonusLabels[newStreak]
	if bonus > 0 {
		events = append(events, entity.DomainEvent{
			Type:  entity.EventStreakBonus,
			Label: bonusLabel,
			XP:    bonus,
		})
	}
	xpEarned := attendanceXP + bonus
	change, err := as.ledger.AddXp(ctx, uid, xpEarned)
	if err != nil {
		return nil, errors.New("granting attendance xp error: " + err.Error())
	}
	events = append(events, change.Events...)
	snap, err := as.stats.Snapshot(ctx, uid)
	if err != nil {
		return nil, errors.New("assembling stats snapshot error: " + err.Error())
	}
	_, badgeEvents, err := as.badges.CheckAndAward(ctx, uid, snap)
	if err != nil {
		return nil, errors.New("badge evaluation error: " + err.Error())
	}
	events = append(events, badgeEvents...)
	return &entity.CheckInResult{
		Success:    true,
		XPEarned:   xpEarned,
		BonusLabel: bonusLabel,
		NewStreak:  newStreak,
		Events:     entity.StaggerEvents(events),
	}, nil
}

func (as *AttendanceService) CanCheckInToday(ctx context.Context, uid uuid.UUID) (bool, error) {
	state, err := as.repo.Get(ctx, uid)
	if err != nil {
		return false, errors.New("attendance repository error: " + err.Error())
	}
	return !state.HasDay(entity.Today()), nil
}

func (as *AttendanceService) GetMonthAttendance(ctx context.Context, uid uuid.UUID, year int, month time.Month) ([]int, error) {
	if month < time.January || month > time.December {
		return nil, errorvalues.ErrBadMonth
	}
	state, err := as.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("attendance repository error: " + err.Error())
	}
	days := make([]int, 0)
	for _, d := range state.AttendedDates {
		if d.Year == year && d.Month == month {
			days = append(days, d.Day)
		}
	}
	sort.Ints(days)
	return days, nil
}

func (as *AttendanceService) GetState(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error) {
	state, err := as.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("attendance repository error: " + err.Error())
	}
	return state, nil
}

// ReconcileStreaks rebuilds both streak counters from the full attended-day
// history. It exists as a repair utility for drifted records; check-in keeps
// streaks incrementally and stays authoritative.
func (as *AttendanceService) ReconcileStreaks(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error) {
	unlock := as.locks.Lock(uid)
	defer unlock()
	state, err := as.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("attendance repository error: " + err.Error())
	}
	days := make([]entity.Day, len(state.AttendedDates))
	copy(days, state.AttendedDates)
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	current, longest := 0, 0
	run := 0
	for i, d := range days {
		if i > 0 && days[i-1] == d {
			// skip duplicated days
			continue
		}
		if i > 0 && days[i-1].AddDays(1) == d {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if len(days) > 0 {
		current = run
		last := days[len(days)-1]
		state.LastCheckIn = &last
	} else {
		state.LastCheckIn = nil
	}
	state.AttendedDates = days
	state.CurrentStreak = current
	state.LongestStreak = longest
	if err := as.repo.Save(ctx, state); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	return state, nil
}
