package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechu-app/gamify/pkg/cleanup"
	"github.com/baechu-app/gamify/pkg/entity"
)

type AttendanceRepository struct {
	conn PgConnection
}

func NewAttendanceRepo(cfg DBConfig) *AttendanceRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for attendanceRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attendanceRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AttendanceRepository{
		conn: pool,
	}
}

func NewAttendanceRepoWithConn(conn PgConnection) *AttendanceRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attendanceRepo: " + err.Error())
	}
	return &AttendanceRepository{
		conn: conn,
	}
}

func (ar *AttendanceRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.AttendanceState, error) {
	state := entity.AttendanceState{UserID: uid, AttendedDates: []entity.Day{}}
	var (
		dates       []time.Time
		lastCheckIn *time.Time
	)
	row := ar.conn.QueryRow(
		ctx,
		`SELECT attended_dates, current_streak, longest_streak, last_check_in FROM attendance WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&dates, &state.CurrentStreak, &state.LongestStreak, &lastCheckIn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Created lazily on first check-in
			return &state, nil
		}
		return nil, errors.New("getting attendance error: " + err.Error())
	}
	state.AttendedDates = timesToDays(dates)
	if lastCheckIn != nil {
		last := entity.DayOf(*lastCheckIn)
		state.LastCheckIn = &last
	}
	return &state, nil
}

func (ar *AttendanceRepository) Save(ctx context.Context, state *entity.AttendanceState) error {
	if state == nil {
		return errors.New("attendance state is nil")
	}
	var lastCheckIn *time.Time
	if state.LastCheckIn != nil {
		t := state.LastCheckIn.Time()
		lastCheckIn = &t
	}
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO attendance (user_id, attended_dates, current_streak, longest_streak, last_check_in)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			attended_dates = EXCLUDED.attended_dates,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_check_in = EXCLUDED.last_check_in;`,
		state.UserID,
		daysToTimes(state.AttendedDates),
		state.CurrentStreak,
		state.LongestStreak,
		lastCheckIn,
	)
	if err != nil {
		return errors.New("saving attendance error: " + err.Error())
	}
	return nil
}

func timesToDays(times []time.Time) []entity.Day {
	days := make([]entity.Day, 0, len(times))
	for _, t := range times {
		days = append(days, entity.DayOf(t))
	}
	return days
}

func daysToTimes(days []entity.Day) []time.Time {
	times := make([]time.Time, 0, len(days))
	for _, d := range days {
		times = append(times, d.Time())
	}
	return times
}
