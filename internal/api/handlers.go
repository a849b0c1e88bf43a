package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/service"
	"github.com/baechu-app/gamify/pkg/entity"
	"github.com/baechu-app/gamify/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type PostCreatedRequest struct {
	PostType string `json:"post_type"`
}

type GrantXpRequest struct {
	Amount uint64 `json:"amount"`
	Reason string `json:"reason"`
}

type SetDexStatusRequest struct {
	Status string `json:"status"`
}

type SetDexRatingRequest struct {
	Rating *int `json:"rating"`
}

type SetDexMemoRequest struct {
	Memo string `json:"memo"`
}

type CheckInResponse struct {
	Success       bool                 `json:"success"`
	XPEarned      uint64               `json:"xp_earned"`
	BonusLabel    string               `json:"bonus_label,omitempty"`
	NewStreak     int                  `json:"new_streak"`
	Events        []entity.DomainEvent `json:"events,omitempty"`
	Notifications []Notification       `json:"notifications,omitempty"`
}

type MonthAttendanceResponse struct {
	Year          int   `json:"year"`
	Month         int   `json:"month"`
	Days          []int `json:"days"`
	CurrentStreak int   `json:"current_streak"`
	LongestStreak int   `json:"longest_streak"`
}

type ActivityResponse struct {
	XPEarned      uint64               `json:"xp_earned"`
	NewBadges     []string             `json:"new_badges,omitempty"`
	Events        []entity.DomainEvent `json:"events,omitempty"`
	Notifications []Notification       `json:"notifications,omitempty"`
}

type DexMutationResponse struct {
	Entry         *entity.DexEntry     `json:"entry"`
	NewBadges     []string             `json:"new_badges,omitempty"`
	Events        []entity.DomainEvent `json:"events,omitempty"`
	Notifications []Notification       `json:"notifications,omitempty"`
}

type StreaksResponse struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	TotalDays     int `json:"total_days"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.attendanceService.CheckIn(ctx, uid)
	if err != nil {
		logger.Error("check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during check-in", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CheckInResponse{
		Success:       result.Success,
		XPEarned:      result.XPEarned,
		BonusLabel:    result.BonusLabel,
		NewStreak:     result.NewStreak,
		Events:        result.Events,
		Notifications: BuildNotifications(result.Events),
	})
	logger.Info("check-in handled", slog.Bool("success", result.Success))
}

func (s *Server) GetMonthAttendance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get attendance error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now := time.Now()
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		year = now.Year()
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		month = int(now.Month())
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.attendanceService.GetMonthAttendance(ctx, uid, year, time.Month(month))
	if err != nil {
		if errors.Is(err, errorvalues.ErrBadMonth) {
			logger.Error("get attendance error: month out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "month must be between 1 and 12", nil)
			return
		}
		logger.Error("get attendance error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting attendance", nil)
		return
	}
	state, err := s.attendanceService.GetState(ctx, uid)
	if err != nil {
		logger.Error("get attendance error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting attendance", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MonthAttendanceResponse{
		Year:          year,
		Month:         month,
		Days:          days,
		CurrentStreak: state.CurrentStreak,
		LongestStreak: state.LongestStreak,
	})
	logger.Info("attendance provided")
}

func (s *Server) CanCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("can-check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	can, err := s.attendanceService.CanCheckInToday(ctx, uid)
	if err != nil {
		logger.Error("can-check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while checking attendance", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"can_check_in": can,
	})
}

func (s *Server) ReconcileStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reconcile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.attendanceService.ReconcileStreaks(ctx, uid)
	if err != nil {
		logger.Error("reconcile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while reconciling streaks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StreaksResponse{
		CurrentStreak: state.CurrentStreak,
		LongestStreak: state.LongestStreak,
		TotalDays:     len(state.AttendedDates),
	})
	logger.Info("streaks reconciled")
}

func (s *Server) PostCreated(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("post-created error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PostCreatedRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("post-created error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.activityService.PostCreated(ctx, uid, entity.PostType(req.PostType))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUnknownPostType) {
			logger.Error("post-created error: unknown post type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown post type", nil)
			return
		}
		logger.Error("post-created error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling post", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivityResponse{
		XPEarned:      result.XPEarned,
		NewBadges:     result.NewBadges,
		Events:        result.Events,
		Notifications: BuildNotifications(result.Events),
	})
	logger.Info("post event handled")
}

func (s *Server) CommentCreated(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("comment-created error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.activityService.CommentCreated(ctx, uid)
	if err != nil {
		logger.Error("comment-created error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling comment", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivityResponse{
		XPEarned:      result.XPEarned,
		NewBadges:     result.NewBadges,
		Events:        result.Events,
		Notifications: BuildNotifications(result.Events),
	})
	logger.Info("comment event handled")
}

func (s *Server) GrantXp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("grant xp error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req GrantXpRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("grant xp error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.activityService.GrantXp(ctx, uid, req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidAmount) {
			logger.Error("grant xp error: invalid amount")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "amount must be positive", nil)
			return
		}
		logger.Error("grant xp error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while granting xp", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivityResponse{
		XPEarned:      result.XPEarned,
		NewBadges:     result.NewBadges,
		Events:        result.Events,
		Notifications: BuildNotifications(result.Events),
	})
	logger.Info("xp granted", slog.String("reason", req.Reason))
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	overview, err := s.progressionService.GetProgress(ctx, uid)
	if err != nil {
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("progress provided")
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	overview, err := s.badgeService.GetBadges(ctx, uid)
	if err != nil {
		logger.Error("get badges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting badges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("badges provided")
}

func (s *Server) GetDex(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get dex error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.dexService.GetProgress(ctx, uid)
	if err != nil {
		logger.Error("get dex error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting dex", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("dex provided")
}

func (s *Server) GetDexItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get dex item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	itemID := r.PathValue("itemID")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.dexService.GetEntry(ctx, uid, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			logger.Error("get dex item error: unknown item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
			return
		}
		logger.Error("get dex item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting dex item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"item_id": itemID,
		"entry":   entry,
	})
}

func (s *Server) SetDexStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set dex status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetDexStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set dex status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	status := entity.DexStatus(req.Status)
	switch status {
	case entity.DexTried, entity.DexMade, entity.DexWant, entity.DexNone:
	default:
		logger.Error("set dex status error: unknown status")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown dex status", nil)
		return
	}
	itemID := r.PathValue("itemID")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.dexService.SetStatus(ctx, uid, itemID, status)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			logger.Error("set dex status error: unknown item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
			return
		}
		logger.Error("set dex status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while updating dex item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DexMutationResponse{
		Entry:         result.Entry,
		NewBadges:     result.NewBadges,
		Events:        result.Events,
		Notifications: BuildNotifications(result.Events),
	})
	logger.Info("dex status updated", slog.String("item_id", itemID))
}

func (s *Server) SetDexRating(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set dex rating error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetDexRatingRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set dex rating error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	itemID := r.PathValue("itemID")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.dexService.SetRating(ctx, uid, itemID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("set dex rating error: unknown item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("set dex rating error: no entry for item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item has no dex entry yet", nil)
		default:
			logger.Error("set dex rating error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while updating dex item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("dex rating updated", slog.String("item_id", itemID))
}

func (s *Server) SetDexMemo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set dex memo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetDexMemoRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set dex memo error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	itemID := r.PathValue("itemID")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.dexService.SetMemo(ctx, uid, itemID, req.Memo)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("set dex memo error: unknown item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("set dex memo error: no entry for item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item has no dex entry yet", nil)
		default:
			logger.Error("set dex memo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while updating dex item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("dex memo updated", slog.String("item_id", itemID))
}
