package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/baechu-app/gamify/internal/catalog"
	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository/mocks"
	"github.com/baechu-app/gamify/internal/service"
	"github.com/baechu-app/gamify/pkg/entity"
)

func newDexService(ctrl *gomock.Controller) (
	*service.DexService,
	*mocks.MockDexRepositoryI,
	*mocks.MockBadgesRepositoryI,
	*mocks.MockProgressionRepositoryI,
	*mocks.MockAttendanceRepositoryI,
	*mocks.MockPostStatsRepositoryI,
) {
	dexRepo := mocks.NewMockDexRepositoryI(ctrl)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)
	progRepo := mocks.NewMockProgressionRepositoryI(ctrl)
	attRepo := mocks.NewMockAttendanceRepositoryI(ctrl)
	postRepo := mocks.NewMockPostStatsRepositoryI(ctrl)

	ledger := service.NewProgressionService(progRepo)
	stats := service.NewStatsService(progRepo, attRepo, dexRepo, postRepo)
	badges := service.NewBadgeService(badgesRepo, ledger)
	serv := service.NewDexService(dexRepo, badges, stats, service.NewUserLocks())
	return serv, dexRepo, badgesRepo, progRepo, attRepo, postRepo
}

// collectedEntries builds n entries over the first n catalog items.
func collectedEntries(n int) map[string]entity.DexEntry {
	entries := make(map[string]entity.DexEntry, n)
	now := time.Now()
	for _, item := range catalog.Items()[:n] {
		entries[item.ID] = entity.DexEntry{
			ItemID:      item.ID,
			Status:      entity.DexTried,
			CollectedAt: &now,
			UpdatedAt:   now,
		}
	}
	return entries
}

func TestSetStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, dexRepo, badgesRepo, progRepo, attRepo, postRepo := newDexService(ctrl)
	userID := uuid.New()
	ctx := context.Background()

	t.Run("error unknown item", func(t *testing.T) {
		result, err := serv.SetStatus(ctx, userID, "doenjang", entity.DexTried)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
		assert.Nil(t, result)
	})

	t.Run("error unknown status", func(t *testing.T) {
		result, err := serv.SetStatus(ctx, userID, "baechu", entity.DexStatus("eaten"))
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("success first entry", func(t *testing.T) {
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{}, nil)
		dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
		postRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.PostStats{UserID: userID}, nil)
		attRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.AttendanceState{UserID: userID}, nil)
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(collectedEntries(1), nil)
		progRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.UserProgression{UserID: userID, XP: 0}, nil)
		badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)

		result, err := serv.SetStatus(ctx, userID, "baechu", entity.DexTried)
		assert.NoError(t, err)
		assert.Equal(t, entity.DexTried, result.Entry.Status)
		assert.NotNil(t, result.Entry.CollectedAt)
		assert.Empty(t, result.NewBadges)
	})

	t.Run("success keeps first collected time", func(t *testing.T) {
		collectedAt := time.Now().Add(-48 * time.Hour)
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{
				"baechu": {ItemID: "baechu", Status: entity.DexTried, CollectedAt: &collectedAt},
			}, nil)
		dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
		postRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.PostStats{UserID: userID}, nil)
		attRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.AttendanceState{UserID: userID}, nil)
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(collectedEntries(1), nil)
		progRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.UserProgression{UserID: userID, XP: 0}, nil)
		badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)

		result, err := serv.SetStatus(ctx, userID, "baechu", entity.DexMade)
		assert.NoError(t, err)
		assert.Equal(t, entity.DexMade, result.Entry.Status)
		assert.Equal(t, collectedAt, *result.Entry.CollectedAt)
	})

	t.Run("success tenth item awards badge", func(t *testing.T) {
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(collectedEntries(9), nil)
		dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
		postRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.PostStats{UserID: userID}, nil)
		attRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.AttendanceState{UserID: userID}, nil)
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(collectedEntries(10), nil)
		progRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.UserProgression{UserID: userID, XP: 0}, nil)
		badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)
		badgesRepo.EXPECT().SaveEarned(gomock.Any(), userID, gomock.Any()).Return(nil)
		progRepo.EXPECT().Get(gomock.Any(), userID).
			Return(&entity.UserProgression{UserID: userID, XP: 0}, nil)
		progRepo.EXPECT().Save(gomock.Any(), &entity.UserProgression{UserID: userID, XP: 70}).
			Return(nil)

		result, err := serv.SetStatus(ctx, userID, catalog.Items()[9].ID, entity.DexMade)
		assert.NoError(t, err)
		assert.Equal(t, []string{"dex-ten"}, result.NewBadges)
		assert.Len(t, result.Events, 1)
		assert.Equal(t, entity.EventBadgeEarned, result.Events[0].Type)
	})

	t.Run("success none deletes entry", func(t *testing.T) {
		rating := 4
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{
				"baechu": {ItemID: "baechu", Status: entity.DexMade, Rating: &rating},
			}, nil)
		dexRepo.EXPECT().Save(gomock.Any(), userID, map[string]entity.DexEntry{}).Return(nil)

		result, err := serv.SetStatus(ctx, userID, "baechu", entity.DexNone)
		assert.NoError(t, err)
		assert.Nil(t, result.Entry)
		assert.Empty(t, result.NewBadges)
	})

	t.Run("success none on missing entry saves nothing", func(t *testing.T) {
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{}, nil)

		result, err := serv.SetStatus(ctx, userID, "baechu", entity.DexNone)
		assert.NoError(t, err)
		assert.Nil(t, result.Entry)
	})
}

func TestSetRating(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, dexRepo, _, _, _, _ := newDexService(ctrl)
	userID := uuid.New()
	ctx := context.Background()
	ratingOf := func(r int) *int { return &r }

	testCases := []struct {
		Desc         string
		Error        error
		ItemID       string
		Rating       *int
		Expected     *int
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Error:    nil,
			ItemID:   "baechu",
			Rating:   ratingOf(4),
			Expected: ratingOf(4),
			MockPrepFunc: func() {
				dexRepo.EXPECT().Get(gomock.Any(), userID).
					Return(map[string]entity.DexEntry{
						"baechu": {ItemID: "baechu", Status: entity.DexTried},
					}, nil)
				dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			Desc:     "success clamps above range",
			Error:    nil,
			ItemID:   "baechu",
			Rating:   ratingOf(9),
			Expected: ratingOf(5),
			MockPrepFunc: func() {
				dexRepo.EXPECT().Get(gomock.Any(), userID).
					Return(map[string]entity.DexEntry{
						"baechu": {ItemID: "baechu", Status: entity.DexTried},
					}, nil)
				dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			Desc:     "success clears rating",
			Error:    nil,
			ItemID:   "baechu",
			Rating:   nil,
			Expected: nil,
			MockPrepFunc: func() {
				dexRepo.EXPECT().Get(gomock.Any(), userID).
					Return(map[string]entity.DexEntry{
						"baechu": {ItemID: "baechu", Status: entity.DexTried, Rating: ratingOf(3)},
					}, nil)
				dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
		},
		{
			Desc:   "error entry not found",
			Error:  errorvalues.ErrEntryNotFound,
			ItemID: "baechu",
			Rating: ratingOf(4),
			MockPrepFunc: func() {
				dexRepo.EXPECT().Get(gomock.Any(), userID).
					Return(map[string]entity.DexEntry{}, nil)
			},
		},
		{
			Desc:         "error unknown item",
			Error:        errorvalues.ErrItemNotFound,
			ItemID:       "doenjang",
			Rating:       ratingOf(4),
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			entry, err := serv.SetRating(ctx, userID, tc.ItemID, tc.Rating)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.Expected, entry.Rating)
			}
		})
	}
}

func TestSetMemo(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, dexRepo, _, _, _, _ := newDexService(ctrl)
	userID := uuid.New()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{
				"kkakdugi": {ItemID: "kkakdugi", Status: entity.DexMade},
			}, nil)
		dexRepo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)

		entry, err := serv.SetMemo(ctx, userID, "kkakdugi", "crunchy, next time less salt")
		assert.NoError(t, err)
		assert.Equal(t, "crunchy, next time less salt", entry.Memo)
	})

	t.Run("error entry not found", func(t *testing.T) {
		dexRepo.EXPECT().Get(gomock.Any(), userID).
			Return(map[string]entity.DexEntry{}, nil)

		entry, err := serv.SetMemo(ctx, userID, "kkakdugi", "note")
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
		assert.Nil(t, entry)
	})
}

func TestGetEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, dexRepo, _, _, _, _ := newDexService(ctrl)
	userID := uuid.New()
	ctx := context.Background()

	dexRepo.EXPECT().Get(gomock.Any(), userID).
		Return(map[string]entity.DexEntry{}, nil)
	entry, err := serv.GetEntry(ctx, userID, "baechu")
	assert.NoError(t, err)
	assert.Nil(t, entry)

	_, err = serv.GetEntry(ctx, userID, "doenjang")
	assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
}

func TestGetDexProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, dexRepo, _, _, _, _ := newDexService(ctrl)
	userID := uuid.New()

	entries := collectedEntries(4)
	made := entries[catalog.Items()[3].ID]
	made.Status = entity.DexMade
	entries[made.ItemID] = made
	entries["gul"] = entity.DexEntry{ItemID: "gul", Status: entity.DexWant}
	dexRepo.EXPECT().Get(gomock.Any(), userID).Return(entries, nil)

	progress, err := serv.GetProgress(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 50, progress.Total)
	assert.Equal(t, 3, progress.Tried)
	assert.Equal(t, 1, progress.Made)
	assert.Equal(t, 1, progress.Want)
	assert.Equal(t, 4, progress.Collected)
	assert.Equal(t, 8, progress.Percent)
	assert.Len(t, progress.Entries, 5)
	// Catalog order puts the want-listed special at the end
	assert.Equal(t, "gul", progress.Entries[4].ItemID)
}
