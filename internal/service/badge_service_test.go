package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/baechu-app/gamify/internal/repository/mocks"
	"github.com/baechu-app/gamify/internal/service"
	"github.com/baechu-app/gamify/pkg/entity"
)

func TestCheckAndAward(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)
	progRepo := mocks.NewMockProgressionRepositoryI(ctrl)

	serv := service.NewBadgeService(badgesRepo, service.NewProgressionService(progRepo))
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Snapshot     entity.StatsSnapshot
		NewIDs       []string
		EventTypes   []entity.EventType
		MockPrepFunc func()
	}{
		{
			Desc:     "nothing reached",
			Error:    nil,
			Snapshot: entity.StatsSnapshot{},
			NewIDs:   nil,
			MockPrepFunc: func() {
				badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			Desc:       "single badge crossed",
			Error:      nil,
			Snapshot:   entity.StatsSnapshot{TotalPosts: 1},
			NewIDs:     []string{"first-post"},
			EventTypes: []entity.EventType{entity.EventBadgeEarned},
			MockPrepFunc: func() {
				badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)
				badgesRepo.EXPECT().SaveEarned(gomock.Any(), userID, gomock.Any()).Return(nil)
				progRepo.EXPECT().Get(gomock.Any(), userID).
					Return(&entity.UserProgression{UserID: userID, XP: 10}, nil)
				progRepo.EXPECT().Save(gomock.Any(), &entity.UserProgression{UserID: userID, XP: 30}).
					Return(nil)
			},
		},
		{
			Desc:     "already earned badge stays earned once",
			Error:    nil,
			Snapshot: entity.StatsSnapshot{TotalPosts: 3},
			NewIDs:   nil,
			MockPrepFunc: func() {
				badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).
					Return([]entity.EarnedBadge{{BadgeID: "first-post", EarnedAt: time.Now()}}, nil)
			},
		},
		{
			Desc:       "multiple badges awarded in catalog order",
			Error:      nil,
			Snapshot:   entity.StatsSnapshot{TotalPosts: 10, QnaAnswers: 10},
			NewIDs:     []string{"first-post", "storyteller", "helping-hand"},
			EventTypes: []entity.EventType{entity.EventBadgeEarned, entity.EventBadgeEarned, entity.EventBadgeEarned},
			MockPrepFunc: func() {
				badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)
				badgesRepo.EXPECT().SaveEarned(gomock.Any(), userID, gomock.Any()).Return(nil)
				progRepo.EXPECT().Get(gomock.Any(), userID).
					Return(&entity.UserProgression{UserID: userID, XP: 100}, nil)
				progRepo.EXPECT().Save(gomock.Any(), &entity.UserProgression{UserID: userID, XP: 250}).
					Return(nil)
			},
		},
		{
			Desc:       "reward xp levels the user up",
			Error:      nil,
			Snapshot:   entity.StatsSnapshot{TotalPosts: 1},
			NewIDs:     []string{"first-post"},
			EventTypes: []entity.EventType{entity.EventBadgeEarned, entity.EventLevelUp, entity.EventUnlockPermission},
			MockPrepFunc: func() {
				badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).Return(nil, nil)
				badgesRepo.EXPECT().SaveEarned(gomock.Any(), userID, gomock.Any()).Return(nil)
				progRepo.EXPECT().Get(gomock.Any(), userID).
					Return(&entity.UserProgression{UserID: userID, XP: 95}, nil)
				progRepo.EXPECT().Save(gomock.Any(), &entity.UserProgression{UserID: userID, XP: 115}).
					Return(nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			newIDs, events, err := serv.CheckAndAward(ctx, userID, tc.Snapshot)
			assert.ErrorIs(t, err, tc.Error)
			assert.Equal(t, tc.NewIDs, newIDs)
			var types []entity.EventType
			for _, e := range events {
				types = append(types, e.Type)
			}
			assert.Equal(t, tc.EventTypes, types)
		})
	}
}

func TestGetBadges(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)
	progRepo := mocks.NewMockProgressionRepositoryI(ctrl)

	serv := service.NewBadgeService(badgesRepo, service.NewProgressionService(progRepo))
	userID := uuid.New()
	earnedAt := time.Now()
	badgesRepo.EXPECT().GetEarned(gomock.Any(), userID).
		Return([]entity.EarnedBadge{{BadgeID: "first-post", EarnedAt: earnedAt}}, nil)

	overview, err := serv.GetBadges(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, overview.Earned, 1)
	assert.Len(t, overview.Locked, 8)
	assert.Equal(t, "first-post", overview.Earned[0].ID)
	assert.Equal(t, "First Post", overview.Earned[0].Name)
	assert.Equal(t, earnedAt, *overview.Earned[0].EarnedAt)
	for _, locked := range overview.Locked {
		assert.Nil(t, locked.EarnedAt)
	}
}
