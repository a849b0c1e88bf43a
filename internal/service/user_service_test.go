package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository/mocks"
	"github.com/baechu-app/gamify/internal/service"
	"github.com/baechu-app/gamify/pkg/entity"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	service.InitValidator()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.RegisterRequest
		Result       *entity.User
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req:   &service.RegisterRequest{Name: "kimchi_lover", Password: "password123"},
			Result: &entity.User{
				ID:   userID,
				Name: "kimchi_lover",
			},
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				usersRepo.EXPECT().FindByName(gomock.Any(), "kimchi_lover").
					Return(&entity.User{ID: userID, Name: "kimchi_lover"}, nil)
			},
		},
		{
			Desc:         "error name starts with digit",
			Error:        nil,
			Req:          &service.RegisterRequest{Name: "1kimchi", Password: "password123"},
			Result:       nil,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error short password",
			Error:        nil,
			Req:          &service.RegisterRequest{Name: "kimchi_lover", Password: "short"},
			Result:       nil,
			MockPrepFunc: func() {},
		},
		{
			Desc:   "error user exists",
			Error:  errorvalues.ErrUserExists,
			Req:    &service.RegisterRequest{Name: "kimchi_lover", Password: "password123"},
			Result: nil,
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(errorvalues.ErrUserExists)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.Register(ctx, tc.Req)
			if tc.Result == nil {
				assert.Error(t, err)
				if tc.Error != nil {
					assert.ErrorIs(t, err, tc.Error)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.Result, user)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo)
	userID := uuid.New()
	passwordHash, err := service.Hash("password123")
	assert.NoError(t, err)
	stored := &entity.User{ID: userID, Name: "kimchi_lover", PasswordHash: passwordHash}
	testCases := []struct {
		Desc         string
		Error        error
		Name         string
		Password     string
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Error:    nil,
			Name:     "kimchi_lover",
			Password: "password123",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "kimchi_lover").Return(stored, nil)
			},
		},
		{
			Desc:     "error wrong password",
			Error:    errorvalues.ErrWrongCredentials,
			Name:     "kimchi_lover",
			Password: "wrong_password",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "kimchi_lover").Return(stored, nil)
			},
		},
		{
			Desc:     "error user not found",
			Error:    errorvalues.ErrUserNotFound,
			Name:     "nobody",
			Password: "password123",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByName(gomock.Any(), "nobody").
					Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.Login(ctx, tc.Name, tc.Password)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, stored, user)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo)
	userID := uuid.New()
	usersRepo.EXPECT().FindByID(gomock.Any(), userID).
		Return(&entity.User{ID: userID, Name: "kimchi_lover"}, nil)

	user, err := serv.GetByID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "kimchi_lover", user.Name)

	missing := uuid.New()
	usersRepo.EXPECT().FindByID(gomock.Any(), missing).
		Return(nil, errorvalues.ErrUserNotFound)
	user, err = serv.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	assert.Nil(t, user)
}
