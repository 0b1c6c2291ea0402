package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeEvicter) {
	users := newFakeUserStore()
	levels := &fakeLevelStore{levels: map[int64]*models.EducationalLevel{
		6: {ID: 6, Name: "Third Secondary", Level: models.StageSecondary, Year: 3},
	}}
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: 7 * 24 * time.Hour})
	cache := &fakeEvicter{}
	return NewAuthService(users, levels, jwtSvc, cache, zerolog.Nop()), users, cache
}

func registerRequest(phone string) *dto.RegisterRequest {
	level := int64(6)
	return &dto.RegisterRequest{
		Name:             "Ahmed Ali",
		Phone:            phone,
		GuardianPhone:    "01198765432",
		EducationalLevel: &level,
		Gender:           models.GenderMale,
		Password:         "secret1",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest("01012345678"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 7*24*3600, resp.ExpiresIn)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	stored := users.users[resp.User.ID]
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret1"))

	_, err = svc.Register(ctx, registerRequest("01012345678"))
	assert.ErrorIs(t, err, apperrors.ErrPhoneAlreadyExists)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	short := registerRequest("01000000001")
	short.Password = "12345"
	_, err := svc.Register(ctx, short)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	long := registerRequest("01000000003")
	long.Password = strings.Repeat("a", 73)
	_, err = svc.Register(ctx, long)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badLevel := registerRequest("01000000002")
	missing := int64(99)
	badLevel.EducationalLevel = &missing
	_, err = svc.Register(ctx, badLevel)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, cache := newAuthFixture()
	ctx := context.Background()
	registered, err := svc.Register(ctx, registerRequest("01012345678"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		phone    string
		password string
		wantErr  error
	}{
		{"success", "01012345678", "secret1", nil},
		{"wrong password", "01012345678", "nope123", apperrors.ErrInvalidCredentials},
		{"unknown phone", "01099999999", "secret1", apperrors.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, &dto.LoginRequest{Phone: tt.phone, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.User.ID, resp.User.ID)
		})
	}

	svc.Logout(ctx, registered.User.ID)
	assert.Equal(t, []int64{registered.User.ID}, cache.evicted)
}
