package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
	"github.com/genius/elearning/internal/pkg/helpers"
)

func seedUser(t *testing.T, users *fakeUserStore, phone, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{Name: "User " + phone, Phone: phone, Password: hash, Role: role}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserService_ChangePassword(t *testing.T) {
	users := newFakeUserStore()
	cache := &fakeEvicter{}
	svc := NewUserService(users, &fakeLevelStore{levels: map[int64]*models.EducationalLevel{}}, cache, zerolog.Nop())
	u := seedUser(t, users, "01000000001", "oldpass", models.RoleStudent)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong!", NewPassword: "newpass"})
	require.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Current password is incorrect", msg)

	err = svc.ChangePassword(ctx, u.ID, &dto.ChangePasswordRequest{CurrentPassword: "oldpass", NewPassword: "short"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.ChangePassword(ctx, u.ID, &dto.ChangePasswordRequest{CurrentPassword: "oldpass", NewPassword: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, &dto.ChangePasswordRequest{CurrentPassword: "oldpass", NewPassword: "newpass"}))
	assert.True(t, auth.CheckPassword(users.users[u.ID].Password, "newpass"))
	assert.Equal(t, []int64{u.ID}, cache.evicted)
}

func TestUserService_UpdateProfileAndRole(t *testing.T) {
	users := newFakeUserStore()
	cache := &fakeEvicter{}
	levels := &fakeLevelStore{levels: map[int64]*models.EducationalLevel{3: {ID: 3}}}
	svc := NewUserService(users, levels, cache, zerolog.Nop())
	u := seedUser(t, users, "01000000002", "secret1", models.RoleStudent)
	ctx := context.Background()

	level := int64(3)
	updated, err := svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Name: strPtr("  Mona  "), EducationalLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "Mona", updated.Name)
	assert.Equal(t, &level, updated.EducationalLevelID)

	missing := int64(8)
	_, err = svc.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{EducationalLevel: &missing})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	promoted, err := svc.UpdateRole(ctx, u.ID, &dto.UpdateUserRoleRequest{Role: models.RoleAssistant, Permissions: []string{"grade"}})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, promoted.Role)
	assert.Equal(t, []string{"grade"}, promoted.Permissions)
	assert.Len(t, cache.evicted, 2)

	_, err = svc.UpdateRole(ctx, 999, &dto.UpdateUserRoleRequest{Role: models.RoleAdmin})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeLevelStore{}, nil, zerolog.Nop())
	seedUser(t, users, "01000000003", "secret1", models.RoleStudent)
	seedUser(t, users, "01000000004", "secret1", models.RoleTeacher)

	list, pagination, err := svc.ListUsers(context.Background(), dto.UserFilter{Role: "teacher"}, helpers.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), pagination.TotalItems)

	_, _, err = svc.ListUsers(context.Background(), dto.UserFilter{Role: "janitor"}, helpers.NewPageRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
