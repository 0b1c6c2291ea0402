package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

func newLessonFixture(t *testing.T) (*LessonService, *fakeSubscriptionStore) {
	t.Helper()
	courses := &fakeCourseStore{courses: map[int64]*models.Course{1: {ID: 1, Title: "Physics"}}}
	lessons := &fakeLessonStore{lessons: map[int64]*models.Lesson{}}
	subs := &fakeSubscriptionStore{items: map[int64]*models.Subscription{}, courses: courses}
	svc := NewLessonService(lessons, courses, subs, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	for _, req := range []dto.LessonRequest{
		{CourseID: 1, Title: "Intro", VideoURL: "https://v/1", Order: 1},
		{CourseID: 1, Title: "Locked", VideoURL: "https://v/2", IsLocked: true, Order: 2},
	} {
		req := req
		_, err := svc.Create(ctx, &req)
		require.NoError(t, err)
	}
	return svc, subs
}

func TestLessonService_LockedVideoGating(t *testing.T) {
	past := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		viewer    *models.User
		sub       *models.Subscription
		wantVideo bool
	}{
		{name: "anonymous", viewer: nil},
		{name: "student without subscription", viewer: &models.User{ID: 7, Role: models.RoleStudent}},
		{
			name:   "pending subscription",
			viewer: &models.User{ID: 7, Role: models.RoleStudent},
			sub:    &models.Subscription{UserID: 7, CourseID: 1, Status: models.SubscriptionPending},
		},
		{
			name:   "expired subscription",
			viewer: &models.User{ID: 7, Role: models.RoleStudent},
			sub:    &models.Subscription{UserID: 7, CourseID: 1, Status: models.SubscriptionActive, ExpiresAt: &past},
		},
		{
			name:      "active subscription",
			viewer:    &models.User{ID: 7, Role: models.RoleStudent},
			sub:       &models.Subscription{UserID: 7, CourseID: 1, Status: models.SubscriptionActive, ExpiresAt: &future},
			wantVideo: true,
		},
		{name: "staff", viewer: &models.User{ID: 1, Role: models.RoleTeacher}, wantVideo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, subs := newLessonFixture(t)
			if tt.sub != nil {
				require.NoError(t, subs.Create(context.Background(), tt.sub))
			}

			lessons, pagination, err := svc.ListByCourse(context.Background(), 1, tt.viewer, helpers.NewPageRequest(1, 10))
			require.NoError(t, err)
			require.Len(t, lessons, 2)
			assert.Equal(t, int64(2), pagination.TotalItems)

			assert.Equal(t, "https://v/1", lessons[0].VideoURL)
			if tt.wantVideo {
				assert.Equal(t, "https://v/2", lessons[1].VideoURL)
			} else {
				assert.Empty(t, lessons[1].VideoURL)
			}
		})
	}
}

func TestLessonService_GatingDoesNotAlterStoredLesson(t *testing.T) {
	svc, _ := newLessonFixture(t)
	ctx := context.Background()

	_, _, err := svc.ListByCourse(ctx, 1, nil, helpers.NewPageRequest(1, 10))
	require.NoError(t, err)

	lesson, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "https://v/2", lesson.VideoURL)
}

func TestLessonService_UnknownCourse(t *testing.T) {
	svc, _ := newLessonFixture(t)
	ctx := context.Background()

	_, _, err := svc.ListByCourse(ctx, 9, nil, helpers.NewPageRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.Create(ctx, &dto.LessonRequest{CourseID: 9, Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
