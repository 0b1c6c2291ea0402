package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
)

func TestCourseService_CreateAndUpdate(t *testing.T) {
	levels := &fakeLevelStore{levels: map[int64]*models.EducationalLevel{6: {ID: 6, Name: "Third Secondary"}}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{}}
	svc := NewCourseService(courses, levels, zerolog.Nop())
	ctx := context.Background()

	course, err := svc.Create(ctx, &dto.CourseRequest{
		Title: "Physics - October", Year: "2025", ShortDescription: "s", FullDescription: "f",
		Price: 150, Month: 10, EducationalLevelID: int64Ptr(6),
	})
	require.NoError(t, err)
	assert.True(t, course.IsActive)

	_, err = svc.Create(ctx, &dto.CourseRequest{Title: "x", Month: 1, EducationalLevelID: int64Ptr(42)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	month := 11
	inactive := false
	updated, err := svc.Update(ctx, course.ID, &dto.UpdateCourseRequest{Month: &month, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Month)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Physics - October", updated.Title)

	_, err = svc.Update(ctx, 99, &dto.UpdateCourseRequest{Month: &month})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	require.NoError(t, svc.Delete(ctx, course.ID))
	assert.ErrorIs(t, svc.Delete(ctx, course.ID), apperrors.ErrCourseNotFound)
}

func TestEducationalLevelService(t *testing.T) {
	svc := NewEducationalLevelService(&fakeLevelStore{levels: map[int64]*models.EducationalLevel{}}, zerolog.Nop())
	ctx := context.Background()

	level, err := svc.Create(ctx, &dto.EducationalLevelRequest{
		Name: "First Prep", NameAr: "أولى إعدادي", Level: models.StagePrep, Year: 1, Order: 1,
	})
	require.NoError(t, err)
	assert.True(t, level.IsActive)

	_, err = svc.Create(ctx, &dto.EducationalLevelRequest{
		Name: "First Prep", NameAr: "other", Level: models.StagePrep, Year: 1, Order: 2,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.Create(ctx, &dto.EducationalLevelRequest{Name: "n", NameAr: "n", Level: "college", Year: 1, Order: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	order := 4
	updated, err := svc.Update(ctx, level.ID, &dto.UpdateEducationalLevelRequest{Order: &order})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Order)

	require.NoError(t, svc.Delete(ctx, level.ID))
	_, err = svc.GetByID(ctx, level.ID)
	assert.ErrorIs(t, err, apperrors.ErrEducationalLevelNotFound)
}
