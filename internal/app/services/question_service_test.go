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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newQuestionFixture() (*QuestionService, *fakeAssessmentStore) {
	assessments := &fakeAssessmentStore{items: map[int64]*models.Assessment{}}
	questions := &fakeQuestionStore{questions: map[int64]*models.Question{}, assessments: assessments}
	return NewQuestionService(questions, assessments, zerolog.Nop()), assessments
}

func twoOptions() []models.QuestionOption {
	return []models.QuestionOption{{ID: "a", Text: "1"}, {ID: "b", Text: "2"}}
}

func TestQuestionService_TotalMarksFollowEveryWrite(t *testing.T) {
	svc, assessments := newQuestionFixture()
	ctx := context.Background()
	exam := &models.Assessment{Kind: models.KindExam, Title: "Unit test", Type: models.AssessmentTypeGeneral, IsActive: true}
	require.NoError(t, assessments.Create(ctx, exam))

	first, err := svc.Create(ctx, &dto.QuestionRequest{ExamID: exam.ID, Content: "1+0?", Options: twoOptions(), Correct: "a"})
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestionMarks, first.Question.Marks)
	assert.Equal(t, 1, first.TotalMarks)
	assert.Equal(t, models.QuestionTypeText, first.Question.Type)
	assert.Equal(t, "Exam", first.Question.OnModel)

	second, err := svc.Create(ctx, &dto.QuestionRequest{ExamID: exam.ID, Content: "1+1?", Options: twoOptions(), Correct: "b", Marks: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 5, second.TotalMarks)

	updated, err := svc.Update(ctx, second.Question.ID, &dto.UpdateQuestionRequest{Marks: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.TotalMarks)

	total, err := svc.Delete(ctx, first.Question.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, assessments.items[exam.ID].TotalMarks)

	total, err = svc.Delete(ctx, second.Question.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestQuestionService_CreateValidation(t *testing.T) {
	svc, assessments := newQuestionFixture()
	ctx := context.Background()
	exam := &models.Assessment{Kind: models.KindExam, Type: models.AssessmentTypeGeneral}
	require.NoError(t, assessments.Create(ctx, exam))

	tests := []struct {
		name    string
		req     dto.QuestionRequest
		wantErr error
	}{
		{"correct not an option", dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: twoOptions(), Correct: "z"}, apperrors.ErrValidationFailed},
		{"duplicate option ids", dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: []models.QuestionOption{{ID: "a"}, {ID: "a"}}, Correct: "a"}, apperrors.ErrValidationFailed},
		{"single option", dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: []models.QuestionOption{{ID: "a"}}, Correct: "a"}, apperrors.ErrValidationFailed},
		{"negative marks", dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: twoOptions(), Correct: "a", Marks: intPtr(-1)}, apperrors.ErrValidationFailed},
		{"bad option id", dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: []models.QuestionOption{{ID: "a b"}, {ID: "c"}}, Correct: "c"}, apperrors.ErrValidationFailed},
		{"missing exam", dto.QuestionRequest{ExamID: 42, Content: "q", Options: twoOptions(), Correct: "a"}, apperrors.ErrExamNotFound},
		{"wrong owner model", dto.QuestionRequest{ExamID: exam.ID, OnModel: "Assignment", Content: "q", Options: twoOptions(), Correct: "a"}, apperrors.ErrAssignmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Create(ctx, &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 0, assessments.items[exam.ID].TotalMarks)
}

func TestQuestionService_UpdateKeepsAnswerKeyConsistent(t *testing.T) {
	svc, assessments := newQuestionFixture()
	ctx := context.Background()
	exam := &models.Assessment{Kind: models.KindExam, Type: models.AssessmentTypeGeneral}
	require.NoError(t, assessments.Create(ctx, exam))

	created, err := svc.Create(ctx, &dto.QuestionRequest{ExamID: exam.ID, Content: "q", Options: twoOptions(), Correct: "b"})
	require.NoError(t, err)

	// Replacing options so the current key disappears must be rejected
	_, err = svc.Update(ctx, created.Question.ID, &dto.UpdateQuestionRequest{
		Options: []models.QuestionOption{{ID: "x"}, {ID: "y"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	res, err := svc.Update(ctx, created.Question.ID, &dto.UpdateQuestionRequest{
		Options: []models.QuestionOption{{ID: "x"}, {ID: "y"}},
		Correct: strPtr("y"),
	})
	require.NoError(t, err)
	assert.Equal(t, "y", res.Question.Correct)
}

func TestQuestionService_ListHidesAnswersUnlessRevealed(t *testing.T) {
	svc, assessments := newQuestionFixture()
	ctx := context.Background()
	hw := &models.Assessment{Kind: models.KindAssignment, Type: models.AssessmentTypeGeneral}
	require.NoError(t, assessments.Create(ctx, hw))

	for i, content := range []string{"second", "first"} {
		_, err := svc.Create(ctx, &dto.QuestionRequest{
			ExamID: hw.ID, OnModel: "Assignment", Content: content, Options: twoOptions(),
			Correct: "a", Explanation: "because", Order: 2 - i,
		})
		require.NoError(t, err)
	}

	hidden, err := svc.ListByAssessment(ctx, models.KindAssignment, hw.ID, false)
	require.NoError(t, err)
	require.Len(t, hidden, 2)
	assert.Equal(t, "first", hidden[0].Content)
	for _, q := range hidden {
		assert.Empty(t, q.Correct)
		assert.Empty(t, q.Explanation)
	}

	revealed, err := svc.ListByAssessment(ctx, models.KindAssignment, hw.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "a", revealed[0].Correct)

	_, err = svc.ListByAssessment(ctx, models.KindExam, hw.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}
