package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/helpers"
)

func TestScore(t *testing.T) {
	questions := []*models.Question{
		{ID: 1, Correct: "a", Marks: 2},
		{ID: 2, Correct: "b", Marks: 3},
		{ID: 3, Correct: "c", Marks: 5},
	}

	tests := []struct {
		name      string
		answers   []models.Answer
		wantScore int
	}{
		{"no answers", []models.Answer{}, 0},
		{"all correct", []models.Answer{{QuestionID: 1, SelectedOption: "a"}, {QuestionID: 2, SelectedOption: "b"}, {QuestionID: 3, SelectedOption: "c"}}, 10},
		{"partially correct", []models.Answer{{QuestionID: 1, SelectedOption: "a"}, {QuestionID: 2, SelectedOption: "x"}, {QuestionID: 3, SelectedOption: "c"}}, 7},
		{"unknown question ignored", []models.Answer{{QuestionID: 99, SelectedOption: "a"}, {QuestionID: 2, SelectedOption: "b"}}, 3},
		{"first answer wins when correct", []models.Answer{{QuestionID: 3, SelectedOption: "c"}, {QuestionID: 3, SelectedOption: "a"}}, 5},
		{"first answer wins when wrong", []models.Answer{{QuestionID: 3, SelectedOption: "a"}, {QuestionID: 3, SelectedOption: "c"}}, 0},
		{"empty selection", []models.Answer{{QuestionID: 1, SelectedOption: ""}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := Score(questions, tt.answers)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, 10, total)
			assert.LessOrEqual(t, score, total)
		})
	}
}

func TestScore_ZeroMarkQuestions(t *testing.T) {
	score, total := Score([]*models.Question{{ID: 1, Correct: "a", Marks: 0}}, []models.Answer{{QuestionID: 1, SelectedOption: "a"}})
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)
}

type gradingFixture struct {
	svc           *GradingService
	assessments   *fakeAssessmentStore
	questions     *fakeQuestionStore
	submissions   *fakeSubmissionStore
	notifications *fakeNotificationStore
	publisher     *fakePublisher
}

func newGradingFixture() *gradingFixture {
	assessments := &fakeAssessmentStore{items: map[int64]*models.Assessment{}}
	questions := &fakeQuestionStore{questions: map[int64]*models.Question{}, assessments: assessments}
	submissions := &fakeSubmissionStore{}
	notes := &fakeNotificationStore{}
	pub := &fakePublisher{}
	notifier := NewNotificationService(notes, newFakeUserStore(), pub, zerolog.Nop())

	svc := NewGradingService(assessments, questions, submissions, notifier, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }

	return &gradingFixture{svc, assessments, questions, submissions, notes, pub}
}

func (f *gradingFixture) addAssessment(kind models.AssessmentKind, title string, active bool, marks ...int) *models.Assessment {
	a := &models.Assessment{Kind: kind, Title: title, Type: models.AssessmentTypeGeneral, IsActive: active}
	_ = f.assessments.Create(context.Background(), a)
	for i, m := range marks {
		_, _ = f.questions.Create(context.Background(), &models.Question{
			ExamID:  a.ID,
			OnModel: kind.OnModel(),
			Options: []models.QuestionOption{{ID: "a"}, {ID: "b"}},
			Correct: "a",
			Order:   i + 1,
			Marks:   m,
		})
	}
	return a
}

func TestGradingService_Submit(t *testing.T) {
	f := newGradingFixture()
	exam := f.addAssessment(models.KindExam, "Midterm", true, 2, 3)
	ctx := context.Background()

	questions, err := f.questions.ListByAssessment(ctx, models.KindExam, exam.ID)
	require.NoError(t, err)

	result, err := f.svc.Submit(ctx, models.KindExam, exam.ID, 7, []models.Answer{
		{QuestionID: questions[0].ID, SelectedOption: "a"},
		{QuestionID: questions[1].ID, SelectedOption: "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 5, result.TotalMarks)
	assert.Equal(t, f.assessments.items[exam.ID].TotalMarks, result.TotalMarks)
	assert.True(t, result.Submission.IsGraded)
	assert.NotNil(t, result.Submission.GradedAt)
	assert.Equal(t, "Exam", result.Submission.OnModel)
	require.Len(t, f.submissions.items, 1)

	require.Len(t, f.notifications.items, 1)
	n := f.notifications.items[0]
	assert.Equal(t, int64(7), n.UserID)
	assert.Equal(t, models.NotificationExam, n.Type)
	assert.Equal(t, "You scored 2/5 in Midterm", n.Message)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, int64(7), f.publisher.events[0].userID)
}

func TestGradingService_SubmitAssignmentNotifiesAssignmentType(t *testing.T) {
	f := newGradingFixture()
	hw := f.addAssessment(models.KindAssignment, "Homework 1", true, 1)

	_, err := f.svc.Submit(context.Background(), models.KindAssignment, hw.ID, 3, []models.Answer{})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationAssignment, f.notifications.items[0].Type)
	assert.Equal(t, "You scored 0/1 in Homework 1", f.notifications.items[0].Message)
}

func TestGradingService_SubmitErrors(t *testing.T) {
	f := newGradingFixture()
	inactive := f.addAssessment(models.KindExam, "Closed", false, 1)
	exam := f.addAssessment(models.KindExam, "Open", true, 1)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, models.KindExam, inactive.ID, 1, []models.Answer{})
	assert.ErrorIs(t, err, apperrors.ErrAssessmentInactive)

	_, err = f.svc.Submit(ctx, models.KindExam, 404, 1, []models.Answer{})
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)

	_, err = f.svc.Submit(ctx, models.KindAssignment, exam.ID, 1, []models.Answer{})
	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)

	_, err = f.svc.Submit(ctx, models.KindExam, exam.ID, 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, f.submissions.items)
}

func TestGradingService_Result(t *testing.T) {
	f := newGradingFixture()
	exam := f.addAssessment(models.KindExam, "Final", true, 4)
	ctx := context.Background()

	_, err := f.svc.Result(ctx, models.KindExam, exam.ID, 9)
	require.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
	msg, ok := apperrors.Message(err)
	require.True(t, ok)
	assert.Equal(t, "No submission found for this exam", msg)

	_, err = f.svc.Submit(ctx, models.KindExam, exam.ID, 9, []models.Answer{})
	require.NoError(t, err)
	second, err := f.svc.Submit(ctx, models.KindExam, exam.ID, 9, []models.Answer{})
	require.NoError(t, err)

	latest, err := f.svc.Result(ctx, models.KindExam, exam.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, second.Submission.ID, latest.ID)
}

func TestGradingService_ListAndExportSubmissions(t *testing.T) {
	f := newGradingFixture()
	exam := f.addAssessment(models.KindExam, "Quiz", true, 1)
	ctx := context.Background()
	for user := int64(1); user <= 3; user++ {
		_, err := f.svc.Submit(ctx, models.KindExam, exam.ID, user, []models.Answer{})
		require.NoError(t, err)
	}

	items, pagination, err := f.svc.ListSubmissions(ctx, models.KindExam, exam.ID, helpers.NewPageRequest(1, 2))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), pagination.TotalItems)
	assert.True(t, pagination.HasNextPage)

	sheet, filename, err := f.svc.ExportSubmissions(ctx, models.KindExam, exam.ID)
	require.NoError(t, err)
	assert.Len(t, sheet.Rows, 3)
	assert.Equal(t, "exam_1_submissions_20250401.xlsx", filename)

	_, _, err = f.svc.ListSubmissions(ctx, models.KindExam, 77, helpers.NewPageRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}
