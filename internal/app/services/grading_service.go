package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/export"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// Score grades answers against questions. Total is the sum of all question
// marks; score sums the marks of questions answered with the correct option.
// Answers to unknown questions are ignored and only the first answer to a
// question counts.
func Score(questions []*models.Question, answers []models.Answer) (score, total int) {
	byID := make(map[int64]*models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
		total += q.Marks
	}

	answered := make(map[int64]bool, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok || answered[a.QuestionID] {
			continue
		}
		answered[a.QuestionID] = true
		if a.SelectedOption == q.Correct {
			score += q.Marks
		}
	}
	return score, total
}

// GradingService grades and stores submissions
type GradingService struct {
	assessmentRepo AssessmentStore
	questionRepo   QuestionStore
	submissionRepo SubmissionStore
	notifications  *NotificationService
	logger         zerolog.Logger
	now            func() time.Time
}

// NewGradingService creates a new GradingService
func NewGradingService(
	assessmentRepo AssessmentStore,
	questionRepo QuestionStore,
	submissionRepo SubmissionStore,
	notifications *NotificationService,
	logger zerolog.Logger,
) *GradingService {
	return &GradingService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		notifications:  notifications,
		logger:         logger,
		now:            time.Now,
	}
}

func notificationTypeFor(kind models.AssessmentKind) models.NotificationType {
	if kind == models.KindAssignment {
		return models.NotificationAssignment
	}
	return models.NotificationExam
}

// Submit grades the user's answers to an active exam or assignment and stores the submission
func (s *GradingService) Submit(ctx context.Context, kind models.AssessmentKind, assessmentID, userID int64, answers []models.Answer) (*dto.SubmissionResult, error) {
	if answers == nil {
		return nil, apperrors.NewValidationError("answers is required")
	}

	assessment, err := s.assessmentRepo.GetByID(ctx, kind, assessmentID)
	if err != nil {
		return nil, err
	}
	if !assessment.IsActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAssessmentInactive,
			fmt.Sprintf("This %s is not active", strings.ToLower(kind.OnModel())))
	}

	questions, err := s.questionRepo.ListByAssessment(ctx, kind, assessmentID)
	if err != nil {
		return nil, err
	}

	score, total := Score(questions, answers)
	now := s.now()
	submission := &models.Submission{
		UserID:      userID,
		ExamID:      assessmentID,
		OnModel:     kind.OnModel(),
		Answers:     answers,
		Score:       score,
		TotalMarks:  total,
		SubmittedAt: now,
		IsGraded:    true,
		GradedAt:    &now,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Int64("assessmentId", assessmentID).
		Int64("userId", userID).
		Int("score", score).
		Int("totalMarks", total).
		Msg("Submission graded")

	if s.notifications != nil {
		message := fmt.Sprintf("You scored %d/%d in %s", score, total, assessment.Title)
		title := kind.OnModel() + " graded"
		if _, err := s.notifications.Notify(ctx, userID, notificationTypeFor(kind), title, message); err != nil {
			s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to send grading notification")
		}
	}

	return &dto.SubmissionResult{Submission: submission, Score: score, TotalMarks: total}, nil
}

// Result returns the user's latest submission
func (s *GradingService) Result(ctx context.Context, kind models.AssessmentKind, assessmentID, userID int64) (*models.Submission, error) {
	submission, err := s.submissionRepo.LatestByUser(ctx, kind, assessmentID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrSubmissionNotFound,
				"No submission found for this "+strings.ToLower(kind.OnModel()))
		}
		return nil, err
	}
	return submission, nil
}

// ListSubmissions returns a page of an assessment's submissions for staff
func (s *GradingService) ListSubmissions(ctx context.Context, kind models.AssessmentKind, assessmentID int64, page helpers.PageRequest) ([]*models.Submission, *dto.PaginationInfo, error) {
	if _, err := s.assessmentRepo.GetByID(ctx, kind, assessmentID); err != nil {
		return nil, nil, err
	}
	items, total, err := s.submissionRepo.ListByAssessment(ctx, kind, assessmentID, page)
	if err != nil {
		return nil, nil, err
	}
	return items, helpers.NewPaginationInfo(total, page), nil
}

// ExportSubmissions lays out every submission of an assessment as a worksheet
func (s *GradingService) ExportSubmissions(ctx context.Context, kind models.AssessmentKind, assessmentID int64) (export.Sheet, string, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, kind, assessmentID)
	if err != nil {
		return export.Sheet{}, "", err
	}
	items, _, err := s.submissionRepo.ListByAssessment(ctx, kind, assessmentID, helpers.PageRequest{})
	if err != nil {
		return export.Sheet{}, "", err
	}

	filename := fmt.Sprintf("%s_%d_submissions_%s.xlsx", kind, assessmentID, s.now().Format("20060102"))
	return export.Submissions(assessment.Title, items), filename, nil
}
