package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/validation"
)

// DefaultQuestionMarks is used when a question is created without marks
const DefaultQuestionMarks = 1

// QuestionWrite is the result of a question create or update
type QuestionWrite struct {
	Question   *models.Question `json:"question"`
	TotalMarks int              `json:"totalMarks" example:"20"`
}

// QuestionService manages question banks. Every write recomputes the
// owning assessment's total marks in the same transaction.
type QuestionService struct {
	questionRepo   QuestionStore
	assessmentRepo AssessmentStore
	logger         zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo QuestionStore, assessmentRepo AssessmentStore, logger zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo:   questionRepo,
		assessmentRepo: assessmentRepo,
		logger:         logger,
	}
}

// validateQuestion enforces option and answer-key rules
func validateQuestion(q *models.Question) error {
	if strings.TrimSpace(q.Content) == "" {
		return apperrors.NewValidationError("content is required")
	}
	if q.Type != models.QuestionTypeText && q.Type != models.QuestionTypeImage {
		return apperrors.NewValidationError("type must be one of: text image")
	}
	if len(q.Options) < 2 {
		return apperrors.NewValidationError("A question needs at least two options")
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if !validation.IsValidOptionID(opt.ID) {
			return apperrors.NewValidationError("Option ids must be short alphanumeric values")
		}
		if seen[opt.ID] {
			return apperrors.NewValidationError("Option ids must be unique")
		}
		seen[opt.ID] = true
	}

	if !q.HasOption(q.Correct) {
		return apperrors.NewValidationError("correct must match one of the option ids")
	}
	if q.Marks < 0 {
		return apperrors.NewValidationError("marks must be at least 0")
	}
	return nil
}

// HideAnswers blanks the answer key and explanations
func HideAnswers(questions []*models.Question) {
	for _, q := range questions {
		q.Correct = ""
		q.Explanation = ""
	}
}

// ListByAssessment returns an assessment's questions in order.
// The answer key is only included when revealAnswers is set.
func (s *QuestionService) ListByAssessment(ctx context.Context, kind models.AssessmentKind, assessmentID int64, revealAnswers bool) ([]*models.Question, error) {
	if _, err := s.assessmentRepo.GetByID(ctx, kind, assessmentID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByAssessment(ctx, kind, assessmentID)
	if err != nil {
		return nil, err
	}
	if !revealAnswers {
		HideAnswers(questions)
	}
	return questions, nil
}

// Create adds a question to an exam or assignment
func (s *QuestionService) Create(ctx context.Context, req *dto.QuestionRequest) (*QuestionWrite, error) {
	kind := models.KindFromOnModel(req.OnModel)

	q := &models.Question{
		ExamID:      req.ExamID,
		OnModel:     kind.OnModel(),
		Type:        req.Type,
		Content:     req.Content,
		Options:     req.Options,
		Correct:     req.Correct,
		Explanation: req.Explanation,
		Order:       req.Order,
		Marks:       DefaultQuestionMarks,
	}
	if q.Type == "" {
		q.Type = models.QuestionTypeText
	}
	if req.Marks != nil {
		q.Marks = *req.Marks
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	total, err := s.questionRepo.Create(ctx, q)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("questionId", q.ID).
		Int64("assessmentId", q.ExamID).
		Int("totalMarks", total).
		Msg("Question created")
	return &QuestionWrite{Question: q, TotalMarks: total}, nil
}

// GetByID returns one question with its answer key
func (s *QuestionService) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Update applies the present fields of req
func (s *QuestionService) Update(ctx context.Context, id int64, req *dto.UpdateQuestionRequest) (*QuestionWrite, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		q.Type = *req.Type
	}
	if req.Content != nil {
		q.Content = *req.Content
	}
	if req.Options != nil {
		q.Options = req.Options
	}
	if req.Correct != nil {
		q.Correct = *req.Correct
	}
	if req.Explanation != nil {
		q.Explanation = *req.Explanation
	}
	if req.Order != nil {
		q.Order = *req.Order
	}
	if req.Marks != nil {
		q.Marks = *req.Marks
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	total, err := s.questionRepo.Update(ctx, q)
	if err != nil {
		return nil, err
	}
	return &QuestionWrite{Question: q, TotalMarks: total}, nil
}

// Delete removes a question and returns the assessment's new total marks
func (s *QuestionService) Delete(ctx context.Context, id int64) (int, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	total, err := s.questionRepo.Delete(ctx, q)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("questionId", id).
		Int64("assessmentId", q.ExamID).
		Int("totalMarks", total).
		Msg("Question deleted")
	return total, nil
}
