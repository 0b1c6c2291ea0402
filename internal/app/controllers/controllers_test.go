package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/export"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func withUser(id int64, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestPathID(t *testing.T) {
	router := gin.New()
	router.GET("/courses/:id", func(c *gin.Context) {
		id, ok := pathID(c, "id", "course")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for _, target := range []string{"/courses/abc", "/courses/0", "/courses/-3"} {
		w := serve(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "Invalid course ID", decodeError(t, w).Message)
	}

	w := serve(router, http.MethodGet, "/courses/12", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":12}`, w.Body.String())
}

func TestSendWorkbook(t *testing.T) {
	router := gin.New()
	router.GET("/export", func(c *gin.Context) {
		sendWorkbook(c, export.Sheet{
			Name:    "Results",
			Headers: []string{"Student", "Score"},
			Rows:    [][]interface{}{{"Ahmed", 4}},
		}, "exam_1_submissions_20251019.xlsx")
	})

	w := serve(router, http.MethodGet, "/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="exam_1_submissions_20251019.xlsx"`, w.Header().Get("Content-Disposition"))
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestQuestionController_ListRequiresExamID(t *testing.T) {
	router := gin.New()
	router.GET("/questions", NewQuestionController(nil).List)

	for _, target := range []string{"/questions", "/questions?examId=", "/questions?examId=x&onModel=Exam"} {
		w := serve(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "examId is required", decodeError(t, w).Message)
	}
}

func TestListFilters_RejectMalformedIDs(t *testing.T) {
	router := gin.New()
	router.GET("/exams", NewAssessmentController(models.KindExam, nil, nil, nil).List)
	router.GET("/courses", NewCourseController(nil, nil).List)

	tests := []struct {
		target  string
		message string
	}{
		{"/exams?courseId=abc", "Invalid courseId"},
		{"/exams?courseId=3&lessonId=0", "Invalid lessonId"},
		{"/exams?lessonId=-1", "Invalid lessonId"},
		{"/courses?educationalLevel=first", "Invalid educationalLevel"},
	}
	for _, tt := range tests {
		w := serve(router, http.MethodGet, tt.target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.target)
		resp := decodeError(t, w)
		assert.Equal(t, tt.message, resp.Message, tt.target)
		assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code, tt.target)
	}
}

func TestAssessmentController_SubmitGuards(t *testing.T) {
	ctrl := NewAssessmentController(models.KindExam, nil, nil, nil)

	anonymous := gin.New()
	anonymous.POST("/exams/:id/submissions", ctrl.Submit)
	w := serve(anonymous, http.MethodPost, "/exams/1/submissions", `{"answers":[]}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	router := gin.New()
	router.POST("/exams/:id/submissions", withUser(7, models.RoleStudent), ctrl.Submit)

	w = serve(router, http.MethodPost, "/exams/abc/submissions", `{"answers":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid exam ID", decodeError(t, w).Message)

	w = serve(router, http.MethodPost, "/exams/1/submissions", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)

	w = serve(router, http.MethodPost, "/exams/1/submissions", `{"answers":"a"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminController_UploadRequiresFile(t *testing.T) {
	router := gin.New()
	router.POST("/admin/uploads", withUser(1, models.RoleAdmin), NewAdminController(nil, nil).Upload)

	w := serve(router, http.MethodPost, "/admin/uploads", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "file is required", decodeError(t, w).Message)
}

type statsStub struct{}

func (statsStub) Collect(context.Context) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{
		Users:         map[string]int64{"student": 12},
		Courses:       3,
		ActiveCourses: 2,
		Submissions:   40,
	}, nil
}

func TestAdminStats(t *testing.T) {
	ctrl := NewAdminController(nil, services.NewStatsService(statsStub{}))
	router := gin.New()
	router.GET("/admin/stats", ctrl.Stats)

	w := serve(router, http.MethodGet, "/admin/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Data.Users["student"])
	assert.Equal(t, int64(2), resp.Data.ActiveCourses)
	assert.Equal(t, int64(40), resp.Data.Submissions)
}
