package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/controllers"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/auth"
	"github.com/genius/elearning/internal/pkg/websocket"
)

type userTable map[int64]*models.User

func (u userTable) GetByID(_ context.Context, id int64) (*models.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

var (
	student = &models.User{ID: 1, Name: "Student", Role: models.RoleStudent}
	teacher = &models.User{ID: 2, Name: "Teacher", Role: models.RoleTeacher}
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "routes-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userTable{student.ID: student, teacher.ID: teacher}, nil)
	wsHandler := websocket.NewHandler(websocket.NewHub(zerolog.Nop()), nil, zerolog.Nop())

	c := Controllers{
		Auth:             controllers.NewAuthController(nil, zerolog.Nop()),
		User:             controllers.NewUserController(nil),
		EducationalLevel: controllers.NewEducationalLevelController(nil),
		Course:           controllers.NewCourseController(nil, nil),
		Lesson:           controllers.NewLessonController(nil),
		Exam:             controllers.NewAssessmentController(models.KindExam, nil, nil, nil),
		Assignment:       controllers.NewAssessmentController(models.KindAssignment, nil, nil, nil),
		Question:         controllers.NewQuestionController(nil),
		Subscription:     controllers.NewSubscriptionController(nil, nil),
		Notification:     controllers.NewNotificationController(nil),
		Note:             controllers.NewNoteController(nil),
		Admin:            controllers.NewAdminController(nil, nil),
	}

	router := gin.New()
	SetupRouter(router, c, authMiddleware, wsHandler)
	return router, jwtSvc
}

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /ping",
		"GET /api/v1/health",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"POST /api/v1/auth/logout",
		"GET /api/v1/educational-levels",
		"GET /api/v1/courses/:id/lessons",
		"GET /api/v1/questions",
		"GET /api/v1/exams/:id/questions",
		"POST /api/v1/exams/:id/submissions",
		"GET /api/v1/assignments/:id/results",
		"GET /api/v1/notes",
		"POST /api/v1/notes/orders",
		"GET /api/v1/notes/orders/my",
		"PUT /api/v1/notes/orders/:id/status",
		"PUT /api/v1/users/change-password",
		"POST /api/v1/subscriptions/receipt",
		"PUT /api/v1/notifications/read-all",
		"PATCH /api/v1/notifications/:id",
		"GET /api/v1/notifications/ws",
		"GET /api/v1/admin/stats",
		"POST /api/v1/admin/uploads",
		"PUT /api/v1/admin/users/:id/role",
		"DELETE /api/v1/admin/courses/:id",
		"GET /api/v1/admin/exams/:id/submissions/export",
		"GET /api/v1/admin/assignments/:id/submissions",
		"PUT /api/v1/admin/questions/:id",
		"GET /api/v1/admin/subscriptions/export",
		"PUT /api/v1/admin/subscriptions/:id/status",
		"POST /api/v1/admin/notifications",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestSetupRouter_Guards(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	tokenFor := func(u *models.User) string {
		tok, _, err := jwtSvc.GenerateToken(u)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		method string
		target string
		user   *models.User
		want   int
	}{
		{"admin area needs a token", http.MethodGet, "/api/v1/admin/stats", nil, http.StatusUnauthorized},
		{"students are not staff", http.MethodGet, "/api/v1/admin/stats", student, http.StatusForbidden},
		{"role change is admin only", http.MethodPut, "/api/v1/admin/users/1/role", teacher, http.StatusForbidden},
		{"note writes are admin only", http.MethodPost, "/api/v1/notes", teacher, http.StatusForbidden},
		{"order listing is admin only", http.MethodGet, "/api/v1/notes/orders", student, http.StatusForbidden},
		{"profile needs a token", http.MethodGet, "/api/v1/users/profile", nil, http.StatusUnauthorized},
		{"submissions need a token", http.MethodPost, "/api/v1/exams/1/submissions", nil, http.StatusUnauthorized},
		{"health is public", http.MethodGet, "/api/v1/health", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.user != nil {
				req.Header.Set("Authorization", "Bearer "+tokenFor(tt.user))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
