package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/validation"
)

type bindTarget struct {
	Phone    string `json:"phone" binding:"required,phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func TestHandleBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterBindingValidators())

	r := gin.New()
	r.POST("/bind", func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name      string
		body      string
		wantCode  dto.ErrorCode
		wantField string
	}{
		{"missing phone", `{"password":"secret1"}`, dto.ErrorCodeValidationFailed, "phone"},
		{"short password", `{"phone":"01012345678","password":"abc"}`, dto.ErrorCodeValidationFailed, "password"},
		{"wrong type", `{"phone":123,"password":"secret1"}`, dto.ErrorCodeValidationFailed, "phone"},
		{"broken json", `{"phone":`, dto.ErrorCodeBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantField, resp.Error.Field)
		})
	}
}
