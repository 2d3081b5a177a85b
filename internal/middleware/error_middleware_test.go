package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
)

func recordAPIError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return w.Code, &body
}

func TestHandleAPIError(t *testing.T) {
	t.Run("malformed SIN maps to bad request", func(t *testing.T) {
		code, body := recordAPIError(t, apperrors.ErrInvalidSIN)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
		assert.Equal(t, dto.ErrorSeverityWarning, body.Error.Severity)
	})

	t.Run("workflow violation maps to conflict", func(t *testing.T) {
		code, body := recordAPIError(t, apperrors.NewWorkflowError("leave was already decided"))

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, dto.ErrorCodeWorkflowViolation, body.Error.Code)
		assert.Equal(t, "leave was already decided", body.Error.Message)
	})

	t.Run("conflict maps to already-exists code", func(t *testing.T) {
		code, body := recordAPIError(t, apperrors.NewConflictError("student already occupies this room"))

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	})

	t.Run("unexpected errors map to critical internal error", func(t *testing.T) {
		code, body := recordAPIError(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
		assert.Equal(t, dto.ErrorSeverityCritical, body.Error.Severity)
	})
}
