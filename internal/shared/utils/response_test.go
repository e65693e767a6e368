package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantDetails string
	}{
		{
			name:       "not found",
			err:        errors.NewNotFoundError("batch not found"),
			wantStatus: http.StatusNotFound,
			wantType:   "not_found",
		},
		{
			name:        "conflict keeps details",
			err:         errors.NewConflictError("batch is referenced", "2 lines"),
			wantStatus:  http.StatusConflict,
			wantType:    "conflict",
			wantDetails: "2 lines",
		},
		{
			name:        "failed step of a save",
			err:         errors.WrapStep("insert_lines", stderrors.New("duplicate key")),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "internal_error",
			wantDetails: "failed step: insert_lines",
		},
		{
			name:       "plain error hides its text",
			err:        stderrors.New("dial tcp: refused"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
			assert.NotContains(t, resp.Error.Message, "dial tcp")
		})
	}
}
