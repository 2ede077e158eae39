package response_test

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"job-dashboard/pkg/response"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success with result",
			write:      func(c *gin.Context) { response.JSON(c, http.StatusOK, "ok", []int{1, 2}) },
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"ok","result":[1,2]}`,
		},
		{
			name:       "failure with detail",
			write:      func(c *gin.Context) { response.Abort(c, http.StatusConflict, "stale", "Conflict") },
			wantStatus: http.StatusConflict,
			wantBody:   `{"success":false,"message":"stale","error":"Conflict"}`,
		},
		{
			name:       "failure without detail",
			write:      func(c *gin.Context) { response.Abort(c, http.StatusInternalServerError, "Internal Server Error", nil) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestSuccess_KeepsZeroResult(t *testing.T) {
	raw, err := json.Marshal(response.Success("ok", 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"ok","result":0}`, string(raw))
}
