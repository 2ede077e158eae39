package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"job-dashboard/entities"
	"job-dashboard/handler"
	"job-dashboard/pkg/response"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubLookupService struct {
	jobTypes []*entities.JobType
	err      error
}

func (s stubLookupService) Users(context.Context) ([]*entities.User, error) {
	return nil, s.err
}

func (s stubLookupService) Departments(context.Context) ([]*entities.Department, error) {
	return nil, s.err
}

func (s stubLookupService) JobTitles(context.Context) ([]*entities.JobTitle, error) {
	return nil, s.err
}

func (s stubLookupService) JobTypes(context.Context) ([]*entities.JobType, error) {
	return s.jobTypes, s.err
}

func (s stubLookupService) PaymentChannels(context.Context) ([]*entities.PaymentChannel, error) {
	return nil, s.err
}

func TestListJobTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	failure := errors.New("connection refused")

	tests := []struct {
		name     string
		lookups  stubLookupService
		wantErr  error
		wantCode int
	}{
		{
			name:     "lists",
			lookups:  stubLookupService{jobTypes: []*entities.JobType{{ID: 1, Code: "AUDIT", Name: "Audit"}}},
			wantCode: http.StatusOK,
		},
		{
			name:    "error is left to the error middleware",
			lookups: stubLookupService{err: failure},
			wantErr: failure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/job-types", nil)

			h := handler.NewHTTPHandler(handler.ServiceDependencies{LookupService: tt.lookups})
			h.ListJobTypes(c)

			if tt.wantErr != nil {
				require.Len(t, c.Errors, 1)
				assert.ErrorIs(t, c.Errors.Last().Err, tt.wantErr)
				assert.False(t, c.Writer.Written())
				return
			}
			assert.Equal(t, tt.wantCode, w.Code)
			var env response.Result[[]entities.JobType]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.True(t, env.Success)
			require.NotNil(t, env.Result)
			assert.Equal(t, "Audit", (*env.Result)[0].Name)
		})
	}
}
