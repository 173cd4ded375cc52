package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/interview"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeService scripts lifecycle outcomes per operation.
type fakeService struct {
	startRes  *model.Interview
	startErr  error
	submitRes *model.SubmitInterviewRes
	submitErr error
	abandonErr error
	getRes    *model.Interview
	getErr    error
	listRes   []model.InterviewSummary
	listErr   error
}

func (f *fakeService) Start(_ context.Context, _, _, _ string) (*model.Interview, error) {
	return f.startRes, f.startErr
}

func (f *fakeService) Submit(_ context.Context, _, _ string, _ []model.RawAnswer) (*model.SubmitInterviewRes, error) {
	return f.submitRes, f.submitErr
}

func (f *fakeService) Abandon(_ context.Context, _, _ string) error {
	return f.abandonErr
}

func (f *fakeService) GetByID(_ context.Context, _, _ string) (*model.Interview, error) {
	return f.getRes, f.getErr
}

func (f *fakeService) ListMine(_ context.Context, _ string) ([]model.InterviewSummary, error) {
	return f.listRes, f.listErr
}

func newTestRouter(svc InterviewService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Logger: zap.NewNop(), Interviews: svc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.POST("/interviews", h.StartInterview)
	r.POST("/interviews/:id/submit", h.SubmitInterview)
	r.PATCH("/interviews/:id/abandon", h.AbandonInterview)
	r.GET("/interviews/:id", h.GetInterview)
	r.GET("/interviews", h.ListMyInterviews)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartInterviewHandler(t *testing.T) {
	svc := &fakeService{startRes: &model.Interview{
		ID:               "iv-1",
		Questions:        []model.Question{{Order: 1, Question: "q", TimeLimitSec: 1800}},
		TotalTimeSeconds: 1800,
	}}
	r := newTestRouter(svc, "user-1")

	w := doJSON(r, http.MethodPost, "/interviews", `{"field":"Backend","difficulty":"mid"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Success bool                     `json:"success"`
		Data    model.StartInterviewRes `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "iv-1", env.Data.InterviewID)
	assert.Equal(t, 1800, env.Data.TotalTimeSeconds)
	require.Len(t, env.Data.Questions, 1)
}

func TestStartInterviewHandlerMissingBody(t *testing.T) {
	r := newTestRouter(&fakeService{}, "user-1")
	w := doJSON(r, http.MethodPost, "/interviews", `{"field":"Backend"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartInterviewHandlerNoUser(t *testing.T) {
	r := newTestRouter(&fakeService{}, "")
	w := doJSON(r, http.MethodPost, "/interviews", `{"field":"Backend","difficulty":"mid"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitInterviewHandler(t *testing.T) {
	svc := &fakeService{submitRes: &model.SubmitInterviewRes{
		Score:    80,
		Feedback: &model.Feedback{Feedback: "solid"},
	}}
	r := newTestRouter(svc, "user-1")

	w := doJSON(r, http.MethodPost, "/interviews/iv-1/submit", `{"answers":[{"order":1,"answer_text":"hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data model.SubmitInterviewRes `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 80, env.Data.Score)
}

func TestInterviewErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: interview.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "forbidden", err: interview.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "invalid state", err: interview.ErrInvalidState, wantStatus: http.StatusConflict},
		{name: "validation", err: &interview.ValidationError{Field: "field"}, wantStatus: http.StatusBadRequest},
		{name: "persistence failure stays opaque", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{submitErr: tt.err}
			r := newTestRouter(svc, "user-1")

			w := doJSON(r, http.MethodPost, "/interviews/iv-1/submit", `{"answers":[]}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAbandonInterviewHandler(t *testing.T) {
	r := newTestRouter(&fakeService{}, "user-1")
	w := doJSON(r, http.MethodPatch, "/interviews/iv-1/abandon", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abandoned")
}

func TestAbandonInterviewHandlerConflict(t *testing.T) {
	r := newTestRouter(&fakeService{abandonErr: interview.ErrInvalidState}, "user-1")
	w := doJSON(r, http.MethodPatch, "/interviews/iv-1/abandon", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetInterviewHandler(t *testing.T) {
	svc := &fakeService{getRes: &model.Interview{ID: "iv-1", Field: "Backend"}}
	r := newTestRouter(svc, "user-1")

	w := doJSON(r, http.MethodGet, "/interviews/iv-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"iv-1"`)
}

func TestListMyInterviewsHandler(t *testing.T) {
	svc := &fakeService{listRes: []model.InterviewSummary{
		{ID: "iv-2", Field: "Backend", Score: 70, Status: model.StatusSubmitted},
	}}
	r := newTestRouter(svc, "user-1")

	w := doJSON(r, http.MethodGet, "/interviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []model.InterviewSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "iv-2", env.Data[0].ID)
}
