package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"go.uber.org/zap"
)

// InterviewService is the lifecycle surface the handlers call. Satisfied by
// *interview.Service; faked in handler tests.
type InterviewService interface {
	Start(ctx context.Context, userID, field, difficulty string) (*model.Interview, error)
	Submit(ctx context.Context, id, userID string, raw []model.RawAnswer) (*model.SubmitInterviewRes, error)
	Abandon(ctx context.Context, id, userID string) error
	GetByID(ctx context.Context, id, userID string) (*model.Interview, error)
	ListMine(ctx context.Context, userID string) ([]model.InterviewSummary, error)
}

type Handler struct {
	Logger     *zap.Logger
	Interviews InterviewService
}

// GetUserIDFromContext retrieves the verified user id set by the auth middleware
func (h *Handler) GetUserIDFromContext(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
