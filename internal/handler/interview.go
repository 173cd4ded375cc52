package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/interview"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/response"
)

func (h *Handler) StartInterview(c *gin.Context) {
	var req model.StartInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := h.GetUserIDFromContext(c)
	if userID == "" {
		response.Unauthorized(c, "")
		return
	}

	iv, err := h.Interviews.Start(c.Request.Context(), userID, req.Field, req.Difficulty)
	if err != nil {
		h.interviewError(c, err)
		return
	}

	response.Created(c, model.StartInterviewRes{
		InterviewID:      iv.ID,
		Questions:        iv.Questions,
		TotalTimeSeconds: iv.TotalTimeSeconds,
	})
}

func (h *Handler) SubmitInterview(c *gin.Context) {
	var req model.SubmitInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := h.GetUserIDFromContext(c)
	if userID == "" {
		response.Unauthorized(c, "")
		return
	}

	res, err := h.Interviews.Submit(c.Request.Context(), c.Param("id"), userID, req.Answers)
	if err != nil {
		h.interviewError(c, err)
		return
	}

	response.OK(c, res)
}

func (h *Handler) AbandonInterview(c *gin.Context) {
	userID := h.GetUserIDFromContext(c)
	if userID == "" {
		response.Unauthorized(c, "")
		return
	}

	if err := h.Interviews.Abandon(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.interviewError(c, err)
		return
	}

	response.Message(c, "interview abandoned successfully")
}

func (h *Handler) GetInterview(c *gin.Context) {
	userID := h.GetUserIDFromContext(c)
	if userID == "" {
		response.Unauthorized(c, "")
		return
	}

	iv, err := h.Interviews.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.interviewError(c, err)
		return
	}

	response.OK(c, iv)
}

func (h *Handler) ListMyInterviews(c *gin.Context) {
	userID := h.GetUserIDFromContext(c)
	if userID == "" {
		response.Unauthorized(c, "")
		return
	}

	list, err := h.Interviews.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.interviewError(c, err)
		return
	}

	response.OK(c, list)
}

// interviewError maps lifecycle errors onto HTTP responses. Anything outside
// the taxonomy is a persistence-class failure and stays opaque to the client.
func (h *Handler) interviewError(c *gin.Context, err error) {
	var ve *interview.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Error())
	case errors.Is(err, interview.ErrNotFound):
		response.NotFound(c, "interview not found")
	case errors.Is(err, interview.ErrForbidden):
		response.Forbidden(c, "you do not have access to this interview")
	case errors.Is(err, interview.ErrInvalidState):
		response.Conflict(c, "interview is not in a state that allows this operation")
	default:
		h.Logger.Sugar().Errorw("interview operation failed", "path", c.Request.URL.Path, "err", err)
		response.InternalError(c, "")
	}
}
