package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"go.uber.org/zap"
)

// GradingEngine scores a submitted interview. Grade never returns an error:
// when both models fail or nothing parses it degrades to a deterministic
// zero-score result with an explanatory summary.
type GradingEngine struct {
	model         TextModel
	log           *zap.SugaredLogger
	primaryModel  string
	fallbackModel string
	maxAttempts   int
	retryDelay    time.Duration
}

func NewGradingEngine(tm TextModel, log *zap.Logger, primaryModel, fallbackModel string, maxAttempts int, retryDelay time.Duration) *GradingEngine {
	return &GradingEngine{
		model:         tm,
		log:           log.Sugar(),
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		maxAttempts:   maxAttempts,
		retryDelay:    retryDelay,
	}
}

type gradingResult struct {
	Score    int             `json:"score"`
	Feedback *model.Feedback `json:"feedback"`
}

const gradingPromptTmpl = `You are grading a technical interview for the field %q at %q level.

Here are all questions and candidate responses:
%s

IMPORTANT OUTPUT RULES:
1. Return ONLY valid JSON.
2. Do NOT use markdown code blocks.
3. The output must start with '{' and end with '}'.

Structure:
{
  "score": number (0-100),
  "feedback": {
    "feedback": "string",
    "strengths": ["..."],
    "weaknesses": ["..."],
    "suggestions": ["..."]
  }
}`

// Grade evaluates normalized answers against the interview's questions.
func (e *GradingEngine) Grade(ctx context.Context, iv *model.Interview, answers []model.Answer) (int, *model.Feedback) {
	prompt := fmt.Sprintf(gradingPromptTmpl, iv.Field, iv.Difficulty, buildQABlock(iv.Questions, answers))

	raw, err := generateWithRetry(ctx, e.model, e.log, e.primaryModel, prompt, e.maxAttempts, e.retryDelay)
	if err != nil {
		e.log.Warnw("primary grading model failed, trying fallback model", "interview_id", iv.ID, "model", e.primaryModel, "err", err)
		raw, err = generateWithRetry(ctx, e.model, e.log, e.fallbackModel, prompt, e.maxAttempts, e.retryDelay)
	}
	if err != nil {
		e.log.Errorw("all grading models failed, returning degraded result", "interview_id", iv.ID, "err", err)
		return degradedResult()
	}

	result, ok := parseGradingResult(raw)
	if !ok {
		e.log.Errorw("grading response unparseable, returning degraded result", "interview_id", iv.ID, "raw", raw)
		return degradedResult()
	}
	return result.Score, result.Feedback
}

// buildQABlock renders one block per question in order, substituting a
// placeholder for empty answers so the model grades absence explicitly.
func buildQABlock(questions []model.Question, answers []model.Answer) string {
	byOrder := make(map[int]string, len(answers))
	for _, a := range answers {
		byOrder[a.Order] = a.AnswerText
	}

	var sb strings.Builder
	for _, q := range questions {
		text := byOrder[q.Order]
		if text == "" {
			text = "(no answer)"
		}
		fmt.Fprintf(&sb, "Q%d: %s\nA: %s\n\n", q.Order, q.Question, text)
	}
	return sb.String()
}

func parseGradingResult(raw string) (*gradingResult, bool) {
	span, ok := ExtractJSON(raw)
	if !ok {
		return nil, false
	}
	var result gradingResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, false
	}
	if result.Feedback == nil {
		return nil, false
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	if result.Feedback.Strengths == nil {
		result.Feedback.Strengths = []string{}
	}
	if result.Feedback.Weaknesses == nil {
		result.Feedback.Weaknesses = []string{}
	}
	if result.Feedback.Suggestions == nil {
		result.Feedback.Suggestions = []string{}
	}
	return &result, true
}

func degradedResult() (int, *model.Feedback) {
	return 0, &model.Feedback{
		Feedback:    "A technical issue occurred during AI evaluation (model overload or malformed response). The interview was saved but could not be scored.",
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []string{},
	}
}
