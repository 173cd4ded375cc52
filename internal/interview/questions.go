package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"go.uber.org/zap"
)

// QuestionGenerator produces the question set for a field/difficulty pair. The
// model path can fail in every way an LLM can fail; the template path cannot
// fail at all, so Generate never returns an error.
type QuestionGenerator struct {
	model         TextModel
	log           *zap.SugaredLogger
	modelName     string
	questionCount int
	maxAttempts   int
	retryDelay    time.Duration
}

func NewQuestionGenerator(tm TextModel, log *zap.Logger, modelName string, questionCount, maxAttempts int, retryDelay time.Duration) *QuestionGenerator {
	return &QuestionGenerator{
		model:         tm,
		log:           log.Sugar(),
		modelName:     modelName,
		questionCount: questionCount,
		maxAttempts:   maxAttempts,
		retryDelay:    retryDelay,
	}
}

type generatedQuestion struct {
	Order    int    `json:"order"`
	Question string `json:"question"`
}

type questionsPayload struct {
	Questions []generatedQuestion `json:"questions"`
}

const questionPromptTmpl = `You are an experienced technical interviewer.

Field: %q
Difficulty: %q

Generate exactly %d classic open-ended technical interview questions.
- All questions must be open-ended and require explanation/examples.
- Do NOT generate multiple-choice questions.
- Do NOT generate coding-only questions.

IMPORTANT OUTPUT RULES:
1. Return ONLY valid JSON.
2. Do NOT use markdown code blocks.
3. Do NOT include any intro or outro text.
4. The output must start with '{' and end with '}'.

Structure:
{
  "questions": [
    { "order": 1, "question": "string" }
  ]
}`

// Generate returns questions ordered 1..N. Text only; time limits are attached
// by the lifecycle after allocation.
func (g *QuestionGenerator) Generate(ctx context.Context, field string, difficulty model.Difficulty) []model.Question {
	prompt := fmt.Sprintf(questionPromptTmpl, field, difficulty, g.questionCount)

	raw, err := generateWithRetry(ctx, g.model, g.log, g.modelName, prompt, g.maxAttempts, g.retryDelay)
	if err != nil {
		g.log.Warnw("question generation failed, using template fallback", "field", field, "difficulty", difficulty, "err", err)
		return g.fallback(field, difficulty)
	}

	parsed := parseQuestions(raw)
	if len(parsed) == 0 {
		g.log.Warnw("question generation returned no parseable questions, using template fallback", "field", field, "difficulty", difficulty)
		return g.fallback(field, difficulty)
	}

	// Orders are reassigned positionally: a contiguous 1..N sequence is an
	// invariant of the record, and models occasionally number creatively.
	out := make([]model.Question, len(parsed))
	for i, q := range parsed {
		out[i] = model.Question{Order: i + 1, Question: q.Question}
	}
	return out
}

func parseQuestions(raw string) []generatedQuestion {
	span, ok := ExtractJSON(raw)
	if !ok {
		return nil
	}
	var payload questionsPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil
	}
	out := payload.Questions[:0]
	for _, q := range payload.Questions {
		if q.Question != "" {
			out = append(out, q)
		}
	}
	return out
}

// fallback is the deterministic template set used when the model is unavailable
// or unparseable. Parameterized only by text substitution.
func (g *QuestionGenerator) fallback(field string, difficulty model.Difficulty) []model.Question {
	templates := []string{
		"Explain core concepts in %s and give real examples.",
		"Describe a challenging problem you solved in %s. What was your approach?",
		"How do you debug and troubleshoot issues in %s? Walk through your process.",
		"What are common performance pitfalls in %s and how do you avoid them?",
		"Explain best practices and architecture decisions for a " + string(difficulty) + "-level role in %s.",
	}
	out := make([]model.Question, len(templates))
	for i, t := range templates {
		out[i] = model.Question{Order: i + 1, Question: fmt.Sprintf(t, field)}
	}
	return out
}
