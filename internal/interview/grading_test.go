package interview

import (
	"context"
	"testing"

	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrader(tm TextModel) *GradingEngine {
	return NewGradingEngine(tm, testLogger(), "gemini-2.5-flash", "gemini-2.0-flash", 3, 0)
}

func gradedInterview() *model.Interview {
	return &model.Interview{
		ID:         "iv-1",
		Field:      "Backend",
		Difficulty: model.DifficultyMid,
		Questions: []model.Question{
			{Order: 1, Question: "What is a goroutine?"},
			{Order: 2, Question: "Explain channels."},
		},
	}
}

func goodGradingJSON() string {
	return `{"score":80,"feedback":{"feedback":"Solid answers overall.","strengths":["clear explanations"],"weaknesses":["shallow on channels"],"suggestions":["read the memory model"]}}`
}

func TestGradeParsesFencedResponseWithProse(t *testing.T) {
	m := &scriptedModel{script: []modelOutcome{
		{text: "Sure! ```json\n" + goodGradingJSON() + "\n``` thanks"},
	}}
	e := newTestGrader(m)

	score, fb := e.Grade(context.Background(), gradedInterview(), []model.Answer{
		{Order: 1, AnswerText: "a lightweight thread"},
		{Order: 2, AnswerText: "typed conduits"},
	})

	assert.Equal(t, 80, score)
	require.NotNil(t, fb)
	assert.Equal(t, "Solid answers overall.", fb.Feedback)
	assert.Equal(t, []string{"clear explanations"}, fb.Strengths)
}

func TestGradeFallsBackToSecondaryModel(t *testing.T) {
	m := &scriptedModel{script: []modelOutcome{
		{err: overloaded()},
		{err: overloaded()},
		{err: overloaded()},
		{text: goodGradingJSON()},
	}}
	e := newTestGrader(m)

	score, fb := e.Grade(context.Background(), gradedInterview(), nil)

	require.Equal(t, 4, m.callCount())
	assert.Equal(t, "gemini-2.5-flash", m.modelForCall(0))
	assert.Equal(t, "gemini-2.5-flash", m.modelForCall(2))
	assert.Equal(t, "gemini-2.0-flash", m.modelForCall(3))
	assert.Equal(t, 80, score, "secondary model result is used, not the degraded default")
	require.NotNil(t, fb)
	assert.NotEmpty(t, fb.Strengths)
}

func TestGradeDegradesWhenBothModelsFail(t *testing.T) {
	m := &scriptedModel{exhaust: modelOutcome{err: overloaded()}}
	e := newTestGrader(m)

	score, fb := e.Grade(context.Background(), gradedInterview(), nil)

	assert.Equal(t, 6, m.callCount(), "three attempts per model, two models")
	assert.Equal(t, 0, score)
	require.NotNil(t, fb)
	assert.NotEmpty(t, fb.Feedback)
	assert.Empty(t, fb.Strengths)
	assert.Empty(t, fb.Weaknesses)
	assert.Empty(t, fb.Suggestions)
}

func TestGradeDegradesOnUnparseableResponse(t *testing.T) {
	m := &scriptedModel{script: []modelOutcome{
		{text: "I think the candidate did quite well, maybe a 7/10?"},
	}}
	e := newTestGrader(m)

	score, fb := e.Grade(context.Background(), gradedInterview(), nil)

	assert.Equal(t, 0, score)
	require.NotNil(t, fb)
	assert.Empty(t, fb.Strengths)
}

func TestGradeFatalPrimaryErrorGoesStraightToFallbackModel(t *testing.T) {
	m := &scriptedModel{script: []modelOutcome{
		{err: badRequest()},
		{text: goodGradingJSON()},
	}}
	e := newTestGrader(m)

	score, _ := e.Grade(context.Background(), gradedInterview(), nil)

	assert.Equal(t, 2, m.callCount())
	assert.Equal(t, "gemini-2.0-flash", m.modelForCall(1))
	assert.Equal(t, 80, score)
}

func TestGradeClampsScore(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{name: "above range", json: `{"score":130,"feedback":{"feedback":"x"}}`, want: 100},
		{name: "below range", json: `{"score":-5,"feedback":{"feedback":"x"}}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &scriptedModel{script: []modelOutcome{{text: tt.json}}}
			e := newTestGrader(m)
			score, fb := e.Grade(context.Background(), gradedInterview(), nil)
			assert.Equal(t, tt.want, score)
			require.NotNil(t, fb)
		})
	}
}

func TestGradePromptRendersNoAnswerPlaceholder(t *testing.T) {
	m := &scriptedModel{script: []modelOutcome{{text: goodGradingJSON()}}}
	e := newTestGrader(m)

	e.Grade(context.Background(), gradedInterview(), []model.Answer{
		{Order: 1, AnswerText: "a lightweight thread"},
		{Order: 2, AnswerText: ""},
	})

	prompt := m.calls[0].prompt
	assert.Contains(t, prompt, "Q1: What is a goroutine?\nA: a lightweight thread")
	assert.Contains(t, prompt, "Q2: Explain channels.\nA: (no answer)")
}

func TestBuildQABlockOrdersByQuestion(t *testing.T) {
	questions := []model.Question{
		{Order: 1, Question: "first"},
		{Order: 2, Question: "second"},
	}
	answers := []model.Answer{
		{Order: 2, AnswerText: "B"},
		{Order: 1, AnswerText: "A"},
	}

	block := buildQABlock(questions, answers)
	assert.Equal(t, "Q1: first\nA: A\n\nQ2: second\nA: B\n\n", block)
}
