package interview

import (
	"context"
	"net/http"
	"sync"

	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/gemini"
	"go.uber.org/zap"
)

// scriptedModel replays a fixed sequence of outcomes and records every call in
// arrival order, across model names, so cross-model fallback order can be
// asserted.
type scriptedModel struct {
	mu      sync.Mutex
	script  []modelOutcome
	calls   []modelCall
	exhaust modelOutcome
}

type modelOutcome struct {
	text string
	err  error
}

type modelCall struct {
	model  string
	prompt string
}

func (m *scriptedModel) Generate(_ context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, modelCall{model: model, prompt: prompt})
	if len(m.script) == 0 {
		return m.exhaust.text, m.exhaust.err
	}
	out := m.script[0]
	m.script = m.script[1:]
	return out.text, out.err
}

func (m *scriptedModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *scriptedModel) modelForCall(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i].model
}

func overloaded() error {
	return &gemini.APIError{StatusCode: http.StatusServiceUnavailable, Body: "model overloaded"}
}

func rateLimited() error {
	return &gemini.APIError{StatusCode: http.StatusTooManyRequests, Body: "quota exceeded"}
}

func badRequest() error {
	return &gemini.APIError{StatusCode: http.StatusBadRequest, Body: "invalid prompt"}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
