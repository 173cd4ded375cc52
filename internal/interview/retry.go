package interview

import (
	"context"
	"time"

	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/gemini"
	"go.uber.org/zap"
)

// TextModel is the generative capability both the question generator and the
// grading engine depend on. gemini.Client is the real implementation; tests use
// a deterministic fake.
type TextModel interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// generateWithRetry runs one logical model call: up to maxAttempts tries,
// sleeping delay between them, but only while the failure is overload-class.
// Non-transient errors abort immediately.
func generateWithRetry(ctx context.Context, tm TextModel, log *zap.SugaredLogger, model, prompt string, maxAttempts int, delay time.Duration) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := tm.Generate(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !gemini.IsTransient(err) || attempt == maxAttempts {
			return "", lastErr
		}
		log.Warnw("model overloaded, retrying", "model", model, "attempt", attempt, "max_attempts", maxAttempts, "delay", delay)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
	return "", lastErr
}
