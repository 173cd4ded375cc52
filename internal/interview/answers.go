package interview

import (
	"sort"

	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
)

// NormalizeAnswers maps heterogeneous client answer shapes onto exactly one
// Answer per question order.
//
// Order resolution: the raw entry's own order when present, else the question
// at the same position. Text resolution: answer_text first, then the legacy
// answer field, else empty. Questions with no submission are backfilled with an
// explicit empty-text Answer so the one-answer-per-order invariant holds
// structurally instead of being re-derived at grading time.
func NormalizeAnswers(questions []model.Question, raw []model.RawAnswer) []model.Answer {
	byOrder := make(map[int]model.Answer, len(questions))

	for i, ra := range raw {
		order := 0
		if ra.Order != nil {
			order = *ra.Order
		} else if i < len(questions) {
			order = questions[i].Order
		} else {
			order = i + 1
		}

		text := ra.AnswerText
		if text == "" {
			text = ra.Answer
		}

		byOrder[order] = model.Answer{Order: order, AnswerText: text}
	}

	out := make([]model.Answer, 0, len(questions))
	for _, q := range questions {
		if a, ok := byOrder[q.Order]; ok {
			out = append(out, a)
			continue
		}
		out = append(out, model.Answer{Order: q.Order, AnswerText: ""})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
