package interview

import (
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/config"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
)

// TimeAllocator converts a difficulty tier into a total time budget and splits
// it across questions.
type TimeAllocator struct {
	cfg config.InterviewConfig
}

func NewTimeAllocator(cfg config.InterviewConfig) *TimeAllocator {
	return &TimeAllocator{cfg: cfg}
}

// TotalSeconds returns the budget for a difficulty. An unrecognized difficulty
// deliberately falls back to the junior budget rather than erroring.
func (a *TimeAllocator) TotalSeconds(difficulty model.Difficulty) int {
	switch difficulty {
	case model.DifficultyJunior:
		return a.cfg.JuniorSeconds
	case model.DifficultyMid:
		return a.cfg.MidSeconds
	case model.DifficultySenior:
		return a.cfg.SeniorSeconds
	default:
		return a.cfg.JuniorSeconds
	}
}

// Allocate distributes the difficulty budget over count questions. Every slot
// gets total/count; the last slot absorbs the integer-division remainder so the
// slots always sum to total exactly.
func (a *TimeAllocator) Allocate(difficulty model.Difficulty, count int) (total int, per []int) {
	total = a.TotalSeconds(difficulty)
	if count <= 0 {
		return total, nil
	}
	base := total / count
	per = make([]int, count)
	for i := range per {
		per[i] = base
	}
	per[count-1] += total - base*count
	return total, per
}
