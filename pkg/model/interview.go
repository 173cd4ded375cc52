package model

import "time"

type Difficulty string

const (
	DifficultyJunior Difficulty = "junior"
	DifficultyMid    Difficulty = "mid"
	DifficultySenior Difficulty = "senior"
)

type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "in_progress"
	StatusSubmitted  InterviewStatus = "submitted"
	StatusAbandoned  InterviewStatus = "abandoned"
)

// Interview is the central record: created in_progress by start, mutated exactly
// once by submit or abandon, never deleted by the service.
type Interview struct {
	ID               string          `json:"interview_id" bson:"_id"`
	UserID           string          `json:"user_id" bson:"user_id"`
	Field            string          `json:"field" bson:"field"`
	Difficulty       Difficulty      `json:"difficulty" bson:"difficulty"`
	Status           InterviewStatus `json:"status" bson:"status,omitempty"`
	Questions        []Question      `json:"questions" bson:"questions"`
	Answers          []Answer        `json:"answers" bson:"answers"`
	Score            int             `json:"score" bson:"score"`
	Feedback         *Feedback       `json:"feedback" bson:"feedback,omitempty"`
	TotalTimeSeconds int             `json:"total_time_seconds" bson:"total_time_seconds"`
	CreatedAt        time.Time       `json:"created_at" bson:"created_at"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty" bson:"submitted_at,omitempty"`
	AbandonedAt      *time.Time      `json:"abandoned_at,omitempty" bson:"abandoned_at,omitempty"`
}

// Question order is 1-based and contiguous within an interview. TimeLimitSec values
// sum exactly to the interview's TotalTimeSeconds.
type Question struct {
	Order        int    `json:"order" bson:"order"`
	Question     string `json:"question" bson:"question"`
	TimeLimitSec int    `json:"time_limit_sec" bson:"time_limit_sec"`
}

// Answer correlates to a Question by Order value, not by position. Empty text
// means no response.
type Answer struct {
	Order      int    `json:"order" bson:"order"`
	AnswerText string `json:"answer_text" bson:"answer_text"`
}

// Feedback is the structured grading output. Nil until the interview is graded.
type Feedback struct {
	Feedback    string   `json:"feedback" bson:"feedback"`
	Strengths   []string `json:"strengths" bson:"strengths"`
	Weaknesses  []string `json:"weaknesses" bson:"weaknesses"`
	Suggestions []string `json:"suggestions" bson:"suggestions"`
}

// RawAnswer is a client-submitted answer before normalization. Clients have
// shipped both answer_text and answer as the text field, and some omit order.
type RawAnswer struct {
	Order      *int   `json:"order"`
	AnswerText string `json:"answer_text"`
	Answer     string `json:"answer"`
}

type StartInterviewReq struct {
	Field      string `json:"field" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

type StartInterviewRes struct {
	InterviewID      string     `json:"interview_id"`
	Questions        []Question `json:"questions"`
	TotalTimeSeconds int        `json:"total_time_seconds"`
}

type SubmitInterviewReq struct {
	Answers []RawAnswer `json:"answers"`
}

type SubmitInterviewRes struct {
	Score    int       `json:"score"`
	Feedback *Feedback `json:"feedback"`
}

// InterviewSummary is the listMine projection: completed interviews only.
type InterviewSummary struct {
	ID         string          `json:"interview_id" bson:"_id"`
	Field      string          `json:"field" bson:"field"`
	Difficulty Difficulty      `json:"difficulty" bson:"difficulty"`
	Score      int             `json:"score" bson:"score"`
	Status     InterviewStatus `json:"status" bson:"status,omitempty"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
}
