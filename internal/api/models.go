package api

import (
	"time"

	"github.com/aldirar/mufradat-api/internal/domain"
	"github.com/aldirar/mufradat-api/internal/service"
)

// AttemptRequest is the request body for recording an answer attempt.
type AttemptRequest struct {
	WordID      string `json:"word_id"      validate:"required"`
	IsCorrect   bool   `json:"is_correct"`
	UserAnswer  string `json:"user_answer"`
	MistakeType string `json:"mistake_type" validate:"omitempty,oneof=phonetic semantic orthographic grammatical unknown"`
	SessionHour *int   `json:"session_hour" validate:"omitempty,min=0,max=23"`
}

// AttemptResponse is the combined outcome of one recorded attempt.
type AttemptResponse struct {
	MasteryLevel   int    `json:"mastery_level"`
	MasteryName    string `json:"mastery_name"`
	IsLearned      bool   `json:"is_learned"`
	XPGain         int    `json:"xp_gain"`
	MistakeType    string `json:"mistake_type,omitempty"`
	ReviewMastered bool   `json:"review_mastered"`
	CurrentStreak  int    `json:"current_streak"`
}

// DueReviewsResponse lists the word ids due for review, easiest first.
type DueReviewsResponse struct {
	WordIDs []string `json:"word_ids"`
	Count   int      `json:"count"`
}

// LessonItemResponse is one entry of a composed daily lesson.
type LessonItemResponse struct {
	Word           *domain.Word `json:"word"`
	Context        string       `json:"context,omitempty"`
	ReviewPriority int          `json:"review_priority"`
}

// LessonResponse is a composed daily lesson.
type LessonResponse struct {
	PhaseID int                   `json:"phase_id"`
	Items   []*LessonItemResponse `json:"items"`
}

// PredictionResponse scores a word's expected difficulty for a learner.
type PredictionResponse struct {
	WordID  string   `json:"word_id"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// NotificationResponse is one pending learner notification.
type NotificationResponse struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

func attemptToResponse(result *service.AttemptResult) *AttemptResponse {
	return &AttemptResponse{
		MasteryLevel:   int(result.MasteryLevel),
		MasteryName:    result.MasteryLevel.String(),
		IsLearned:      result.IsLearned,
		XPGain:         result.XPGain,
		MistakeType:    string(result.MistakeType),
		ReviewMastered: result.ReviewMastered,
		CurrentStreak:  result.CurrentStreak,
	}
}

func lessonToResponse(phaseID int, items []*service.LessonItem) *LessonResponse {
	out := &LessonResponse{
		PhaseID: phaseID,
		Items:   make([]*LessonItemResponse, len(items)),
	}
	for i, item := range items {
		out.Items[i] = &LessonItemResponse{
			Word:           item.Word,
			Context:        item.Context,
			ReviewPriority: item.ReviewPriority,
		}
	}
	return out
}

func notificationsToResponse(notifications []*domain.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = &NotificationResponse{
			ID:            n.ID.String(),
			Message:       n.Message,
			Type:          string(n.Type),
			ScheduledTime: n.ScheduledTime,
		}
	}
	return out
}
