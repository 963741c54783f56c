package usecase

import (
	"context"

	"pesantren/internal/domain/entity"
	"pesantren/internal/domain/quiz"
)

// RenderedBlock is one lesson block prepared for display.
type RenderedBlock struct {
	Index   int              `json:"index"`
	Kind    entity.BlockKind `json:"kind"`
	Content any              `json:"content"`
}

// VideoView renders a video block.
type VideoView struct {
	URL             string `json:"url"`
	Caption         string `json:"caption,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// QuizView renders a quiz without revealing correct options.
type QuizView struct {
	Title     string             `json:"title"`
	Questions []QuizQuestionView `json:"questions"`
}

// QuizQuestionView is one question of a rendered quiz.
type QuizQuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// VocabularyView renders a vocabulary list honouring display settings.
type VocabularyView struct {
	FontSize int                   `json:"font_size"`
	Entries  []VocabularyEntryView `json:"entries"`
}

// VocabularyEntryView is one rendered vocabulary row.
type VocabularyEntryView struct {
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration,omitempty"`
	Translation     string `json:"translation,omitempty"`
}

// TextView renders a text block.
type TextView struct {
	Body        string `json:"body,omitempty"`
	Arabic      string `json:"arabic,omitempty"`
	Translation string `json:"translation,omitempty"`
	FontSize    int    `json:"font_size,omitempty"`
}

// ImageView renders an image block.
type ImageView struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// LockedPreview replaces protected content when the gate denies access.
type LockedPreview struct {
	Title               string                `json:"title"`
	Excerpt             string                `json:"excerpt"`
	Reason              entity.LockReason     `json:"reason"`
	MinimumContribution int64                 `json:"minimum_contribution"`
	Currency            string                `json:"currency"`
	Presets             []entity.PresetAmount `json:"presets"`
}

// LessonView is what a lesson page renders for one actor.
type LessonView struct {
	CourseKey string                 `json:"course_key"`
	Slug      string                 `json:"slug"`
	Title     string                 `json:"title"`
	State     entity.GateState       `json:"state"`
	Display   entity.DisplaySettings `json:"display"`
	Blocks    []*RenderedBlock       `json:"blocks,omitempty"`
	Locked    *LockedPreview         `json:"locked,omitempty"`
	Notice    string                 `json:"notice,omitempty"`
}

// QuizAnswer is one answer event of a quiz attempt.
type QuizAnswer struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

// LessonUsecase defines lesson rendering and quiz scoring.
type LessonUsecase interface {
	// GetLesson resolves the gate and renders either the blocks or a locked preview.
	GetLesson(ctx context.Context, actor entity.Actor, courseKey, slug string, display entity.DisplaySettings) (*LessonView, error)

	// ScoreQuiz replays answers against the quiz block at blockIndex.
	ScoreQuiz(ctx context.Context, actor entity.Actor, courseKey, slug string, blockIndex int, answers []QuizAnswer) (*quiz.Result, error)
}
