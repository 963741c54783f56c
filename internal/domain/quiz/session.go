// Package quiz tracks answers to a quiz block and scores them.
package quiz

import (
	"math"
	"sync"

	"pesantren/internal/domain/entity"
)

// Band groups scores for feedback copy. It never affects correctness.
type Band string

const (
	BandHigh Band = "high"
	BandMid  Band = "mid"
	BandLow  Band = "low"
)

const (
	highBandThreshold = 80
	midBandThreshold  = 60
)

// BandFor maps a percentage score to its feedback band.
func BandFor(score int) Band {
	switch {
	case score >= highBandThreshold:
		return BandHigh
	case score >= midBandThreshold:
		return BandMid
	default:
		return BandLow
	}
}

// Result is the outcome of a quiz session.
type Result struct {
	Score      int   `json:"score"`
	Band       Band  `json:"band"`
	Correct    int   `json:"correct"`
	Total      int   `json:"total"`
	Answered   int   `json:"answered"`
	Selections []int `json:"selections"` // Option index per question, -1 when unanswered.
}

// Session records one selection per question. The first selection wins.
type Session struct {
	mu         sync.Mutex
	quiz       *entity.QuizBlock
	selections map[int]int
}

// NewSession starts an empty session for quiz.
func NewSession(quiz *entity.QuizBlock) *Session {
	return &Session{
		quiz:       quiz,
		selections: make(map[int]int),
	}
}

// Select records option for question. It returns false, leaving the session unchanged,
// when the question is already answered or either index does not exist.
func (s *Session) Select(question, option int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if question < 0 || question >= len(s.quiz.Questions) {
		return false
	}
	if option < 0 || option >= len(s.quiz.Questions[question].Options) {
		return false
	}
	if _, answered := s.selections[question]; answered {
		return false
	}
	s.selections[question] = option

	return true
}

// Selection returns the recorded option for question.
func (s *Session) Selection(question int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	option, ok := s.selections[question]

	return option, ok
}

// Result scores the session against the aggregate question count. Questions without
// options still count toward the total and can never be answered correctly.
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.quiz.Questions)
	result := Result{
		Total:      total,
		Answered:   len(s.selections),
		Selections: make([]int, total),
	}

	for i, question := range s.quiz.Questions {
		option, ok := s.selections[i]
		if !ok {
			result.Selections[i] = -1

			continue
		}
		result.Selections[i] = option
		if question.Options[option].Correct {
			result.Correct++
		}
	}

	result.Score = Score(result.Correct, total)
	result.Band = BandFor(result.Score)

	return result
}

// Score returns round(100 * correct / total), or 0 for an empty quiz.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(correct) / float64(total)))
}
