// Package assessment holds the five question personality quiz and reduces a
// complete set of answers to a personality score in [0, 1].
package assessment

import (
	"errors"
	"fmt"
	"math"
)

type AnswerOption struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type Question struct {
	Position int            `json:"position"`
	Prompt   string         `json:"prompt"`
	Answers  []AnswerOption `json:"answers"`
}

// Answers maps a question position (1-based) to the weight of the chosen option.
type Answers map[int]float64

var (
	ErrIncomplete       = errors.New("assessment incomplete")
	ErrUnknownQuestion  = errors.New("unknown question position")
	ErrWeightOutOfRange = errors.New("answer weight outside [0, 1]")
)

// Questions returns a copy of the question bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(bank))
	for i, q := range bank {
		answers := make([]AnswerOption, len(q.Answers))
		copy(answers, q.Answers)
		q.Answers = answers
		out[i] = q
	}
	return out
}

func QuestionCount() int { return len(bank) }

// ComputeScore returns the unweighted mean of the chosen weights. It refuses to
// score until every question in the bank has exactly one answer.
func ComputeScore(answers Answers) (float64, error) {
	for pos, w := range answers {
		if pos < 1 || pos > len(bank) {
			return 0, fmt.Errorf("%w: %d", ErrUnknownQuestion, pos)
		}
		if math.IsNaN(w) || w < 0 || w > 1 {
			return 0, fmt.Errorf("%w: question %d weight %v", ErrWeightOutOfRange, pos, w)
		}
	}
	sum := 0.0
	for _, q := range bank {
		w, ok := answers[q.Position]
		if !ok {
			return 0, fmt.Errorf("%w: question %d unanswered", ErrIncomplete, q.Position)
		}
		sum += w
	}
	return sum / float64(len(bank)), nil
}
