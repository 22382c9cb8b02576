package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/assessment"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/apierr"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

// ScoreRequest keys answers by question position ("1".."5") so it decodes
// straight from a JSON object.
type ScoreRequest struct {
	Answers map[string]float64 `json:"answers"`
}

type ScoreResult struct {
	PersonalityScore    float64   `json:"personality_score"`
	ServerScore         float64   `json:"server_score"`
	RecommendedTheme    theme.Key `json:"recommended_theme"`
	ServerTheme         string    `json:"server_theme"`
	PersonalityLabel    string    `json:"personality_label"`
	PersonalityCategory string    `json:"personality_category"`
}

type ThemeListing struct {
	Themes          []theme.Theme `json:"themes"`
	AssessmentTheme theme.Theme   `json:"assessment_theme"`
}

// AssessmentService exposes the quiz, its scoring and the theme catalog. It
// stores nothing.
type AssessmentService interface {
	Questions() []assessment.Question
	Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error)
	Themes() ThemeListing
}

type assessmentService struct {
	log     *logger.Logger
	catalog *theme.Catalog
}

func NewAssessmentService(log *logger.Logger, catalog *theme.Catalog) AssessmentService {
	if catalog == nil {
		catalog = theme.Default()
	}
	return &assessmentService{
		log:     log.With("service", "AssessmentService"),
		catalog: catalog,
	}
}

func (s *assessmentService) Questions() []assessment.Question {
	return assessment.Questions()
}

func (s *assessmentService) Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error) {
	answers, msgs := parseAnswers(req.Answers)
	if len(msgs) > 0 {
		observability.Current().IncValidationFailure("assessment")
		return nil, apierr.Validation(msgs)
	}
	score, err := assessment.ComputeScore(answers)
	if err != nil {
		return nil, apierr.Validation([]string{err.Error()})
	}
	key := theme.RecommendTheme(score)
	server := types.ScoreToServer(score)
	res := &ScoreResult{
		PersonalityScore:    score,
		ServerScore:         server,
		RecommendedTheme:    key,
		ServerTheme:         types.ServerThemeFor(key, score),
		PersonalityLabel:    theme.Label(score),
		PersonalityCategory: types.CategoryFor(server),
	}
	observability.Current().IncAssessmentScored(string(key))
	s.log.Debug("assessment scored", "score", score, "theme", key)
	return res, nil
}

func (s *assessmentService) Themes() ThemeListing {
	return ThemeListing{
		Themes:          s.catalog.All(),
		AssessmentTheme: s.catalog.Assessment(),
	}
}

// parseAnswers reports every problem at once, in question order.
func parseAnswers(raw map[string]float64) (assessment.Answers, []string) {
	count := assessment.QuestionCount()
	answers := make(assessment.Answers, len(raw))
	var msgs []string

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pos, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || pos < 1 || pos > count {
			msgs = append(msgs, fmt.Sprintf("Question %s is not part of the assessment", k))
			continue
		}
		w := raw[k]
		if math.IsNaN(w) || w < 0 || w > 1 {
			msgs = append(msgs, fmt.Sprintf("Question %d answer weight must be between 0 and 1", pos))
			continue
		}
		answers[pos] = w
	}
	for pos := 1; pos <= count; pos++ {
		if _, ok := raw[strconv.Itoa(pos)]; !ok {
			msgs = append(msgs, fmt.Sprintf("Question %d must be answered", pos))
		}
	}
	return answers, msgs
}
