package services

import (
	"strings"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/apierr"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

const (
	msgPreferenceNotFound = "Preference not found"
	msgScoreNotANumber    = "Personality score is not a number"
	msgScoreBlank         = "Personality score can't be blank"
)

type PreferenceService interface {
	Create(dbc dbctx.Context, in PreferenceInput) (*types.PreferenceRecord, error)
	Get(dbc dbctx.Context, id uint) (*types.PreferenceRecord, error)
	List(dbc dbctx.Context, q PreferenceQuery) ([]*types.PreferenceRecord, error)
	UpdateTheme(dbc dbctx.Context, id uint, in PreferenceThemeInput) (*types.PreferenceRecord, error)
}

type preferenceService struct {
	log  *logger.Logger
	repo repos.PreferenceRepo
}

func NewPreferenceService(log *logger.Logger, repo repos.PreferenceRepo) PreferenceService {
	return &preferenceService{
		log:  log.With("service", "PreferenceService"),
		repo: repo,
	}
}

func (s *preferenceService) Create(dbc dbctx.Context, in PreferenceInput) (*types.PreferenceRecord, error) {
	rules := preferenceRules{
		PersonalityScore: in.PersonalityScore.Value,
		Theme:            in.Theme,
		UserAgent:        strings.TrimSpace(in.UserAgent),
		IPAddress:        strings.TrimSpace(in.IPAddress),
	}
	msgs := validationMessages(rules)
	if in.PersonalityScore.Invalid {
		msgs = append([]string{msgScoreNotANumber}, without(msgs, msgScoreBlank)...)
	}
	if len(msgs) > 0 {
		observability.Current().IncValidationFailure("preference")
		return nil, apierr.Validation(msgs)
	}

	rec := &types.PreferenceRecord{
		PersonalityScore: types.RoundScore(*rules.PersonalityScore),
		Theme:            rules.Theme,
		UserAgent:        rules.UserAgent,
		IPAddress:        rules.IPAddress,
	}
	if _, err := s.repo.Create(dbc, rec); err != nil {
		s.log.Error("create preference failed", "error", err)
		return nil, err
	}
	observability.Current().IncPreferenceRecord(rec.Theme)
	s.log.Info("preference recorded",
		"id", rec.ID,
		"theme", rec.Theme,
		"personality_category", rec.PersonalityCategory(),
		"network", rec.AnonymizedIP(),
	)
	return rec, nil
}

func (s *preferenceService) Get(dbc dbctx.Context, id uint) (*types.PreferenceRecord, error) {
	rec, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apierr.NotFound(msgPreferenceNotFound)
	}
	return rec, nil
}

func (s *preferenceService) List(dbc dbctx.Context, q PreferenceQuery) ([]*types.PreferenceRecord, error) {
	return s.repo.List(dbc, repos.PreferenceFilter{
		Theme:    strings.TrimSpace(q.Theme),
		MinScore: q.MinScore,
		MaxScore: q.MaxScore,
	})
}

// UpdateTheme changes only the theme; the score and client metadata are fixed
// at creation.
func (s *preferenceService) UpdateTheme(dbc dbctx.Context, id uint, in PreferenceThemeInput) (*types.PreferenceRecord, error) {
	rec, err := s.Get(dbc, id)
	if err != nil {
		return nil, err
	}
	if msgs := validationMessages(themeRules{Theme: in.Theme}); len(msgs) > 0 {
		observability.Current().IncValidationFailure("preference")
		return nil, apierr.Validation(msgs)
	}
	if err := s.repo.UpdateTheme(dbc, rec.ID, in.Theme); err != nil {
		s.log.Error("update preference theme failed", "error", err, "id", rec.ID)
		return nil, err
	}
	return s.Get(dbc, rec.ID)
}

func without(list []string, drop string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
