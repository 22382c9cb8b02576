package services

import (
	"strings"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/apierr"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

const (
	msgContactNotFound  = "Contact not found"
	recentContactWindow = 30 * 24 * time.Hour
)

type ContactService interface {
	Create(dbc dbctx.Context, in ContactInput) (*types.ContactSubmission, error)
	Get(dbc dbctx.Context, id uint) (*types.ContactSubmission, error)
	List(dbc dbctx.Context, q ContactQuery) ([]*types.ContactSubmission, error)
	UpdateStatus(dbc dbctx.Context, id uint, in ContactStatusInput) (*types.ContactSubmission, error)
	MarkRead(dbc dbctx.Context, id uint) (*types.ContactSubmission, error)
	MarkReplied(dbc dbctx.Context, id uint) (*types.ContactSubmission, error)
}

type contactService struct {
	log  *logger.Logger
	repo repos.ContactRepo
	now  func() time.Time
}

func NewContactService(log *logger.Logger, repo repos.ContactRepo) ContactService {
	return &contactService{
		log:  log.With("service", "ContactService"),
		repo: repo,
		now:  time.Now,
	}
}

// Create normalizes the fields before validating them and always starts the
// submission as pending.
func (s *contactService) Create(dbc dbctx.Context, in ContactInput) (*types.ContactSubmission, error) {
	c := &types.ContactSubmission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Message: strings.TrimSpace(in.Message),
		Status:  types.ContactPending,
	}
	if msgs := validationMessages(contactRules{
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
		Status:  c.Status,
	}); len(msgs) > 0 {
		observability.Current().IncValidationFailure("contact")
		return nil, apierr.Validation(msgs)
	}
	if _, err := s.repo.Create(dbc, c); err != nil {
		s.log.Error("create contact failed", "error", err)
		return nil, err
	}
	observability.Current().IncContactSubmission()
	s.log.Info("contact submission received", "id", c.ID, "email", c.Email, "length", len(c.Message))
	return c, nil
}

func (s *contactService) Get(dbc dbctx.Context, id uint) (*types.ContactSubmission, error) {
	c, err := s.repo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierr.NotFound(msgContactNotFound)
	}
	return c, nil
}

func (s *contactService) List(dbc dbctx.Context, q ContactQuery) ([]*types.ContactSubmission, error) {
	filter := repos.ContactFilter{Status: strings.TrimSpace(q.Status)}
	if q.Recent {
		since := s.now().Add(-recentContactWindow)
		filter.Since = &since
	}
	return s.repo.List(dbc, filter)
}

// UpdateStatus accepts any enumerated status regardless of the current one.
func (s *contactService) UpdateStatus(dbc dbctx.Context, id uint, in ContactStatusInput) (*types.ContactSubmission, error) {
	c, err := s.Get(dbc, id)
	if err != nil {
		return nil, err
	}
	if msgs := validationMessages(statusRules{Status: in.Status}); len(msgs) > 0 {
		observability.Current().IncValidationFailure("contact")
		return nil, apierr.Validation(msgs)
	}
	if err := s.repo.UpdateStatus(dbc, c.ID, in.Status); err != nil {
		s.log.Error("update contact status failed", "error", err, "id", c.ID)
		return nil, err
	}
	observability.Current().IncContactStatusUpdate(in.Status)
	s.log.Debug("contact status changed", "id", c.ID, "from", c.Status, "to", in.Status)
	return s.Get(dbc, c.ID)
}

func (s *contactService) MarkRead(dbc dbctx.Context, id uint) (*types.ContactSubmission, error) {
	return s.UpdateStatus(dbc, id, ContactStatusInput{Status: types.ContactRead})
}

func (s *contactService) MarkReplied(dbc dbctx.Context, id uint) (*types.ContactSubmission, error) {
	return s.UpdateStatus(dbc, id, ContactStatusInput{Status: types.ContactReplied})
}
