package portfolio

import (
	"time"

	"gorm.io/gorm"

	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type ContactFilter struct {
	Status string
	Since  *time.Time
}

type ContactRepo interface {
	Create(dbc dbctx.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	GetByID(dbc dbctx.Context, id uint) (*types.ContactSubmission, error)
	List(dbc dbctx.Context, filter ContactFilter) ([]*types.ContactSubmission, error)
	UpdateStatus(dbc dbctx.Context, id uint, status string) error
	Count(dbc dbctx.Context) (int64, error)
	DeleteAll(dbc dbctx.Context) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{
		db:  db,
		log: baseLog.With("repo", "ContactRepo"),
	}
}

func (r *contactRepo) Create(dbc dbctx.Context, c *types.ContactSubmission) (*types.ContactSubmission, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepo) GetByID(dbc dbctx.Context, id uint) (*types.ContactSubmission, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var c types.ContactSubmission
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&c).Error; err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

// List returns newest first.
func (r *contactRepo) List(dbc dbctx.Context, filter ContactFilter) ([]*types.ContactSubmission, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(dbc.Ctx).Model(&types.ContactSubmission{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Since != nil {
		q = q.Where("created_at > ?", *filter.Since)
	}
	out := []*types.ContactSubmission{}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contactRepo) UpdateStatus(dbc dbctx.Context, id uint, status string) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.ContactSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *contactRepo) Count(dbc dbctx.Context) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	err := transaction.WithContext(dbc.Ctx).Model(&types.ContactSubmission{}).Count(&n).Error
	return n, err
}

func (r *contactRepo) DeleteAll(dbc dbctx.Context) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.ContactSubmission{}).Error
}
