package portfolio

import (
	"time"

	"gorm.io/gorm"

	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

// PreferenceFilter narrows List. Zero values disable a condition.
type PreferenceFilter struct {
	Theme    string
	MinScore *float64
	MaxScore *float64
	Since    *time.Time
}

type ScoreCount struct {
	Score float64 `gorm:"column:score"`
	Count int64   `gorm:"column:count"`
}

type ThemeCount struct {
	Theme string `gorm:"column:theme"`
	Count int64  `gorm:"column:count"`
}

type PreferenceRepo interface {
	Create(dbc dbctx.Context, rec *types.PreferenceRecord) (*types.PreferenceRecord, error)
	GetByID(dbc dbctx.Context, id uint) (*types.PreferenceRecord, error)
	List(dbc dbctx.Context, filter PreferenceFilter) ([]*types.PreferenceRecord, error)
	UpdateTheme(dbc dbctx.Context, id uint, theme string) error
	Count(dbc dbctx.Context) (int64, error)
	CountSince(dbc dbctx.Context, since time.Time) (int64, error)
	CountByScore(dbc dbctx.Context) ([]ScoreCount, error)
	CountByTheme(dbc dbctx.Context) ([]ThemeCount, error)
	DeleteAll(dbc dbctx.Context) error
}

type preferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) PreferenceRepo {
	return &preferenceRepo{
		db:  db,
		log: baseLog.With("repo", "PreferenceRepo"),
	}
}

func (r *preferenceRepo) Create(dbc dbctx.Context, rec *types.PreferenceRecord) (*types.PreferenceRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID returns nil, nil when no record matches.
func (r *preferenceRepo) GetByID(dbc dbctx.Context, id uint) (*types.PreferenceRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var rec types.PreferenceRecord
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&rec).Error; err != nil {
		return nil, err
	}
	if rec.ID == 0 {
		return nil, nil
	}
	return &rec, nil
}

// List orders by creation time ascending, ties broken by id.
func (r *preferenceRepo) List(dbc dbctx.Context, filter PreferenceFilter) ([]*types.PreferenceRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(dbc.Ctx).Model(&types.PreferenceRecord{})
	if filter.Theme != "" {
		q = q.Where("theme = ?", filter.Theme)
	}
	if filter.MinScore != nil {
		q = q.Where("personality_score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		q = q.Where("personality_score <= ?", *filter.MaxScore)
	}
	if filter.Since != nil {
		q = q.Where("created_at > ?", *filter.Since)
	}
	out := []*types.PreferenceRecord{}
	if err := q.Order("created_at ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *preferenceRepo) UpdateTheme(dbc dbctx.Context, id uint, theme string) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.PreferenceRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"theme":      theme,
			"updated_at": time.Now(),
		}).Error
}

func (r *preferenceRepo) Count(dbc dbctx.Context) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	err := transaction.WithContext(dbc.Ctx).Model(&types.PreferenceRecord{}).Count(&n).Error
	return n, err
}

func (r *preferenceRepo) CountSince(dbc dbctx.Context, since time.Time) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var n int64
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.PreferenceRecord{}).
		Where("created_at > ?", since).
		Count(&n).Error
	return n, err
}

func (r *preferenceRepo) CountByScore(dbc dbctx.Context) ([]ScoreCount, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []ScoreCount{}
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.PreferenceRecord{}).
		Select("personality_score AS score, COUNT(*) AS count").
		Group("personality_score").
		Order("personality_score ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *preferenceRepo) CountByTheme(dbc dbctx.Context) ([]ThemeCount, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []ThemeCount{}
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.PreferenceRecord{}).
		Select("theme, COUNT(*) AS count").
		Group("theme").
		Order("theme ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *preferenceRepo) DeleteAll(dbc dbctx.Context) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.PreferenceRecord{}).Error
}
