package report

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rep *Report) error
	FindAll(ctx context.Context) ([]Report, error)
	FindAllByUser(ctx context.Context, userID string) ([]Report, error)
	FindByID(ctx context.Context, id string) (*Report, error)
	Update(ctx context.Context, rep *Report) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Report{}, "id = ?", id).Error
}
