package holiday

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, hd *Holiday) error
	FindAll(ctx context.Context) ([]Holiday, error)
	FindByID(ctx context.Context, id string) (*Holiday, error)
	Update(ctx context.Context, hd *Holiday) error
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

func (r *repository) Create(ctx context.Context, hd *Holiday) error {
	return r.db.WithContext(ctx).Create(hd).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Holiday, error) {
	var hd Holiday
	err := r.db.WithContext(ctx).First(&hd, "id = ?", id).Error
	return &hd, err
}

func (r *repository) Update(ctx context.Context, hd *Holiday) error {
	return r.db.WithContext(ctx).Save(hd).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Holiday{}, "id = ?", id).Error
}
