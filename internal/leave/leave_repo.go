package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindAllByUser(ctx context.Context, userID string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	ApplyDecision(ctx context.Context, l *Leave) (int64, error)
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

// conn routes gorm statements through the attached sql.Tx when there is one,
// so the decision CAS commits or rolls back together with the outbox row.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx != nil {
		db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
		db.Statement.ConnPool = r.tx
		return db
	}
	return r.db.WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

// ApplyDecision writes the verdict only while the row is still waiting.
// Returns the number of rows updated; zero means another decision won the
// race after our read.
func (r *repository) ApplyDecision(ctx context.Context, l *Leave) (int64, error) {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ?", l.ID, StatusWaiting).
		Select("Status", "ApprovedBy", "ApprovedAt", "RejectedBy", "RejectedAt", "UpdatedAt").
		Updates(l)
	return res.RowsAffected, res.Error
}
