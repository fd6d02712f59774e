package department_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pareverse/hrms/internal/department"
	"github.com/pareverse/hrms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	createFn   func(ctx context.Context, d *department.Department) error
	findAllFn  func(ctx context.Context) ([]department.Department, error)
	findByIDFn func(ctx context.Context, id string) (*department.Department, error)
	updateFn   func(ctx context.Context, d *department.Department) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository { return f }

func (f *fakeDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &department.Department{}, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type departmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *fakeDepartmentRepository
}

func setupDepartmentServiceTest(t *testing.T) *departmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	return &departmentServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestDepartmentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "Engineering", d.Name)
			assert.NotEqual(t, uuid.Nil, d.ID)
			return nil
		}

		resp, err := deps.service.Add(ctx, department.CreateDepartmentRequest{Name: "  Engineering "})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blank name", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Add(ctx, department.CreateDepartmentRequest{Name: "   "})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success renames department", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		id := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*department.Department, error) {
			assert.Equal(t, id.String(), gotID)
			return &department.Department{ID: id, Name: "Engineering"}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "Platform", d.Name)
			return nil
		}

		resp, err := deps.service.Update(ctx, department.UpdateDepartmentRequest{
			ID:   id.String(),
			Data: department.DepartmentPatch{Name: " Platform "},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Platform", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative department not found", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(ctx, department.UpdateDepartmentRequest{
			ID:   uuid.NewString(),
			Data: department.DepartmentPatch{Name: "Platform"},
		})

		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, department.UpdateDepartmentRequest{
			ID:   "not-a-uuid",
			Data: department.DepartmentPatch{Name: "Platform"},
		})

		assert.ErrorIs(t, err, department.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		id := uuid.NewString()
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			assert.Equal(t, id, gotID)
			return nil
		}

		err := deps.service.Remove(ctx, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Remove(ctx, "42")

		assert.ErrorIs(t, err, department.ErrInvalidDepartmentID)
	})
}
