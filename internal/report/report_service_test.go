package report_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pareverse/hrms/internal/report"
	"github.com/pareverse/hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	createFn        func(ctx context.Context, rep *report.Report) error
	findAllFn       func(ctx context.Context) ([]report.Report, error)
	findAllByUserFn func(ctx context.Context, userID string) ([]report.Report, error)
	findByIDFn      func(ctx context.Context, id string) (*report.Report, error)
	updateFn        func(ctx context.Context, rep *report.Report) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeReportRepository) WithTx(tx *sql.Tx) report.Repository { return f }

func (f *fakeReportRepository) Create(ctx context.Context, rep *report.Report) error {
	if f.createFn != nil {
		return f.createFn(ctx, rep)
	}
	return nil
}

func (f *fakeReportRepository) FindAll(ctx context.Context) ([]report.Report, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeReportRepository) FindAllByUser(ctx context.Context, userID string) ([]report.Report, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, id string) (*report.Report, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &report.Report{}, nil
}

func (f *fakeReportRepository) Update(ctx context.Context, rep *report.Report) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, rep)
	}
	return nil
}

func (f *fakeReportRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeReportUserRepository struct {
	findByIDFn func(ctx context.Context, id string) (*user.User, error)
}

func (f *fakeReportUserRepository) WithTx(tx *sql.Tx) user.Repository { return f }

func (f *fakeReportUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

func (f *fakeReportUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &user.User{}, nil
}

func (f *fakeReportUserRepository) FindByRoleAndDepartment(ctx context.Context, role, department string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeReportUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

type reportServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service report.Service
	repo    *fakeReportRepository
	users   *fakeReportUserRepository
}

func setupReportServiceTest(t *testing.T) *reportServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeReportRepository{}
	users := &fakeReportUserRepository{}
	svc := report.NewService(db, repo, users)

	return &reportServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, users: users}
}

func TestReportService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success snapshots reporter", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			assert.Equal(t, userID, id)
			return &user.User{
				ID:    uuid.MustParse(userID),
				Name:  "Jess Cruz",
				Email: "jess@pareverse.io",
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, rep *report.Report) error {
			assert.Equal(t, "jess@pareverse.io", rep.UserEmail)
			assert.Equal(t, report.StatusUnread, rep.Status)
			return nil
		}

		resp, err := deps.service.Add(ctx, report.CreateReportRequest{
			User:        report.UserRef{ID: userID},
			Description: "broken aircon on floor 3",
			Type:        "facilities",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jess Cruz", resp.UserName)
		assert.Equal(t, report.StatusUnread, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blank description", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Add(ctx, report.CreateReportRequest{
			User:        report.UserRef{ID: userID},
			Description: "   ",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestReportService_GetAllByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success filters to requested user", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllByUserFn = func(ctx context.Context, uid string) ([]report.Report, error) {
			assert.Equal(t, userID, uid)
			return []report.Report{
				{ID: uuid.New(), UserID: uuid.MustParse(userID), Description: "laptop replacement", Status: report.StatusUnread},
			}, nil
		}

		resp, err := deps.service.GetAllByUser(ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, userID, resp[0].UserID)
	})

	t.Run("negative invalid user id", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		resp, err := deps.service.GetAllByUser(ctx, "not-a-uuid")

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
