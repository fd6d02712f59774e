package user_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pareverse/hrms/internal/events"
	"github.com/pareverse/hrms/internal/messaging/kafka"
	"github.com/pareverse/hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	findAllFn                 func(ctx context.Context) ([]user.User, error)
	findByIDFn                func(ctx context.Context, id string) (*user.User, error)
	findByRoleAndDepartmentFn func(ctx context.Context, role, department string) ([]user.User, error)
	updateFn                  func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) user.Repository { return f }

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByRoleAndDepartment(ctx context.Context, role, department string) ([]user.User, error) {
	if f.findByRoleAndDepartmentFn != nil {
		return f.findByRoleAndDepartmentFn(ctx, role, department)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type userServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service user.Service
	repo    *fakeUserRepository
	outbox  *fakeOutboxRepository
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeUserRepository{}
	outbox := &fakeOutboxRepository{}
	svc := user.NewServiceWithOutbox(db, repo, outbox)

	return &userServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
	}
}

func strptr(s string) *string { return &s }

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	existing := func() *user.User {
		return &user.User{
			ID:     uuid.MustParse(userID),
			Name:   "Jess Cruz",
			Email:  "jess@pareverse.io",
			Role:   user.RoleUser,
			Status: user.StatusActive,
		}
	}

	t.Run("success promotion queues email", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return existing(), nil
		}

		var queued kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			queued = event
			return nil
		}

		resp, err := deps.service.Update(ctx, user.UpdateUserRequest{
			ID:   userID,
			Data: user.UserPatch{Role: strptr(user.RoleEmployee)},
		})

		assert.NoError(t, err)
		assert.Equal(t, user.RoleEmployee, resp.Role)
		assert.Equal(t, events.UserPromotedTopic, queued.Topic)

		var event events.UserPromotedEvent
		assert.NoError(t, json.Unmarshal(queued.Payload, &event))
		assert.Equal(t, "jess@pareverse.io", event.UserEmail)
		assert.Equal(t, user.RoleEmployee, event.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success employee to admin does not requeue promotion", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			u := existing()
			u.Role = user.RoleEmployee
			return u, nil
		}

		outboxCalled := false
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxCalled = true
			return nil
		}

		resp, err := deps.service.Update(ctx, user.UpdateUserRequest{
			ID:   userID,
			Data: user.UserPatch{Role: strptr(user.RoleAdmin)},
		})

		assert.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, resp.Role)
		assert.False(t, outboxCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success leaving suspended clears duration", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			u := existing()
			u.Status = user.StatusSuspended
			u.SuspendedDuration = "30 days"
			return u, nil
		}
		deps.repo.updateFn = func(ctx context.Context, u *user.User) error {
			assert.Equal(t, user.StatusActive, u.Status)
			assert.Empty(t, u.SuspendedDuration)
			return nil
		}

		resp, err := deps.service.Update(ctx, user.UpdateUserRequest{
			ID:   userID,
			Data: user.UserPatch{Status: strptr(user.StatusActive)},
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.SuspendedDuration)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid role", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, user.UpdateUserRequest{
			ID:   userID,
			Data: user.UserPatch{Role: strptr("Owner")},
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative user not found", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(ctx, user.UpdateUserRequest{
			ID:   userID,
			Data: user.UserPatch{Name: strptr("New Name")},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user not found")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{ID: uuid.New(), Name: "Jess Cruz", Email: "jess@pareverse.io", Role: user.RoleEmployee},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Jess Cruz", resp[0].Name)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]user.User, error) {
			return nil, errors.New("db error")
		}

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.Error(t, err)
	})
}
