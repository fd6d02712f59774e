package leavetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pareverse/hrms/internal/leavetype"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveTypeRepository struct {
	createFn       func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn      func(ctx context.Context) ([]leavetype.LeaveType, error)
	existsByNameFn func(ctx context.Context, name string) (bool, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeLeaveTypeRepository) WithTx(tx *sql.Tx) leavetype.Repository { return f }

func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.createFn != nil {
		return f.createFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if f.existsByNameFn != nil {
		return f.existsByNameFn(ctx, name)
	}
	return false, nil
}

func (f *fakeLeaveTypeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type leaveTypeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   leavetype.Service
	repo      *fakeLeaveTypeRepository
}

func setupLeaveTypeServiceTest(t *testing.T) *leaveTypeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeLeaveTypeRepository{}
	svc := leavetype.NewService(db, repo, rdb)

	return &leaveTypeServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
	}
}

func TestLeaveTypeService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success lower-cases name", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(leavetype.OptionsCacheKey).SetVal(1)

		deps.repo.createFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			assert.Equal(t, "sick", lt.Name)
			return nil
		}

		resp, err := deps.service.Add(ctx, leavetype.CreateLeaveTypeRequest{Name: "  Sick "})

		assert.NoError(t, err)
		assert.Equal(t, "sick", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("success duplicate name accepted", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(leavetype.OptionsCacheKey).SetVal(1)

		created := 0
		deps.repo.createFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			created++
			return nil
		}

		_, err := deps.service.Add(ctx, leavetype.CreateLeaveTypeRequest{Name: "sick"})

		assert.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("negative blank name", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Add(ctx, leavetype.CreateLeaveTypeRequest{Name: "   "})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success cache miss falls back to repo and fills cache", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		types := []leavetype.LeaveType{
			{ID: uuid.New(), Name: "vacation", CreatedAt: time.Now(), UpdatedAt: time.Now()},
			{ID: uuid.New(), Name: "sick", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]leavetype.LeaveType, error) {
			return types, nil
		}

		deps.redisMock.ExpectGet(leavetype.OptionsCacheKey).RedisNil()
		deps.redisMock.Regexp().
			ExpectSet(leavetype.OptionsCacheKey, `.*`, time.Hour).
			SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "vacation", resp[0].Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("success cache hit skips repo", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		cached := []leavetype.LeaveTypeResponse{{ID: uuid.New().String(), Name: "sick"}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(leavetype.OptionsCacheKey).SetVal(string(payload))
		deps.repo.findAllFn = func(ctx context.Context) ([]leavetype.LeaveType, error) {
			t.Fatal("repo should not be called on cache hit")
			return nil, nil
		}

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "sick", resp[0].Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(leavetype.OptionsCacheKey).RedisNil()
		deps.repo.findAllFn = func(ctx context.Context) ([]leavetype.LeaveType, error) {
			return nil, errors.New("db error")
		}

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestLeaveTypeService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success leaves referencing requests alone", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(leavetype.OptionsCacheKey).SetVal(1)

		deleted := ""
		deps.repo.deleteFn = func(ctx context.Context, targetID string) error {
			deleted = targetID
			return nil
		}

		err := deps.service.Remove(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, id, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Remove(ctx, "not-a-uuid")

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
