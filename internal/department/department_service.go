package department

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/pareverse/hrms/internal/shared/apperror"
	"github.com/pareverse/hrms/internal/shared/timeutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DepartmentResponse{}, apperror.RequiredField("name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	d := &Department{ID: uuid.New(), Name: name}
	if err := s.repo.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("add department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("add department success", zap.String("department_id", d.ID.String()))
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(departments), nil
}

func (s *service) Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return DepartmentResponse{}, ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	d, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	d.Name = strings.TrimSpace(req.Data.Name)
	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*d), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:      d.ID.String(),
		Name:    d.Name,
		Created: timeutil.Stamp(d.CreatedAt),
		Updated: timeutil.Stamp(d.UpdatedAt),
	}
}

func mapToListResponse(departments []Department) []DepartmentResponse {
	resp := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		resp[i] = mapToResponse(d)
	}
	return resp
}
