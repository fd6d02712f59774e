package designation

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
	ErrDesignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"designation not found",
		http.StatusNotFound,
	)
	ErrInvalidDesignationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid designation id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	GetAll(ctx context.Context) ([]DesignationResponse, error)
	Update(ctx context.Context, req UpdateDesignationRequest) (DesignationResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("designation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("designation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DesignationResponse{}, apperror.RequiredField("name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add designation begin tx failed", zap.Error(err))
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	d := &Designation{ID: uuid.New(), Name: name}
	if err := s.repo.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("add designation persist failed", zap.Error(err))
		return DesignationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.logger.Info("add designation success", zap.String("designation_id", d.ID.String()))
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DesignationResponse, error) {
	designations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(designations), nil
}

func (s *service) Update(ctx context.Context, req UpdateDesignationRequest) (DesignationResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return DesignationResponse{}, ErrInvalidDesignationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update designation begin tx failed", zap.Error(err))
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	d, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DesignationResponse{}, ErrDesignationNotFound
		}
		return DesignationResponse{}, err
	}

	d.Name = strings.TrimSpace(req.Data.Name)
	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Error("update designation persist failed", zap.Error(err))
		return DesignationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	return mapToResponse(*d), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidDesignationID
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

func mapToResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:      d.ID.String(),
		Name:    d.Name,
		Created: timeutil.Stamp(d.CreatedAt),
		Updated: timeutil.Stamp(d.UpdatedAt),
	}
}

func mapToListResponse(designations []Designation) []DesignationResponse {
	resp := make([]DesignationResponse, len(designations))
	for i, d := range designations {
		resp[i] = mapToResponse(d)
	}
	return resp
}
