package holiday

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
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid holiday id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return HolidayResponse{}, apperror.RequiredField("name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	hd := &Holiday{ID: uuid.New(), Name: name, Date: req.Date}
	if err := s.repo.WithTx(tx).Create(ctx, hd); err != nil {
		s.logger.Error("add holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	s.logger.Info("add holiday success", zap.String("holiday_id", hd.ID.String()))
	return mapToResponse(*hd), nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

func (s *service) Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return HolidayResponse{}, ErrInvalidHolidayID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	hd, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, ErrHolidayNotFound
		}
		return HolidayResponse{}, err
	}

	if req.Data.Name != nil {
		hd.Name = strings.TrimSpace(*req.Data.Name)
	}
	if req.Data.Date != nil {
		hd.Date = *req.Data.Date
	}

	if err := qtx.Update(ctx, hd); err != nil {
		s.logger.Error("update holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	return mapToResponse(*hd), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidHolidayID
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

func mapToResponse(hd Holiday) HolidayResponse {
	return HolidayResponse{
		ID:      hd.ID.String(),
		Name:    hd.Name,
		Date:    hd.Date,
		Created: timeutil.Stamp(hd.CreatedAt),
		Updated: timeutil.Stamp(hd.UpdatedAt),
	}
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, len(holidays))
	for i, hd := range holidays {
		resp[i] = mapToResponse(hd)
	}
	return resp
}
