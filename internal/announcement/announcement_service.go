package announcement

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
	ErrAnnouncementNotFound = apperror.New(
		apperror.CodeNotFound,
		"announcement not found",
		http.StatusNotFound,
	)
	ErrInvalidAnnouncementID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid announcement id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	Update(ctx context.Context, req UpdateAnnouncementRequest) (AnnouncementResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return AnnouncementResponse{}, apperror.RequiredField("name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add announcement begin tx failed", zap.Error(err))
		return AnnouncementResponse{}, err
	}
	defer tx.Rollback()

	a := &Announcement{ID: uuid.New(), Name: name, Date: req.Date}
	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		s.logger.Error("add announcement persist failed", zap.Error(err))
		return AnnouncementResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AnnouncementResponse{}, err
	}

	s.logger.Info("add announcement success", zap.String("announcement_id", a.ID.String()))
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AnnouncementResponse, error) {
	announcements, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(announcements), nil
}

func (s *service) Update(ctx context.Context, req UpdateAnnouncementRequest) (AnnouncementResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return AnnouncementResponse{}, ErrInvalidAnnouncementID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update announcement begin tx failed", zap.Error(err))
		return AnnouncementResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AnnouncementResponse{}, ErrAnnouncementNotFound
		}
		return AnnouncementResponse{}, err
	}

	if req.Data.Name != nil {
		a.Name = strings.TrimSpace(*req.Data.Name)
	}
	if req.Data.Date != nil {
		a.Date = *req.Data.Date
	}

	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Error("update announcement persist failed", zap.Error(err))
		return AnnouncementResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AnnouncementResponse{}, err
	}

	return mapToResponse(*a), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidAnnouncementID
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

func mapToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Date:    a.Date,
		Created: timeutil.Stamp(a.CreatedAt),
		Updated: timeutil.Stamp(a.UpdatedAt),
	}
}

func mapToListResponse(announcements []Announcement) []AnnouncementResponse {
	resp := make([]AnnouncementResponse, len(announcements))
	for i, a := range announcements {
		resp[i] = mapToResponse(a)
	}
	return resp
}
