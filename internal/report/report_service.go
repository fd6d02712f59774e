package report

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/pareverse/hrms/internal/shared/apperror"
	"github.com/pareverse/hrms/internal/shared/timeutil"
	"github.com/pareverse/hrms/internal/user"
	usererrors "github.com/pareverse/hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"report not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateReportRequest) (ReportResponse, error)
	GetAll(ctx context.Context) ([]ReportResponse, error)
	GetAllByUser(ctx context.Context, userID string) ([]ReportResponse, error)
	Update(ctx context.Context, req UpdateReportRequest) (ReportResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

func (s *service) Add(ctx context.Context, req CreateReportRequest) (ReportResponse, error) {
	if _, err := uuid.Parse(req.User.ID); err != nil {
		return ReportResponse{}, usererrors.ErrInvalidUserID
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return ReportResponse{}, apperror.RequiredField("description")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	reporter, err := s.users.WithTx(tx).FindByID(ctx, req.User.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("add report user lookup failed", zap.Error(err))
		return ReportResponse{}, err
	}

	rep := &Report{
		ID:          uuid.New(),
		UserID:      reporter.ID,
		UserName:    reporter.Name,
		UserEmail:   reporter.Email,
		UserImage:   reporter.Image,
		Description: description,
		Type:        req.Type,
		File:        req.File,
		Status:      StatusUnread,
	}
	if err := s.repo.WithTx(tx).Create(ctx, rep); err != nil {
		s.logger.Error("add report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReportResponse{}, err
	}

	s.logger.Info("add report success",
		zap.String("report_id", rep.ID.String()),
		zap.String("user_id", rep.UserID.String()),
	)
	return mapToResponse(*rep), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReportResponse, error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reports), nil
}

func (s *service) GetAllByUser(ctx context.Context, userID string) ([]ReportResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	reports, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reports), nil
}

func (s *service) Update(ctx context.Context, req UpdateReportRequest) (ReportResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return ReportResponse{}, ErrInvalidReportID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rep, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, ErrReportNotFound
		}
		return ReportResponse{}, err
	}

	if req.Data.Status != nil {
		rep.Status = *req.Data.Status
	}

	if err := qtx.Update(ctx, rep); err != nil {
		s.logger.Error("update report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReportResponse{}, err
	}

	return mapToResponse(*rep), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidReportID
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

func mapToResponse(rep Report) ReportResponse {
	return ReportResponse{
		ID:          rep.ID.String(),
		UserID:      rep.UserID.String(),
		UserName:    rep.UserName,
		UserEmail:   rep.UserEmail,
		UserImage:   rep.UserImage,
		Description: rep.Description,
		Type:        rep.Type,
		File:        rep.File,
		Status:      rep.Status,
		Created:     timeutil.Stamp(rep.CreatedAt),
		Updated:     timeutil.Stamp(rep.UpdatedAt),
	}
}

func mapToListResponse(reports []Report) []ReportResponse {
	resp := make([]ReportResponse, len(reports))
	for i, rep := range reports {
		resp[i] = mapToResponse(rep)
	}
	return resp
}
