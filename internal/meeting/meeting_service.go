package meeting

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/pareverse/hrms/internal/shared/apperror"
	"github.com/pareverse/hrms/internal/shared/timeutil"
	"github.com/pareverse/hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"meeting not found",
		http.StatusNotFound,
	)
	ErrInvalidMeetingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid meeting id",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req CreateMeetingRequest) (MeetingResponse, error)
	GetAll(ctx context.Context) ([]MeetingResponse, error)
	Update(ctx context.Context, req UpdateMeetingRequest) (MeetingResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

// Add records the memo and resolves its audience in one pass: Employee-role
// users of the target department, or every department when "all".
func (s *service) Add(ctx context.Context, req CreateMeetingRequest) (MeetingResponse, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return MeetingResponse{}, apperror.RequiredField("description")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add meeting begin tx failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	defer tx.Rollback()

	m := &Meeting{
		ID:          uuid.New(),
		Description: description,
		Department:  req.Department,
		Date:        req.Date,
		Time:        req.Time,
	}
	if err := s.repo.WithTx(tx).Create(ctx, m); err != nil {
		s.logger.Error("add meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	recipients, err := s.resolveRecipients(ctx, tx, m.Department)
	if err != nil {
		s.logger.Error("add meeting recipient resolution failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MeetingResponse{}, err
	}

	s.logger.Info("add meeting success",
		zap.String("meeting_id", m.ID.String()),
		zap.String("department", m.Department),
		zap.Int("recipients", len(recipients)),
	)

	resp := mapToResponse(*m)
	resp.Recipients = recipients
	return resp, nil
}

func (s *service) resolveRecipients(ctx context.Context, tx *sql.Tx, department string) ([]Recipient, error) {
	target := department
	if strings.EqualFold(target, DepartmentAll) {
		target = ""
	}

	employees, err := s.users.WithTx(tx).FindByRoleAndDepartment(ctx, user.RoleEmployee, target)
	if err != nil {
		return nil, err
	}

	recipients := make([]Recipient, len(employees))
	for i, e := range employees {
		recipients[i] = Recipient{Name: e.Name, Email: e.Email}
	}
	return recipients, nil
}

func (s *service) GetAll(ctx context.Context) ([]MeetingResponse, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(meetings), nil
}

func (s *service) Update(ctx context.Context, req UpdateMeetingRequest) (MeetingResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return MeetingResponse{}, ErrInvalidMeetingID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update meeting begin tx failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	m, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}

	if req.Data.Description != nil {
		m.Description = strings.TrimSpace(*req.Data.Description)
	}
	if req.Data.Department != nil {
		m.Department = *req.Data.Department
	}
	if req.Data.Date != nil {
		m.Date = *req.Data.Date
	}
	if req.Data.Time != nil {
		m.Time = *req.Data.Time
	}

	if err := qtx.Update(ctx, m); err != nil {
		s.logger.Error("update meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return MeetingResponse{}, err
	}

	return mapToResponse(*m), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidMeetingID
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

func mapToResponse(m Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID.String(),
		Description: m.Description,
		Department:  m.Department,
		Date:        m.Date,
		Time:        m.Time,
		Created:     timeutil.Stamp(m.CreatedAt),
		Updated:     timeutil.Stamp(m.UpdatedAt),
	}
}

func mapToListResponse(meetings []Meeting) []MeetingResponse {
	resp := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		resp[i] = mapToResponse(m)
	}
	return resp
}
