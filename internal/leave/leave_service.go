package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/pareverse/hrms/internal/events"
	leaveerrors "github.com/pareverse/hrms/internal/leave/errors"
	"github.com/pareverse/hrms/internal/leavetype"
	"github.com/pareverse/hrms/internal/messaging/kafka"
	"github.com/pareverse/hrms/internal/shared/apperror"
	"github.com/pareverse/hrms/internal/shared/contextutil"
	"github.com/pareverse/hrms/internal/shared/timeutil"
	"github.com/pareverse/hrms/internal/user"
	usererrors "github.com/pareverse/hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusWaiting  = "waiting"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	ListAll(ctx context.Context) ([]LeaveResponse, error)
	ListForUser(ctx context.Context, userID string) ([]LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Repository
	types  leavetype.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	types leavetype.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, users, types, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	types leavetype.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		types:  types,
		outbox: outboxRepo,
		logger: l,
	}
}

// Create files a new leave request in the waiting state. The requesting user
// is snapshotted onto the row and the inclusive day count is fixed here, not
// recomputed later.
func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("user_id", req.User.ID),
		zap.String("type", req.Type),
		zap.String("from", req.From),
		zap.String("to", req.To),
	)

	if _, err := uuid.Parse(req.User.ID); err != nil {
		return LeaveResponse{}, usererrors.ErrInvalidUserID
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	known, err := s.types.WithTx(tx).ExistsByName(ctx, strings.ToLower(strings.TrimSpace(req.Type)))
	if err != nil {
		s.logger.Error("create leave type lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !known {
		return LeaveResponse{}, leaveerrors.ErrUnknownLeaveType
	}

	requester, err := s.users.WithTx(tx).FindByID(ctx, req.User.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("create leave user lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	days := int(to.Sub(from).Hours()/24) + 1
	l := &Leave{
		ID:        uuid.New(),
		UserID:    requester.ID,
		UserName:  requester.Name,
		UserEmail: requester.Email,
		UserImage: requester.Image,
		Type:      req.Type,
		From:      from,
		To:        to,
		Days:      days,
		Status:    StatusWaiting,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", req.User.ID),
		zap.Int("days", days),
	)
	return mapToResponse(*l), nil
}

// Decide applies an admin verdict on a waiting request. The status write is
// a compare-and-set on status=waiting, so a concurrent decision surfaces as
// a conflict instead of a silent overwrite. The notification email is queued
// through the outbox in the same transaction and delivered out of band; a
// delivery failure never rolls the decision back.
func (s *service) Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", req.ID),
		zap.String("employee_id", req.Data.User.ID),
		zap.String("decision", req.Data.Status),
	)

	if _, err := uuid.Parse(req.ID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if _, err := uuid.Parse(req.Data.User.ID); err != nil {
		return LeaveResponse{}, usererrors.ErrInvalidUserID
	}
	if req.Data.Status != StatusApproved && req.Data.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	// The deciding admin rides in the field matching the verdict, not in
	// data.user, which names the employee who filed the request.
	deciderID, deciderField := req.Data.ApprovedBy, "approved_by"
	if req.Data.Status == StatusRejected {
		deciderID, deciderField = req.Data.RejectedBy, "rejected_by"
	}
	if deciderID == "" {
		return LeaveResponse{}, apperror.RequiredField(deciderField)
	}
	if _, err := uuid.Parse(deciderID); err != nil {
		return LeaveResponse{}, usererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("decide leave lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if l.Status != StatusWaiting {
		s.logger.Warn("decide leave request already terminal",
			zap.String("leave_id", req.ID),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	admin, err := s.users.WithTx(tx).FindByID(ctx, deciderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("decide leave admin lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	snapshot := DeciderSnapshot{Name: admin.Name, Email: admin.Email, Image: admin.Image}
	now := time.Now().UTC()
	l.Status = req.Data.Status
	switch req.Data.Status {
	case StatusApproved:
		l.ApprovedBy = snapshot
		l.ApprovedAt = &now
	case StatusRejected:
		l.RejectedBy = snapshot
		l.RejectedAt = &now
	}
	l.UpdatedAt = now

	rows, err := qtx.ApplyDecision(ctx, l)
	if err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", req.ID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("decide leave lost decision race", zap.String("leave_id", req.ID))
		return LeaveResponse{}, leaveerrors.ErrDecisionConflict
	}

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventType:      "leave_decided",
			RequestID:      rid,
			LeaveID:        l.ID.String(),
			UserID:         l.UserID.String(),
			UserEmail:      l.UserEmail,
			Decision:       l.Status,
			DecidedByEmail: admin.Email,
			OccurredAt:     now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox persist failed",
				zap.String("leave_id", req.ID),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", req.ID),
		zap.String("decision", l.Status),
	)
	return mapToResponse(*l), nil
}

func (s *service) ListAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	leaves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func parseDateRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		UserName:     l.UserName,
		UserEmail:    l.UserEmail,
		UserImage:    l.UserImage,
		Type:         l.Type,
		From:         l.From.Format(dateLayout),
		To:           l.To.Format(dateLayout),
		Days:         l.Days,
		Status:       l.Status,
		ApprovedDate: timeutil.StampPtr(l.ApprovedAt),
		RejectedDate: timeutil.StampPtr(l.RejectedAt),
		Created:      timeutil.Stamp(l.CreatedAt),
		Updated:      timeutil.Stamp(l.UpdatedAt),
	}
	if !l.ApprovedBy.IsZero() {
		resp.ApprovedBy = &DeciderResponse{
			Name:  l.ApprovedBy.Name,
			Email: l.ApprovedBy.Email,
			Image: l.ApprovedBy.Image,
		}
	}
	if !l.RejectedBy.IsZero() {
		resp.RejectedBy = &DeciderResponse{
			Name:  l.RejectedBy.Name,
			Email: l.RejectedBy.Email,
			Image: l.RejectedBy.Image,
		}
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
