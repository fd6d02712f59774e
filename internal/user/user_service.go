package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pareverse/hrms/internal/events"
	"github.com/pareverse/hrms/internal/messaging/kafka"
	"github.com/pareverse/hrms/internal/shared/contextutil"
	"github.com/pareverse/hrms/internal/shared/timeutil"
	usererrors "github.com/pareverse/hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

// Update applies a partial patch from the admin accounts screen. Lifting a
// User to Employee queues the promotion email; leaving the suspended status
// always clears the suspension window.
func (s *service) Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update user requested",
		zap.String("request_id", rid),
		zap.String("user_id", req.ID),
	)

	if _, err := uuid.Parse(req.ID); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if req.Data.Role != nil {
		switch *req.Data.Role {
		case RoleAdmin, RoleEmployee, RoleUser:
		default:
			return UserResponse{}, usererrors.ErrInvalidRole
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	previousRole := u.Role
	applyPatch(u, req.Data)

	if u.Status != StatusSuspended {
		u.SuspendedDuration = ""
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed",
			zap.String("user_id", req.ID),
			zap.Error(err),
		)
		return UserResponse{}, mapRepositoryError(err)
	}

	promoted := previousRole != RoleEmployee && u.Role == RoleEmployee
	if promoted && s.outbox != nil {
		event := events.UserPromotedEvent{
			EventType:  "user_promoted",
			RequestID:  rid,
			UserID:     u.ID.String(),
			UserEmail:  u.Email,
			Role:       u.Role,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return UserResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "user",
			AggregateID:   u.ID.String(),
			EventType:     event.EventType,
			Topic:         events.UserPromotedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("update user outbox persist failed",
				zap.String("user_id", req.ID),
				zap.Error(err),
			)
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update user success",
		zap.String("request_id", rid),
		zap.String("user_id", req.ID),
		zap.Bool("promoted", promoted),
	)

	return mapToResponse(*u), nil
}

func applyPatch(u *User, p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Image != nil {
		u.Image = *p.Image
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Designation != nil {
		u.Designation = *p.Designation
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Contact != nil {
		u.Contact = *p.Contact
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.HiredDate != nil {
		u.HiredDate = *p.HiredDate
	}
	if p.ContractEndDate != nil {
		u.ContractEndDate = *p.ContractEndDate
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.SuspendedDuration != nil {
		u.SuspendedDuration = *p.SuspendedDuration
	}
	if p.Archive != nil {
		u.Archive = *p.Archive
	}
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID.String(),
		Name:              u.Name,
		Email:             u.Email,
		Image:             u.Image,
		Department:        u.Department,
		Designation:       u.Designation,
		Gender:            u.Gender,
		Contact:           u.Contact,
		DateOfBirth:       u.DateOfBirth,
		Address:           u.Address,
		HiredDate:         u.HiredDate,
		ContractEndDate:   u.ContractEndDate,
		Role:              u.Role,
		Status:            u.Status,
		SuspendedDuration: u.SuspendedDuration,
		Archive:           u.Archive,
		Created:           timeutil.Stamp(u.CreatedAt),
		Updated:           timeutil.Stamp(u.UpdatedAt),
	}
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
