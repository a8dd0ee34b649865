package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	employeeerrors "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee/errors"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/events"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/messaging/kafka"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	firstEmpID       = "E001"
	listCacheKey     = "employees:list"
	listCacheTTL     = 5 * time.Minute
	empIDPrefix      = "E"
	empIDDigitsWidth = 3
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddEmployeeRequest) (AddEmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Remove(ctx context.Context, empID string) error
	ChangePassword(ctx context.Context, empID, newPassword string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Add(ctx context.Context, req AddEmployeeRequest) (AddEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AddEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empID, err := s.nextEmpID(ctx, qtx)
	if err != nil {
		s.logger.Error("add employee assign id failed", zap.Error(err))
		return AddEmployeeResponse{}, err
	}

	empl := &Employee{
		EmpID:    empID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     RoleEmployee,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("add employee persist failed", zap.Error(err))
		return AddEmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmpID:      empl.EmpID,
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AddEmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.EmpID,
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("add employee outbox persist failed",
				zap.String("emp_id", empl.EmpID),
				zap.Error(err),
			)
			return AddEmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("add employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return AddEmployeeResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empl.EmpID),
	)
	return AddEmployeeResponse{
		Message: "Employee added successfully",
		EmpID:   empl.EmpID,
	}, nil
}

// nextEmpID derives the next sequential identifier from the
// lexicographically last one. Zero-padding keeps lexicographic and
// numeric order aligned up to E999.
func (s *service) nextEmpID(ctx context.Context, repo Repository) (string, error) {
	lastID, err := repo.FindLastEmpID(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return firstEmpID, nil
		}
		return "", err
	}

	n, err := strconv.Atoi(strings.TrimPrefix(lastID, empIDPrefix))
	if err != nil {
		return "", fmt.Errorf("malformed employee id %q: %w", lastID, err)
	}

	return fmt.Sprintf("%s%0*d", empIDPrefix, empIDDigitsWidth, n+1), nil
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent fills of a cold cache into one query.
	v, err, _ := s.sf.Do(listCacheKey, func() (any, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]EmployeeResponse, len(rows))
		for i, e := range rows {
			resp[i] = mapToResponse(e)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, listCacheKey, payload, listCacheTTL).Err(); err != nil {
					s.logger.Warn("employee list cache set failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) Remove(ctx context.Context, empID string) error {
	rid := contextutil.GetRequestID(ctx)

	empl, err := s.repo.FindByEmpID(ctx, empID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if empl.Role == RoleAdmin {
		s.logger.Warn("remove employee rejected, target is admin",
			zap.String("request_id", rid),
			zap.String("emp_id", empID),
		)
		return employeeerrors.ErrCannotRemoveAdmin
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, empID); err != nil {
		s.logger.Error("remove employee delete failed", zap.String("emp_id", empID), zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRemovedEvent{
			EventType:  "employee_removed",
			RequestID:  rid,
			EmpID:      empID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empID,
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("remove employee success",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
	)
	return nil
}

func (s *service) ChangePassword(ctx context.Context, empID, newPassword string) error {
	if _, err := s.repo.FindByEmpID(ctx, empID); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.UpdatePasswordByEmpID(ctx, empID, newPassword); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("password changed by admin", zap.String("emp_id", empID))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Warn("employee list cache invalidation failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID: e.EmpID,
		Name:  e.Name,
		Email: e.Email,
		Role:  e.Role,
	}
}
