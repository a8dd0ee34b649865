package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/events"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/geoip"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/messaging/kafka"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04:05"
	historyWindow = 30 * 24 * time.Hour
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Check(ctx context.Context, empID, action, sourceIP string) (CheckResponse, error)
	History(ctx context.Context, empID string) ([]DayRecord, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver geoip.Resolver
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, resolver geoip.Resolver, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, resolver, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	resolver geoip.Resolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// Check records at most one event per (employee, day, action). A repeat
// on the same day is a no-op success, never an error, so clients can
// retry freely. Location lookup failures degrade to "Unknown" and never
// fail the request.
func (s *service) Check(ctx context.Context, empID, action, sourceIP string) (CheckResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	location := geoip.UnknownLocation
	if s.resolver != nil {
		location = s.resolver.Resolve(ctx, sourceIP)
	}

	now := time.Now()
	today := now.Format(dateLayout)

	existing, err := s.repo.FindByEmpDateAction(ctx, empID, today, action)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckResponse{}, err
	}
	if existing != nil {
		s.logger.Debug("duplicate attendance attempt",
			zap.String("request_id", rid),
			zap.String("emp_id", empID),
			zap.String("action", action),
			zap.String("date", today),
		)
		return alreadyRecordedResponse(action, sourceIP, location), nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CheckResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row := &AttendanceLog{
		ID:        uuid.New(),
		EmpID:     empID,
		Action:    action,
		Timestamp: now,
		Date:      today,
		IPAddress: sourceIP,
		Location:  location,
	}

	if err := qtx.Create(ctx, row); err != nil {
		// Two concurrent first attempts can both pass the read check;
		// the unique index turns the loser into the no-op outcome.
		if isDuplicateEvent(err) {
			return alreadyRecordedResponse(action, sourceIP, location), nil
		}
		s.logger.Error("attendance persist failed",
			zap.String("emp_id", empID),
			zap.String("action", action),
			zap.Error(err),
		)
		return CheckResponse{}, err
	}

	if s.outbox != nil {
		event := events.AttendanceRecordedEvent{
			EventType:  "attendance_recorded",
			RequestID:  rid,
			EmpID:      empID,
			Action:     action,
			Date:       today,
			Location:   location,
			OccurredAt: now.UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return CheckResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   empID,
			EventType:     event.EventType,
			Topic:         events.AttendanceRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return CheckResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CheckResponse{}, err
	}

	s.logger.Info("attendance recorded",
		zap.String("request_id", rid),
		zap.String("emp_id", empID),
		zap.String("action", action),
		zap.String("date", today),
		zap.String("location", location),
	)
	return recordedResponse(action, sourceIP, location), nil
}

// History folds the trailing 30 days of raw events into one record per
// calendar day, newest day first. Order of the output is an explicit
// sort on the day key, not an artifact of the fold.
func (s *service) History(ctx context.Context, empID string) ([]DayRecord, error) {
	since := time.Now().Add(-historyWindow)

	logs, err := s.repo.FindSince(ctx, empID, since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DayRecord)
	for _, l := range logs {
		rec, ok := byDay[l.Date]
		if !ok {
			rec = &DayRecord{Date: l.Date}
			byDay[l.Date] = rec
		}

		ts := l.Timestamp.Format(timeLayout)
		switch l.Action {
		case ActionCheckIn:
			rec.CheckIn = &ts
			loc, ip := l.Location, l.IPAddress
			rec.Location = &loc
			rec.IPAddress = &ip
		case ActionCheckOut:
			rec.CheckOut = &ts
		}
	}

	records := make([]DayRecord, 0, len(byDay))
	for _, rec := range byDay {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})

	return records, nil
}

func recordedResponse(action, ip, location string) CheckResponse {
	msg := "Check-in recorded"
	if action == ActionCheckOut {
		msg = "Check-out recorded"
	}
	return CheckResponse{Message: msg, IP: ip, Location: location}
}

func alreadyRecordedResponse(action, ip, location string) CheckResponse {
	msg := "Already checked in today"
	if action == ActionCheckOut {
		msg = "Already checked out today"
	}
	return CheckResponse{Message: msg, IP: ip, Location: location}
}
