package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			"8f14e45f-ceea-4e46-9a5a-000000000001",
			"req-1",
			"attendance",
			"E001",
			"attendance.recorded",
			"attendance.event.recorded.v1",
			[]byte(`{"emp_id":"E001"}`),
			kafka.OutboxStatusPending,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(context.Background(), kafka.OutboxEvent{
		ID:            "8f14e45f-ceea-4e46-9a5a-000000000001",
		RequestID:     "req-1",
		AggregateType: "attendance",
		AggregateID:   "E001",
		EventType:     "attendance.recorded",
		Topic:         "attendance.event.recorded.v1",
		Payload:       []byte(`{"emp_id":"E001"}`),
		Status:        kafka.OutboxStatusPending,
	})
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPendingScansRows(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow(
			"8f14e45f-ceea-4e46-9a5a-000000000001", "attendance", "E001", "attendance.recorded",
			"attendance.event.recorded.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, time.Now(),
		))

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "attendance.event.recorded.v1", events[0].Topic)
		assert.Equal(t, kafka.OutboxStatusPending, events[0].Status)
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectExec("UPDATE outbox_events").
		WithArgs("id-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("UPDATE outbox_events").
		WithArgs("id-2", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), "id-1"))
	assert.NoError(t, repo.MarkFailed(context.Background(), "id-2", "broker unreachable"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      "id-1",
		Topic:   "attendance.event.recorded.v1",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	emptyPayload := valid
	emptyPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(emptyPayload))

	badStatus := valid
	badStatus.Status = "done"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
