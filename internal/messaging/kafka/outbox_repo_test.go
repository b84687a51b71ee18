package kafka

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "payroll_run",
		AggregateID:   uuid.NewString(),
		EventType:     "payroll_run_processed",
		Topic:         "hr.payroll.run.v1",
		Payload:       []byte(`{"year":2026,"month":3}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), pendingEvent())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsUnsendableEvents(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	cases := []struct {
		name   string
		mutate func(e *OutboxEvent)
	}{
		{"missing id", func(e *OutboxEvent) { e.ID = "" }},
		{"missing topic", func(e *OutboxEvent) { e.Topic = "" }},
		{"empty payload", func(e *OutboxEvent) { e.Payload = nil }},
		{"unknown status", func(e *OutboxEvent) { e.Status = "queued" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := pendingEvent()
			tc.mutate(&event)

			err := repo.Create(context.Background(), event)
			assert.Error(t, err)
		})
	}

	// Nothing reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}
