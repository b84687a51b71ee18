package consumer

import (
	"context"
	"encoding/json"

	"github.com/BibekanandaBariki/technnext-hrms/internal/events"
	"github.com/BibekanandaBariki/technnext-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollRunProcessed notifies each employee touched by a payroll run
// that their payslip is available. A failed send for one employee does not
// block the others; the event is only retried when nothing could be sent.
func ConsumePayrollRunProcessed(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run")
	log.Info("payroll run consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run consumer stopped")
				return
			}
			log.Error("fetch payroll run message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunProcessedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject, body := notification.PayslipReadyEmail(event.Year, event.Month)

		sent := 0
		for _, emp := range event.Employees {
			if err := mailer.Send(ctx, emp.Email, subject, body); err != nil {
				log.Error("send payslip notification failed",
					zap.String("employee_id", emp.EmployeeID),
					zap.Error(err),
				)
				continue
			}
			sent++
		}

		if sent == 0 && len(event.Employees) > 0 {
			// Leave the message uncommitted so the batch is retried.
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run message failed", zap.Error(err))
			continue
		}

		log.Info("payslip notifications sent",
			zap.Int("year", event.Year),
			zap.Int("month", event.Month),
			zap.Int("sent", sent),
			zap.Int("total", len(event.Employees)),
		)
	}
}
