package consumer

import (
	"context"
	"encoding/json"
	"os"

	"github.com/BibekanandaBariki/technnext-hrms/internal/events"
	"github.com/BibekanandaBariki/technnext-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle sends the onboarding email for every
// employee_created event. Offsets are committed only after the mail
// is handed to the mailer, so a crashed consumer redelivers.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	loginLink := os.Getenv("FRONTEND_LOGIN_URL")
	if loginLink == "" {
		loginLink = "http://localhost:3000/login"
	}

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject, body := notification.OnboardingEmail(event.FullName, event.TempPassword, loginLink)
		if err := mailer.Send(ctx, event.Email, subject, body); err != nil {
			log.Error("send onboarding email failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding email sent",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
