package worker

import (
	"context"
	"encoding/json"

	"github.com/mflath/TImesheets/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificationJobPayload is the job envelope sent to QueueNotifications.
type NotificationJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NotificationWorker sends vacation-decision emails via SMTP.
type NotificationWorker struct {
	mailer *infra.Mailer
}

func NewNotificationWorker(mailer *infra.Mailer) *NotificationWorker {
	return &NotificationWorker{mailer: mailer}
}

func (w *NotificationWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload NotificationJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notification_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notification_worker: empty to_email — skipping")
		return
	}

	if err := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notification_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("notification_worker: email sent")
}
