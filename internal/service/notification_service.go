package service

import (
	"context"
	"fmt"
	"time"

	"crisislink/config"
	"crisislink/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Per-contact delivery budget. One unreachable carrier must not stall the
// rest of the fan-out.
const defaultSendTimeout = 10 * time.Second

// SMSSender delivers a single message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// NotificationService alerts a patient's emergency contacts after a
// disclosure. Delivery is best-effort: per-contact failures are logged and
// never propagated to the caller.
type NotificationService interface {
	NotifyContacts(ctx context.Context, contacts []entity.EmergencyContact, patientName, location string)
}

type notificationService struct {
	log         *logrus.Logger
	sender      SMSSender
	sendTimeout time.Duration
}

func NewNotificationService(log *logrus.Logger, sender SMSSender) NotificationService {
	return &notificationService{
		log:         log,
		sender:      sender,
		sendTimeout: defaultSendTimeout,
	}
}

// NotifyContacts sends the emergency alert to each contact in the order
// given (callers pass the registry's priority ordering). A failed or
// timed-out send is logged and the loop moves on to the next contact.
func (s *notificationService) NotifyContacts(ctx context.Context, contacts []entity.EmergencyContact, patientName, location string) {
	if location == "" {
		location = "Location: Unknown"
	}

	for _, contact := range contacts {
		body := formatAlertMessage(patientName, location, contact.Priority)

		if err := s.sendWithTimeout(ctx, contact.Phone, body); err != nil {
			s.log.Warnf("Failed to notify emergency contact %s (priority %d): %+v", contact.Phone, contact.Priority, err)
			continue
		}

		s.log.Infof("Notified emergency contact priority %d for %s", contact.Priority, patientName)
	}
}

func (s *notificationService) sendWithTimeout(ctx context.Context, to, body string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sender.Send(sendCtx, to, body)
	}()

	select {
	case err := <-done:
		return err
	case <-sendCtx.Done():
		return sendCtx.Err()
	}
}

func formatAlertMessage(patientName, location string, priority int) string {
	return fmt.Sprintf(
		"EMERGENCY ALERT\n\n%s has activated their emergency profile.\n\n%s\n\nFirst responders have been notified.\nYou are listed as emergency contact #%d.\n\nReply CONFIRM when you receive this message.",
		patientName, location, priority,
	)
}

// twilioSender delivers through the Twilio REST API.
type twilioSender struct {
	client *twilio.RestClient
	from   string
}

// dryRunSender logs instead of sending. Used when Twilio credentials are not
// configured so local environments exercise the full fan-out path.
type dryRunSender struct {
	log *logrus.Logger
}

// NewSMSSender returns a Twilio-backed sender, or a dry-run sender when
// credentials are absent.
func NewSMSSender(cfg config.TwilioConfig, log *logrus.Logger) SMSSender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		log.Info("Twilio credentials not configured, SMS dispatcher running in dry-run mode")
		return &dryRunSender{log: log}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioSender{client: client, from: cfg.FromNumber}
}

func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}

func (s *dryRunSender) Send(ctx context.Context, to, body string) error {
	s.log.Infof("SMS would be sent to %s: %s", to, body)
	return nil
}
