package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"crisislink/config"
	"crisislink/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu     sync.Mutex
	sent   []string
	bodies []string
	failOn map[string]error
	delay  time.Duration
}

func (s *recordingSender) Send(ctx context.Context, to, body string) error {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failOn[to]; ok {
		return err
	}

	s.sent = append(s.sent, to)
	s.bodies = append(s.bodies, body)
	return nil
}

func testContacts() []entity.EmergencyContact {
	return []entity.EmergencyContact{
		{Name: "Maria Silva", Phone: "+2389911111", Priority: 1},
		{Name: "Pedro Silva", Phone: "+2389922222", Priority: 2},
		{Name: "Ana Costa", Phone: "+2389933333", Priority: 3},
	}
}

func TestNotifyContacts_AllDelivered(t *testing.T) {
	sender := &recordingSender{}
	svc := NewNotificationService(logrus.New(), sender)

	svc.NotifyContacts(context.Background(), testContacts(), "Joao Silva", "")

	require.Equal(t, []string{"+2389911111", "+2389922222", "+2389933333"}, sender.sent)

	assert.Contains(t, sender.bodies[0], "EMERGENCY ALERT")
	assert.Contains(t, sender.bodies[0], "Joao Silva has activated their emergency profile.")
	assert.Contains(t, sender.bodies[0], "Location: Unknown")
	assert.Contains(t, sender.bodies[0], "emergency contact #1")
	assert.Contains(t, sender.bodies[2], "emergency contact #3")
}

func TestNotifyContacts_FailureDoesNotStopFanOut(t *testing.T) {
	sender := &recordingSender{
		failOn: map[string]error{"+2389922222": errors.New("carrier rejected")},
	}
	svc := NewNotificationService(logrus.New(), sender)

	svc.NotifyContacts(context.Background(), testContacts(), "Joao Silva", "")

	// Contact #2 fails, #1 and #3 still go out in order.
	assert.Equal(t, []string{"+2389911111", "+2389933333"}, sender.sent)
}

func TestNotifyContacts_LocationIncluded(t *testing.T) {
	sender := &recordingSender{}
	svc := NewNotificationService(logrus.New(), sender)

	contacts := testContacts()[:1]
	svc.NotifyContacts(context.Background(), contacts, "Joao Silva", "Location: Praia, Santiago")

	require.Len(t, sender.bodies, 1)
	assert.Contains(t, sender.bodies[0], "Location: Praia, Santiago")
	assert.NotContains(t, sender.bodies[0], "Location: Unknown")
}

func TestNotifyContacts_SlowSenderTimesOut(t *testing.T) {
	sender := &recordingSender{delay: 100 * time.Millisecond}
	svc := &notificationService{
		log:         logrus.New(),
		sender:      sender,
		sendTimeout: 10 * time.Millisecond,
	}

	svc.NotifyContacts(context.Background(), testContacts()[:1], "Joao Silva", "")

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Empty(t, sender.sent)
}

func TestNotifyContacts_NoContacts(t *testing.T) {
	sender := &recordingSender{}
	svc := NewNotificationService(logrus.New(), sender)

	svc.NotifyContacts(context.Background(), nil, "Joao Silva", "")

	assert.Empty(t, sender.sent)
}

func TestNewSMSSender_DryRunWithoutCredentials(t *testing.T) {
	sender := NewSMSSender(config.TwilioConfig{}, logrus.New())

	_, ok := sender.(*dryRunSender)
	require.True(t, ok)

	assert.NoError(t, sender.Send(context.Background(), "+2389911111", "test"))
}

func TestNewSMSSender_TwilioWithCredentials(t *testing.T) {
	sender := NewSMSSender(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "secret",
		FromNumber: "+15550000000",
	}, logrus.New())

	_, ok := sender.(*twilioSender)
	assert.True(t, ok)
}
