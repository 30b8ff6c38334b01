package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/events"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/FlatBushZombies/quickhands/internal/metrics"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

const NotificationEvent = "notification:new"

type pusher interface {
	Push(userID string, event string, payload any)
}

type userLookup interface {
	GetByClerkID(ctx context.Context, clerkID string) (*entities.User, error)
}

type TelegramNotifier interface {
	Send(chatID int64, text string) error
}

// Dispatcher turns domain events into notifications. For every recipient the
// durable record is written first; the live push and the telegram mirror are
// best-effort on top of it. No failure on this path ever reaches the caller
// that triggered the event.
type Dispatcher struct {
	matcher       Matcher
	notifications notificationRepository
	hub           pusher
	users         userLookup
	telegram      TelegramNotifier
}

func NewDispatcher(bus EventBus.Bus, matcher Matcher, notifications notificationRepository,
	hub pusher, users userLookup, telegram TelegramNotifier) (*Dispatcher, error) {

	d := &Dispatcher{
		matcher:       matcher,
		notifications: notifications,
		hub:           hub,
		users:         users,
		telegram:      telegram,
	}

	if err := bus.Subscribe(events.JobPostedTopic, d.onJobPosted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationSubmittedTopic, d.onApplicationSubmitted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationStatusChangedTopic, d.onApplicationStatusChanged); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dispatcher) onJobPosted(event events.JobPosted) {

	start := time.Now()
	defer func() {
		metrics.DispatchDuration.WithLabelValues("job_posted").Observe(time.Since(start).Seconds())
	}()

	ctx := context.Background()
	recipients, err := d.matcher.MatchUsers(ctx, event.Job)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to match users for job %v: %v", event.Job.ID, err)
		return
	}

	message := fmt.Sprintf("New job matching your skills: %s", event.Job.ServiceType)

	notified := 0
	for _, recipient := range recipients {
		if recipient.ClerkID == event.Job.ClerkID {
			continue
		}
		if d.notify(ctx, recipient.ClerkID, event.Job.ID, message, nil) {
			notified++
		}
	}

	log.Infof("job %v dispatched to %v of %v matched users", event.Job.ID, notified, len(recipients))
}

func (d *Dispatcher) onApplicationSubmitted(event events.ApplicationSubmitted) {

	start := time.Now()
	defer func() {
		metrics.DispatchDuration.WithLabelValues("application_submitted").Observe(time.Since(start).Seconds())
	}()

	message := fmt.Sprintf("%s applied to your job: %s", event.Application.FreelancerName, event.Job.ServiceType)

	extra := map[string]any{
		"application": map[string]any{
			"id":              event.Application.ID,
			"freelancerName":  event.Application.FreelancerName,
			"freelancerEmail": event.Application.FreelancerEmail,
			"createdAt":       event.Application.CreatedAt,
		},
	}
	d.notify(context.Background(), event.Job.ClerkID, event.Job.ID, message, extra)
}

func (d *Dispatcher) onApplicationStatusChanged(event events.ApplicationStatusChanged) {

	start := time.Now()
	defer func() {
		metrics.DispatchDuration.WithLabelValues("application_status_changed").Observe(time.Since(start).Seconds())
	}()

	var message string
	if event.NewStatus == entities.ApplicationAccepted {
		message = fmt.Sprintf("Your application for %q has been accepted!", event.Job.ServiceType)
	} else {
		message = fmt.Sprintf("Your application for %q has been rejected", event.Job.ServiceType)
	}

	d.notify(context.Background(), event.Application.FreelancerClerkID, event.Job.ID, message, nil)
}

// notify writes the durable record, then attempts the live push and the
// telegram mirror. Reports whether the record was persisted.
func (d *Dispatcher) notify(ctx context.Context, recipientID string, jobID int, message string,
	extra map[string]any) bool {

	notification, err := d.notifications.Create(ctx, recipientID, jobID, message)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to create notification for user %v: %v", recipientID, err)
		return false
	}
	metrics.NotificationsCreatedCounter.Inc()

	payload := map[string]any{"notification": notification}
	for key, value := range extra {
		payload[key] = value
	}
	d.hub.Push(recipientID, NotificationEvent, payload)

	d.mirrorToTelegram(ctx, recipientID, message)
	return true
}

func (d *Dispatcher) mirrorToTelegram(ctx context.Context, recipientID string, message string) {
	if d.telegram == nil {
		return
	}

	user, err := d.users.GetByClerkID(ctx, recipientID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to look up user %v for telegram mirror: %v", recipientID, err)
		return
	}
	if user == nil || user.TelegramChatID == 0 {
		return
	}

	if err = d.telegram.Send(user.TelegramChatID, message); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTelegram).
			Errorf("failed to mirror notification to telegram chat %v: %v", user.TelegramChatID, err)
	}
}
