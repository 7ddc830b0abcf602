package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/clientlink"
	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/booking-scheduler/internal/models"
	"github.com/BruksfildServices01/booking-scheduler/internal/notify"
	"github.com/BruksfildServices01/booking-scheduler/internal/timezone"
)

const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
)

// ======================================================
// INPUTS
// ======================================================

type MasterNotificationInput struct {
	ClientID uint
	Action   string // "new", "update", "cancel"
}

type Settings struct {
	MasterID              any
	NotificationsEnabled  bool
	NotificationFrequency string
}

// ======================================================
// USE CASE
// ======================================================

// Notifications composes reminders and admin responses. Nothing is
// delivered or persisted; the notifier only records the composed text.
type Notifications struct {
	repo     domain.Store
	notifier notify.Notifier
	links    *clientlink.Issuer
	audit    audit.Recorder
	loc      *time.Location
}

func NewNotifications(
	repo domain.Store,
	notifier notify.Notifier,
	links *clientlink.Issuer,
	audit audit.Recorder,
	loc *time.Location,
) *Notifications {
	return &Notifications{
		repo:     repo,
		notifier: notifier,
		links:    links,
		audit:    audit,
		loc:      loc,
	}
}

// booking resolves client → schedule → service; any miss is NotFoundError.
type booking struct {
	client   *models.Client
	schedule *models.Schedule
	service  *models.Service
}

func (uc *Notifications) resolve(ctx context.Context, clientID uint) (*booking, error) {
	client, err := uc.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.repo.GetSchedule(ctx, client.ScheduleID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, schedule.ServiceID)
	if err != nil {
		return nil, err
	}

	return &booking{client: client, schedule: schedule, service: service}, nil
}

// RemindClient composes the appointment reminder for a client.
func (uc *Notifications) RemindClient(ctx context.Context, clientID uint) (notify.Message, error) {
	b, err := uc.resolve(ctx, clientID)
	if err != nil {
		return notify.Message{}, err
	}

	msg := notify.Message{
		Kind:      "client_reminder",
		Recipient: b.client.Phone,
		Text: fmt.Sprintf(
			"Reminder: %s is scheduled for %s",
			b.service.Name,
			timezone.FormatISO(b.schedule.Date, uc.loc),
		),
	}

	if err := uc.notifier.Notify(ctx, msg); err != nil {
		return notify.Message{}, fmt.Errorf("notify client %d: %w", clientID, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_notified",
		Entity:   "client",
		EntityID: &b.client.ID,
	})

	return msg, nil
}

// NotifyMaster composes the message the master receives when a booking changes.
func (uc *Notifications) NotifyMaster(ctx context.Context, in MasterNotificationInput) (notify.Message, error) {
	b, err := uc.resolve(ctx, in.ClientID)
	if err != nil {
		return notify.Message{}, err
	}

	msg := notify.Message{
		Kind:      "master_" + in.Action,
		Recipient: "master",
		Text: fmt.Sprintf(
			"Master notification: %s booking for %s for %s (%s) at %s",
			in.Action,
			b.service.Name,
			b.client.Name,
			b.client.Phone,
			timezone.FormatISO(b.schedule.Date, uc.loc),
		),
	}

	if err := uc.notifier.Notify(ctx, msg); err != nil {
		return notify.Message{}, fmt.Errorf("notify master about client %d: %w", in.ClientID, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "master_notified",
		Entity:   "client",
		EntityID: &b.client.ID,
		Metadata: map[string]any{"action": in.Action},
	})

	return msg, nil
}

// ApplySettings fills defaults and echoes the effective settings back.
func (uc *Notifications) ApplySettings(_ context.Context, masterID any, enabled *bool, frequency *string) Settings {
	s := Settings{
		MasterID:              masterID,
		NotificationsEnabled:  true,
		NotificationFrequency: FrequencyImmediate,
	}
	if enabled != nil {
		s.NotificationsEnabled = *enabled
	}
	if frequency != nil {
		s.NotificationFrequency = *frequency
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "notification_settings_changed",
		Entity:   "master",
		Metadata: map[string]any{"master_id": masterID, "enabled": s.NotificationsEnabled, "frequency": s.NotificationFrequency},
	})

	return s
}

func (uc *Notifications) SetupAdmin(_ context.Context, telegramID any) {
	uc.audit.Dispatch(audit.Event{
		Action:   "admin_setup",
		Entity:   "admin",
		Metadata: map[string]any{"telegram_id": telegramID},
	})
}

func (uc *Notifications) GenerateClientLink(_ context.Context) (clientlink.Link, error) {
	link, err := uc.links.Issue()
	if err != nil {
		return clientlink.Link{}, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_link_generated",
		Entity:   "admin",
		Metadata: map[string]any{"expires_at": link.ExpiresAt},
	})

	return link, nil
}
