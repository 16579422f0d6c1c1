package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/service_mock.go -package=mocks

var (
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidTransition = errors.New("reminder status does not allow this change")
)

type reminderRepository interface {
	CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error)
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	GetRemindersByUser(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, status model.Status) error
	GetNotificationHistory(ctx context.Context, reminderID uuid.UUID) ([]model.NotificationLogEntry, error)
}

// Service manages reminders on behalf of their owners.
type Service struct {
	repo reminderRepository
}

func NewService(repo reminderRepository) *Service {
	return &Service{repo: repo}
}

// CreateReminder stores a new active reminder whose first occurrence is its start date.
func (s *Service) CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return model.Reminder{}, ErrInvalidDateRange
	}

	r.Status = model.StatusActive
	r.NextReminderDate = r.StartDate

	created, err := s.repo.CreateReminder(ctx, r)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	return created, nil
}

func (s *Service) GetReminder(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	r, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}

	return r, nil
}

func (s *Service) ListReminders(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	list, err := s.repo.GetRemindersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	return list, nil
}

// Cancel stops a reminder for good. Completed and cancelled reminders cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, model.StatusCancelled, func(cur model.Status) bool {
		return !cur.Terminal()
	})
}

// Snooze pauses an active reminder. Snoozed reminders are never due.
func (s *Service) Snooze(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, model.StatusSnoozed, func(cur model.Status) bool {
		return cur == model.StatusActive
	})
}

// Resume reactivates a snoozed reminder. If its next date has passed it is due on the next run.
func (s *Service) Resume(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, model.StatusActive, func(cur model.Status) bool {
		return cur == model.StatusSnoozed
	})
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to model.Status, allowed func(model.Status) bool) error {
	r, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reminder: %w", err)
	}

	if !allowed(r.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}

	if err := s.repo.UpdateStatus(ctx, id, r.Status, to); err != nil {
		return fmt.Errorf("update reminder status: %w", err)
	}

	return nil
}

// History returns the notification log of a reminder, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]model.NotificationLogEntry, error) {
	if _, err := s.repo.GetReminderByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}

	entries, err := s.repo.GetNotificationHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification history: %w", err)
	}

	return entries, nil
}
