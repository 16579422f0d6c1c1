package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

// DateLayout is the wire format of reminder dates.
const DateLayout = time.DateOnly

// CreateReminderRequest is the JSON body of a reminder creation request.
type CreateReminderRequest struct {
	UserID            string `json:"user_id" validate:"required,uuid"`
	Title             string `json:"title" validate:"required,max=200"`
	Description       string `json:"description" validate:"max=2000"`
	ReminderType      string `json:"reminder_type" validate:"required"`
	Frequency         string `json:"frequency" validate:"required"`
	StartDate         string `json:"start_date" validate:"required"`
	EndDate           string `json:"end_date"`
	NotificationEmail bool   `json:"notification_email"`
	NotificationSMS   bool   `json:"notification_sms"`
}

// ToModel parses the request into a reminder. Status and next date are left to the service.
func (r CreateReminderRequest) ToModel() (model.Reminder, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("invalid user_id: %w", err)
	}

	category, err := model.ParseCategory(r.ReminderType)
	if err != nil {
		return model.Reminder{}, err
	}

	frequency, err := model.ParseFrequency(r.Frequency)
	if err != nil {
		return model.Reminder{}, err
	}

	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("invalid start_date: %w", err)
	}

	rem := model.Reminder{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Category:    category,
		Frequency:   frequency,
		StartDate:   start,
		NotifyEmail: r.NotificationEmail,
		NotifySMS:   r.NotificationSMS,
	}

	if r.EndDate != "" {
		end, err := time.Parse(DateLayout, r.EndDate)
		if err != nil {
			return model.Reminder{}, fmt.Errorf("invalid end_date: %w", err)
		}

		rem.EndDate = &end
	}

	return rem, nil
}
