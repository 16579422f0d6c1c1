package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

func TestCreateReminderRequest_ToModel(t *testing.T) {
	userID := uuid.New()
	req := CreateReminderRequest{
		UserID:            userID.String(),
		Title:             "Passport",
		ReminderType:      "document_renewal",
		Frequency:         "yearly",
		StartDate:         "2024-02-29",
		EndDate:           "2030-02-28",
		NotificationEmail: true,
	}

	r, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, userID, r.UserID)
	assert.Equal(t, model.CategoryDocumentRenewal, r.Category)
	assert.Equal(t, model.FrequencyYearly, r.Frequency)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), r.StartDate)
	require.NotNil(t, r.EndDate)
	assert.Equal(t, time.Date(2030, time.February, 28, 0, 0, 0, 0, time.UTC), *r.EndDate)
	assert.True(t, r.NotifyEmail)
	assert.False(t, r.NotifySMS)
}

func TestCreateReminderRequest_ToModel_Errors(t *testing.T) {
	valid := CreateReminderRequest{
		UserID:       uuid.NewString(),
		Title:        "x",
		ReminderType: "Custom",
		Frequency:    "Once",
		StartDate:    "2025-01-01",
	}

	tests := []struct {
		name   string
		mutate func(*CreateReminderRequest)
		want   error
	}{
		{"frequency", func(r *CreateReminderRequest) { r.Frequency = "Hourly" }, model.ErrUnknownFrequency},
		{"category", func(r *CreateReminderRequest) { r.ReminderType = "Tax" }, model.ErrUnknownCategory},
		{"start date", func(r *CreateReminderRequest) { r.StartDate = "01/02/2025" }, nil},
		{"end date", func(r *CreateReminderRequest) { r.EndDate = "soon" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			_, err := req.ToModel()
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
