package reminder

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/legacy-reminder/internal/api/dto"
	mocks "github.com/aliskhannn/legacy-reminder/internal/mocks/api/handlers/reminder"
	"github.com/aliskhannn/legacy-reminder/internal/model"
	reminderrepo "github.com/aliskhannn/legacy-reminder/internal/repository/reminder"
	remindersvc "github.com/aliskhannn/legacy-reminder/internal/service/reminder"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreminderService, *mocks.MockreminderEngine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)
	mockEngine := mocks.NewMockreminderEngine(ctrl)
	handler := NewHandler(mockService, mockEngine, validator.New())
	return handler, mockService, mockEngine
}

func newContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	return c, w
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	userID := uuid.New()
	reqBody := dto.CreateReminderRequest{
		UserID:            userID.String(),
		Title:             "Car insurance",
		ReminderType:      "Insurance Premium",
		Frequency:         "Yearly",
		StartDate:         "2025-03-01",
		NotificationEmail: true,
	}
	bodyBytes, _ := json.Marshal(reqBody)

	c, w := newContext(http.MethodPost, "/api/reminders", bodyBytes)

	want := model.Reminder{
		UserID:      userID,
		Title:       "Car insurance",
		Category:    model.CategoryInsurancePremium,
		Frequency:   model.FrequencyYearly,
		StartDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		NotifyEmail: true,
	}
	created := want
	created.ID = uuid.New()
	created.Status = model.StatusActive
	created.NextReminderDate = want.StartDate

	mockService.EXPECT().CreateReminder(gomock.Any(), want).Return(created, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), created.ID.String())
	assert.Contains(t, w.Body.String(), `"status":"Active"`)
}

func TestHandler_Create_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.CreateReminderRequest{UserID: "not-a-uuid", Title: "x"})
	c, w := newContext(http.MethodPost, "/api/reminders", bodyBytes)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Create_UnknownFrequency(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.CreateReminderRequest{
		UserID:       uuid.NewString(),
		Title:        "x",
		ReminderType: "Custom",
		Frequency:    "Fortnightly",
		StartDate:    "2025-03-01",
	})
	c, w := newContext(http.MethodPost, "/api/reminders", bodyBytes)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown frequency")
}

func TestHandler_Create_InvalidDateRange(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.CreateReminderRequest{
		UserID:       uuid.NewString(),
		Title:        "x",
		ReminderType: "Custom",
		Frequency:    "Daily",
		StartDate:    "2025-03-01",
		EndDate:      "2025-02-01",
	})
	c, w := newContext(http.MethodPost, "/api/reminders", bodyBytes)

	mockService.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(model.Reminder{}, remindersvc.ErrInvalidDateRange)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_List(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	userID := uuid.New()

	c, w := newContext(http.MethodGet, "/api/reminders?user_id="+userID.String(), nil)

	mockService.EXPECT().ListReminders(gomock.Any(), userID).Return(nil, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":[]}`, w.Body.String())
}

func TestHandler_List_MissingUser(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/reminders", nil)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	id := uuid.New()

	c, w := newContext(http.MethodGet, "/api/reminders/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().GetReminder(gomock.Any(), id).Return(model.Reminder{}, reminderrepo.ErrReminderNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/reminders/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_History(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	id := uuid.New()

	c, w := newContext(http.MethodGet, "/api/reminders/"+id.String()+"/history", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	entries := []model.NotificationLogEntry{
		model.NewLogEntry(id, time.Now(), model.NotificationSMS, errors.New("gateway down")),
	}
	mockService.EXPECT().History(gomock.Any(), id).Return(entries, nil)

	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"error_message":"gateway down"`)
}

func TestHandler_StatusChanges(t *testing.T) {
	tests := []struct {
		name   string
		expect func(*mocks.MockreminderService, uuid.UUID) *gomock.Call
		call   func(*Handler, *gin.Context)
		err    error
		code   int
	}{
		{
			name:   "cancel",
			expect: func(m *mocks.MockreminderService, id uuid.UUID) *gomock.Call { return m.EXPECT().Cancel(gomock.Any(), id) },
			call:   (*Handler).Cancel,
			code:   http.StatusOK,
		},
		{
			name:   "snooze conflict",
			expect: func(m *mocks.MockreminderService, id uuid.UUID) *gomock.Call { return m.EXPECT().Snooze(gomock.Any(), id) },
			call:   (*Handler).Snooze,
			err:    remindersvc.ErrInvalidTransition,
			code:   http.StatusConflict,
		},
		{
			name:   "resume failure",
			expect: func(m *mocks.MockreminderService, id uuid.UUID) *gomock.Call { return m.EXPECT().Resume(gomock.Any(), id) },
			call:   (*Handler).Resume,
			err:    errors.New("db down"),
			code:   http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService, _ := setupHandler(t)
			id := uuid.New()

			c, w := newContext(http.MethodPost, "/api/reminders/"+id.String(), nil)
			c.Params = gin.Params{{Key: "id", Value: id.String()}}

			tc.expect(mockService, id).Return(tc.err)

			tc.call(handler, c)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_Process(t *testing.T) {
	handler, _, mockEngine := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/reminders/process", nil)

	mockEngine.EXPECT().ProcessDueReminders(gomock.Any()).Return(model.RunResult{Processed: 2, Failed: 1}, nil)

	handler.Process(c)

	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"success": true, "processed": 2}`, w.Body.String())
}

func TestHandler_Process_Errors(t *testing.T) {
	handler, _, mockEngine := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/reminders/process", nil)
	mockEngine.EXPECT().ProcessDueReminders(gomock.Any()).Return(model.RunResult{}, errors.New("get due reminders: db down"))

	handler.Process(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"get due reminders: db down"}`, w.Body.String())

	c, w = newContext(http.MethodPost, "/api/reminders/process", nil)
	mockEngine.EXPECT().ProcessDueReminders(gomock.Any()).Return(model.RunResult{}, remindersvc.ErrRunInProgress)

	handler.Process(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
