package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/api/dto"
	"github.com/aliskhannn/legacy-reminder/internal/api/respond"
	"github.com/aliskhannn/legacy-reminder/internal/model"
	reminderrepo "github.com/aliskhannn/legacy-reminder/internal/repository/reminder"
	remindersvc "github.com/aliskhannn/legacy-reminder/internal/service/reminder"
)

// reminderService defines the reminder operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error)
	GetReminder(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	ListReminders(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Snooze(ctx context.Context, id uuid.UUID) error
	Resume(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, id uuid.UUID) ([]model.NotificationLogEntry, error)
}

type reminderEngine interface {
	ProcessDueReminders(ctx context.Context) (model.RunResult, error)
}

// Handler handles HTTP requests related to reminders.
type Handler struct {
	service   reminderService
	engine    reminderEngine
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s reminderService, e reminderEngine, v *validator.Validate) *Handler {
	return &Handler{service: s, engine: e, validator: v}
}

// ProcessResponse is the body of a successful manual engine run.
type ProcessResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
}

// Create handles POST requests that create a new reminder.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateReminderRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	rem, err := req.ToModel()
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid reminder")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.CreateReminder(c.Request.Context(), rem)
	if err != nil {
		if errors.Is(err, remindersvc.ErrInvalidDateRange) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("title", rem.Title).Msg("failed to create reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// List handles GET requests for all reminders of the user given by the user_id query parameter.
func (h *Handler) List(c *ginext.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil || userID == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user_id"))
		return
	}

	reminders, err := h.service.ListReminders(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if reminders == nil {
		reminders = []model.Reminder{}
	}

	respond.OK(c.Writer, reminders)
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rem, err := h.service.GetReminder(c.Request.Context(), id)
	if err != nil {
		failWithServiceError(c, id, err, "failed to get reminder")
		return
	}

	respond.OK(c.Writer, rem)
}

func (h *Handler) History(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		failWithServiceError(c, id, err, "failed to get notification history")
		return
	}

	if entries == nil {
		entries = []model.NotificationLogEntry{}
	}

	respond.OK(c.Writer, entries)
}

func (h *Handler) Cancel(c *ginext.Context) {
	h.changeStatus(c, h.service.Cancel, "reminder cancelled")
}

func (h *Handler) Snooze(c *ginext.Context) {
	h.changeStatus(c, h.service.Snooze, "reminder snoozed")
}

func (h *Handler) Resume(c *ginext.Context) {
	h.changeStatus(c, h.service.Resume, "reminder resumed")
}

func (h *Handler) changeStatus(c *ginext.Context, change func(context.Context, uuid.UUID) error, done string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := change(c.Request.Context(), id); err != nil {
		failWithServiceError(c, id, err, "failed to change reminder status")
		return
	}

	respond.OK(c.Writer, done)
}

// Process runs the recurrence engine once and reports how many reminders it handled.
func (h *Handler) Process(c *ginext.Context) {
	res, err := h.engine.ProcessDueReminders(c.Request.Context())
	if err != nil {
		if errors.Is(err, remindersvc.ErrRunInProgress) {
			respond.Fail(c.Writer, http.StatusConflict, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("reminder run failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, ProcessResponse{
		Success:   true,
		Processed: res.Processed,
	})
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func failWithServiceError(c *ginext.Context, id uuid.UUID, err error, msg string) {
	switch {
	case errors.Is(err, reminderrepo.ErrReminderNotFound):
		zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("reminder not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
	case errors.Is(err, remindersvc.ErrInvalidTransition), errors.Is(err, reminderrepo.ErrReminderChanged):
		respond.Fail(c.Writer, http.StatusConflict, err)
	default:
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
