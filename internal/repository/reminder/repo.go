package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrReminderChanged means the row no longer matches the state it was read in.
	ErrReminderChanged = errors.New("reminder changed concurrently")
)

const reminderColumns = `
	r.id, r.user_id, r.title, r.description, r.reminder_type, r.frequency,
	r.start_date, r.end_date, r.next_reminder_date, r.status,
	r.notification_email, r.notification_sms, r.created_at, r.updated_at`

// Repository provides methods to interact with reminders and notification_history tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new reminder and returns it with the generated fields set.
func (r *Repository) CreateReminder(ctx context.Context, rem model.Reminder) (model.Reminder, error) {
	query := `
		INSERT INTO reminders (
		    user_id, title, description, reminder_type, frequency,
		    start_date, end_date, next_reminder_date, status,
		    notification_email, notification_sms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		rem.UserID, rem.Title, rem.Description, string(rem.Category), string(rem.Frequency),
		rem.StartDate, nullTime(rem.EndDate), rem.NextReminderDate, string(rem.Status),
		rem.NotifyEmail, rem.NotifySMS,
	).Scan(&rem.ID, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem, nil
}

// GetReminderByID retrieves a reminder by its ID.
func (r *Repository) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := `SELECT` + reminderColumns + `
		FROM reminders r
		WHERE r.id = $1;
    `

	rem, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// GetRemindersByUser retrieves all reminders of a user ordered by next reminder date.
func (r *Repository) GetRemindersByUser(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	query := `SELECT` + reminderColumns + `
		FROM reminders r
		WHERE r.user_id = $1
		ORDER BY r.next_reminder_date ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}

		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

// UpdateStatus sets the status of a reminder if it is still in the expected status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, status model.Status) error {
	query := `
		UPDATE reminders
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, string(status), id, string(expected))
	if err != nil {
		return fmt.Errorf("failed to update reminder status: %w", err)
	}

	return expectOneRow(res)
}

// GetDueReminders retrieves active reminders whose next reminder date is not after now,
// together with the owner's contact details.
//
// Rows with values outside the known enumerations are skipped.
func (r *Repository) GetDueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	query := `SELECT` + reminderColumns + `,
		       COALESCE(p.email, ''), COALESCE(p.phone, '')
		FROM reminders r
		LEFT JOIN profiles p ON p.id = r.user_id
		WHERE r.status = $1 AND r.next_reminder_date <= $2
		ORDER BY r.next_reminder_date ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, string(model.StatusActive), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var (
			raw       rawReminder
			recipient model.Recipient
		)

		if err := rows.Scan(append(raw.dest(), &recipient.Email, &recipient.Phone)...); err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}

		rem, err := raw.toModel()
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("id", raw.id.String()).Msg("skipping malformed reminder")
			continue
		}

		rem.Recipient = recipient
		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due reminders: %w", err)
	}

	return reminders, nil
}

// UpdateNextReminderDate moves an active reminder from expected to next.
// It returns ErrReminderChanged if the reminder was modified since it was read.
func (r *Repository) UpdateNextReminderDate(ctx context.Context, id uuid.UUID, expected, next time.Time) error {
	query := `
		UPDATE reminders
		SET next_reminder_date = $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND next_reminder_date = $4;
    `

	res, err := r.db.ExecContext(ctx, query, next, id, string(model.StatusActive), expected)
	if err != nil {
		return fmt.Errorf("failed to update next reminder date: %w", err)
	}

	return expectOneRow(res)
}

// CompleteReminder marks an active reminder completed without touching its dates.
// It returns ErrReminderChanged if the reminder was modified since it was read.
func (r *Repository) CompleteReminder(ctx context.Context, id uuid.UUID, expected time.Time) error {
	query := `
		UPDATE reminders
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND next_reminder_date = $4;
    `

	res, err := r.db.ExecContext(ctx, query, string(model.StatusCompleted), id, string(model.StatusActive), expected)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}

	return expectOneRow(res)
}

// InsertNotificationLog appends a notification history entry.
func (r *Repository) InsertNotificationLog(ctx context.Context, entry model.NotificationLogEntry) error {
	query := `
		INSERT INTO notification_history (
		    reminder_id, notification_date, notification_type, status, error_message
		) VALUES ($1, $2, $3, $4, $5);
    `

	var errMsg any
	if entry.ErrorMessage != nil {
		errMsg = *entry.ErrorMessage
	}

	_, err := r.db.ExecContext(
		ctx, query,
		entry.ReminderID, entry.NotificationDate, string(entry.NotificationType), string(entry.Status), errMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification log: %w", err)
	}

	return nil
}

// GetNotificationHistory retrieves the notification log of a reminder, newest first.
func (r *Repository) GetNotificationHistory(ctx context.Context, reminderID uuid.UUID) ([]model.NotificationLogEntry, error) {
	query := `
		SELECT id, reminder_id, notification_date, notification_type, status, error_message
		FROM notification_history
		WHERE reminder_id = $1
		ORDER BY notification_date DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification history: %w", err)
	}
	defer rows.Close()

	var entries []model.NotificationLogEntry
	for rows.Next() {
		var (
			e            model.NotificationLogEntry
			typ, outcome string
			errMsg       sql.NullString
		)

		if err := rows.Scan(&e.ID, &e.ReminderID, &e.NotificationDate, &typ, &outcome, &errMsg); err != nil {
			return nil, fmt.Errorf("failed to scan notification log: %w", err)
		}

		if e.NotificationType, err = model.ParseNotificationType(typ); err != nil {
			return nil, err
		}

		if e.Status, err = model.ParseOutcome(outcome); err != nil {
			return nil, err
		}

		if errMsg.Valid {
			e.ErrorMessage = &errMsg.String
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification history: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// rawReminder mirrors a reminders row before enum validation.
type rawReminder struct {
	id, userID             uuid.UUID
	title, description     string
	category, frequency    string
	startDate, nextDate    time.Time
	endDate                sql.NullTime
	status                 string
	notifyEmail, notifySMS bool
	createdAt, updatedAt   time.Time
}

func (raw *rawReminder) dest() []any {
	return []any{
		&raw.id, &raw.userID, &raw.title, &raw.description, &raw.category, &raw.frequency,
		&raw.startDate, &raw.endDate, &raw.nextDate, &raw.status,
		&raw.notifyEmail, &raw.notifySMS, &raw.createdAt, &raw.updatedAt,
	}
}

func (raw *rawReminder) toModel() (model.Reminder, error) {
	category, err := model.ParseCategory(raw.category)
	if err != nil {
		return model.Reminder{}, err
	}

	frequency, err := model.ParseFrequency(raw.frequency)
	if err != nil {
		return model.Reminder{}, err
	}

	status, err := model.ParseStatus(raw.status)
	if err != nil {
		return model.Reminder{}, err
	}

	rem := model.Reminder{
		ID:               raw.id,
		UserID:           raw.userID,
		Title:            raw.title,
		Description:      raw.description,
		Category:         category,
		Frequency:        frequency,
		StartDate:        raw.startDate,
		NextReminderDate: raw.nextDate,
		Status:           status,
		NotifyEmail:      raw.notifyEmail,
		NotifySMS:        raw.notifySMS,
		CreatedAt:        raw.createdAt,
		UpdatedAt:        raw.updatedAt,
	}

	if raw.endDate.Valid {
		end := raw.endDate.Time
		rem.EndDate = &end
	}

	return rem, nil
}

func scanReminder(row rowScanner) (model.Reminder, error) {
	var raw rawReminder
	if err := row.Scan(raw.dest()...); err != nil {
		return model.Reminder{}, err
	}

	return raw.toModel()
}

func expectOneRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if rows == 0 {
		return ErrReminderChanged
	}

	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}
