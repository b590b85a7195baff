package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
)

// NotificationRepository handles in-app notification storage
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

var _ NotificationStore = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *NotificationRepository) createQuery(n *models.Notification) squirrel.InsertBuilder {
	return r.sb.Insert("notifications").
		Columns("event_id", "recipient_id", "kind", "title", "message", "is_read", "created_at").
		Values(n.EventID, n.RecipientID, string(n.Kind), n.Title, n.Message, false, n.CreatedAt).
		Suffix("ON CONFLICT (event_id, recipient_id) DO NOTHING RETURNING id")
}

// CreateNotification stores a notification. A repeated event id for the same recipient is ignored.
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	sql, args, err := r.createQuery(n).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create notification query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&n.ID); err != nil {
			return fmt.Errorf("error scanning notification id: %w", err)
		}
	}

	return rows.Err()
}

// ListNotifications returns a user's most recent notifications
func (r *NotificationRepository) ListNotifications(ctx context.Context, recipientID int64, limit int) ([]*models.Notification, error) {
	query := r.sb.Select("id", "event_id", "recipient_id", "kind", "title", "message", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.EventID, &n.RecipientID, &n.Kind, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead marks one of the recipient's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "recipient_id": recipientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
