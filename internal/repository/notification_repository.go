package repository

import (
	"context"
	"database/sql"
	"time"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/snowflake"
)

type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	List(ctx context.Context, limit int) ([]model.Notification, error)
}

type notificationRepository struct {
	db dbtx
}

func NewNotificationRepository(db dbtx) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	n.ID = snowflake.NextID()
	n.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO notifications (id, kind, apod_date, keyword, title, body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Kind, n.ApodDate, n.Keyword, n.Title, n.Body, formatTime(n.CreatedAt),
	)
	if err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepository) List(ctx context.Context, limit int) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, kind, apod_date, keyword, title, body, created_at
		 FROM notifications ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func scanNotification(rows *sql.Rows) (model.Notification, error) {
	var n model.Notification
	var createdAt string

	err := rows.Scan(&n.ID, &n.Kind, &n.ApodDate, &n.Keyword, &n.Title, &n.Body, &createdAt)
	if err != nil {
		return model.Notification{}, err
	}

	n.CreatedAt, _ = parseTime(createdAt)
	return n, nil
}
