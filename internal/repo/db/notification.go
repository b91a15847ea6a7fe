package db

import (
	"context"

	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

const notificationListForCategoryQ = `
SELECT id, title, body, category, attachment, created_at
FROM notifications
WHERE category = $1 OR category = ''
ORDER BY created_at DESC
`

const notificationCreateQ = `
INSERT INTO notifications (title, body, category, attachment)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const notificationDeleteQ = `
DELETE FROM notifications
WHERE id = $1
`

func (r *Repository) ListNotifications(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedNotificationResponse, error) {
	const op = "notifications.ListNotifications.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("notifications n").PlaceholderFormat(sq.Dollar)
	if category, ok := filters["category"].(string); ok && category != "" {
		query = query.Where(sq.Eq{"n.category": category})
	}

	countSql, countArgs, err := query.Columns("COUNT(n.id)").ToSql()
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, countSql, countArgs...); err != nil {
		return nil, err
	}

	dataSql, dataArgs, err := query.
		Columns("n.id", "n.title", "n.body", "n.category", "n.attachment", "n.created_at").
		OrderBy("n.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return nil, err
	}

	res := make([]*md.Notification, 0, size)
	if err = r.conn.SelectContext(ctx, &res, dataSql, dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedNotificationResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) ListNotificationsForCategory(
	ctx context.Context,
	category string,
) ([]*md.Notification, error) {
	const op = "notifications.ListNotificationsForCategory.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Notification, 0)
	err := r.conn.SelectContext(ctx, &res, notificationListForCategoryQ, category)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateNotification(ctx context.Context, n *md.Notification) (uuid.UUID, error) {
	const op = "notifications.CreateNotification.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		notificationCreateQ,
		n.Title,
		n.Body,
		n.Category,
		n.Attachment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	const op = "notifications.DeleteNotification.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, notificationDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
