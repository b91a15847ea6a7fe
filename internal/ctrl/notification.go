package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type notificationCtrl interface {
	ListNotifications(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedNotificationResponse, error)
	ListStudentNotifications(ctx context.Context, category string) ([]*md.Notification, error)
	CreateNotification(
		ctx context.Context,
		req *dto.CreateNotificationRequest,
	) (*dto.CreateIDResponse, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}

const (
	notificationListKey    = "notifications-list:%v:%v:%v"
	notificationPattern    = "notifications-*"
	studentNotificationKey = "notifications-student:%v"
)

func (c *Controller) ListNotifications(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedNotificationResponse, error) {
	const op = "notifications.ListNotifications.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedNotificationResponse{}
	cacheKey := fmt.Sprintf(notificationListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListNotifications(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// ListStudentNotifications returns notifications targeting the given
// category plus the ones addressed to everyone.
func (c *Controller) ListStudentNotifications(
	ctx context.Context,
	category string,
) ([]*md.Notification, error) {
	const op = "notifications.ListStudentNotifications.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cached []*md.Notification
	cacheKey := fmt.Sprintf(studentNotificationKey, category)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListNotificationsForCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateNotification(
	ctx context.Context,
	req *dto.CreateNotificationRequest,
) (*dto.CreateIDResponse, error) {
	const op = "notifications.CreateNotification.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateNotification(
		ctx, &md.Notification{
			Title:      req.Title,
			Body:       req.Body,
			Category:   req.Category,
			Attachment: req.Attachment,
		},
	)
	if err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, notificationPattern)

	return &dto.CreateIDResponse{ID: id}, nil
}

func (c *Controller) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	const op = "notifications.DeleteNotification.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteNotification(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.cache.InvalidateKeysByPattern(ctx, notificationPattern)

	return nil
}
