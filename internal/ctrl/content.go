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

type contentCtrl interface {
	ListSections(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSectionResponse, error)
	GetSection(ctx context.Context, id uuid.UUID) (*md.Section, error)
	ListStudentSections(ctx context.Context, allowed []uuid.UUID) ([]*md.Section, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.CreateIDResponse, error)
	UpdateSection(ctx context.Context, id uuid.UUID, req *dto.UpdateSectionRequest) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
	CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*dto.CreateIDResponse, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) error
	DeleteVideo(ctx context.Context, id uuid.UUID) error
}

const (
	sectionCacheKey    = "section:%v"
	sectionListKey     = "sections-list:%v:%v:%v"
	sectionPattern     = "sections-*"
	studentSectionsKey = "student-sections:%v"
)

func (c *Controller) ListSections(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSectionResponse, error) {
	const op = "content.ListSections.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedSectionResponse{}
	cacheKey := fmt.Sprintf(sectionListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListSections(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetSection(ctx context.Context, id uuid.UUID) (*md.Section, error) {
	const op = "content.GetSection.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.Section{}
	cacheKey := fmt.Sprintf(sectionCacheKey, id)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetSectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

// ListStudentSections returns the active sections the student's access
// code allows, videos included, in display order.
func (c *Controller) ListStudentSections(
	ctx context.Context,
	allowed []uuid.UUID,
) ([]*md.Section, error) {
	const op = "content.ListStudentSections.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(allowed) == 0 {
		return []*md.Section{}, nil
	}

	var cached []*md.Section
	cacheKey := fmt.Sprintf(studentSectionsKey, allowed)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListSectionsByIDs(ctx, allowed)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) CreateSection(
	ctx context.Context,
	req *dto.CreateSectionRequest,
) (*dto.CreateIDResponse, error) {
	const op = "content.CreateSection.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := c.repo.CreateSection(
		ctx, &md.Section{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Position:    req.Position,
			IsActive:    req.IsActive,
		},
	)
	if err != nil {
		return nil, err
	}

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return &dto.CreateIDResponse{ID: id}, nil
}

func (c *Controller) UpdateSection(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateSectionRequest,
) error {
	const op = "content.UpdateSection.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.UpdateSection(ctx, id, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(sectionCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return nil
}

func (c *Controller) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "content.DeleteSection.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteSection(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(sectionCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return nil
}

func (c *Controller) CreateVideo(
	ctx context.Context,
	req *dto.CreateVideoRequest,
) (*dto.CreateIDResponse, error) {
	const op = "content.CreateVideo.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.repo.GetSectionByID(ctx, req.SectionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	id, err := c.repo.CreateVideo(
		ctx, &md.Video{
			SectionID:   req.SectionID,
			Title:       req.Title,
			Description: req.Description,
			EmbedURL:    req.EmbedURL,
			Attachment:  req.Attachment,
			Position:    req.Position,
			DurationSec: req.DurationSec,
		},
	)
	if err != nil {
		return nil, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(sectionCacheKey, req.SectionID))

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return &dto.CreateIDResponse{ID: id}, nil
}

func (c *Controller) UpdateVideo(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateVideoRequest,
) error {
	const op = "content.UpdateVideo.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.UpdateVideo(ctx, id, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return nil
}

func (c *Controller) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	const op = "content.DeleteVideo.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteVideo(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	go c.cache.InvalidateKeysByPattern(ctx, sectionPattern)

	return nil
}
