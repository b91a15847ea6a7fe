package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) ListSections(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSectionResponse, error) {
	const op = "content.ListSections.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildSectionListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		return nil, err
	}

	res := make([]*md.Section, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedSectionResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) GetSectionByID(ctx context.Context, id uuid.UUID) (*md.Section, error) {
	const op = "content.GetSectionByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Section{}
	err := r.conn.GetContext(ctx, res, sectionGetByIDQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	videos := make([]md.Video, 0)
	if err = r.conn.SelectContext(ctx, &videos, videoListBySectionQ, id); err != nil {
		return nil, err
	}

	res.Videos = videos
	return res, nil
}

// ListSectionsByIDs returns the active subset of the given sections with
// their videos attached, ordered for display.
func (r *Repository) ListSectionsByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]*md.Section, error) {
	const op = "content.ListSectionsByIDs.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query, args, err := sqlx.In(sectionListByIDsQ, ids)
	if err != nil {
		return nil, err
	}

	sections := make([]*md.Section, 0, len(ids))
	err = r.conn.SelectContext(ctx, &sections, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	if len(sections) == 0 {
		return sections, nil
	}

	sectionIDs := make([]uuid.UUID, 0, len(sections))
	for _, s := range sections {
		sectionIDs = append(sectionIDs, s.ID)
	}

	query, args, err = sqlx.In(videoListBySectionsQ, sectionIDs)
	if err != nil {
		return nil, err
	}

	videos := make([]md.Video, 0)
	err = r.conn.SelectContext(ctx, &videos, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	bySection := make(map[uuid.UUID][]md.Video, len(sections))
	for _, v := range videos {
		bySection[v.SectionID] = append(bySection[v.SectionID], v)
	}

	for _, s := range sections {
		s.Videos = bySection[s.ID]
	}

	return sections, nil
}

func (r *Repository) CreateSection(ctx context.Context, s *md.Section) (uuid.UUID, error) {
	const op = "content.CreateSection.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		sectionCreateQ,
		s.Title,
		s.Description,
		s.Category,
		s.Position,
		s.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdateSection(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateSectionRequest,
) error {
	const op = "content.UpdateSection.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		sectionUpdateQ,
		req.Title,
		req.Description,
		req.Category,
		req.Position,
		req.IsActive,
		id,
	)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "content.DeleteSection.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, sectionDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) CreateVideo(ctx context.Context, v *md.Video) (uuid.UUID, error) {
	const op = "content.CreateVideo.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		videoCreateQ,
		v.SectionID,
		v.Title,
		v.Description,
		v.EmbedURL,
		v.Attachment,
		v.Position,
		v.DurationSec,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdateVideo(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateVideoRequest,
) error {
	const op = "content.UpdateVideo.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		videoUpdateQ,
		req.Title,
		req.Description,
		req.EmbedURL,
		req.Attachment,
		req.Position,
		req.DurationSec,
		id,
	)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	const op = "content.DeleteVideo.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, videoDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
