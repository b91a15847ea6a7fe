package db

import (
	"context"

	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
)

const auditEventCreateQ = `
INSERT INTO audit_events (id, kind, description, subject_id, severity, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *Repository) CreateAuditEvent(ctx context.Context, ev *md.AuditEvent) error {
	const op = "audit.CreateAuditEvent.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		auditEventCreateQ,
		ev.ID,
		ev.Kind,
		ev.Description,
		ev.SubjectID,
		ev.Severity,
		ev.Metadata,
		ev.CreatedAt,
	)
	return err
}

func (r *Repository) ListAuditEvents(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedAuditEventResponse, error) {
	const op = "audit.ListAuditEvents.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("audit_events e").PlaceholderFormat(sq.Dollar)

	if severity, ok := filters["severity"].(string); ok && severity != "" {
		query = query.Where(sq.Eq{"e.severity": severity})
	}

	if kind, ok := filters["kind"].(string); ok && kind != "" {
		query = query.Where(sq.Eq{"e.kind": kind})
	}

	if subject, ok := filters["subject_id"].(string); ok && subject != "" {
		query = query.Where(sq.Eq{"e.subject_id": subject})
	}

	countSql, countArgs, err := query.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, countSql, countArgs...); err != nil {
		return nil, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"e.id",
			"e.kind",
			"e.description",
			"e.subject_id",
			"e.severity",
			"e.metadata",
			"e.created_at",
		).
		OrderBy("e.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return nil, err
	}

	res := make([]*md.AuditEvent, 0, size)
	if err = r.conn.SelectContext(ctx, &res, dataSql, dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedAuditEventResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}
