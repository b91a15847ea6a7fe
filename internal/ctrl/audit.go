package ctrl

import (
	"context"

	"github.com/veracourse/portal/internal/dto"
	"github.com/opentracing/opentracing-go"
)

// ListAuditEvents is deliberately uncached: the admin reading the audit
// trail usually reads it right after the event of interest.
func (c *Controller) ListAuditEvents(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedAuditEventResponse, error) {
	const op = "audit.ListAuditEvents.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListAuditEvents(ctx, page, size, filters)
}
