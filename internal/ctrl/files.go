package ctrl

import (
	"context"
	"time"

	"github.com/veracourse/portal/internal/repo/s3"
	"github.com/opentracing/opentracing-go"
)

const attachmentURLTTL = time.Hour * 6

// UploadAttachment stores a file and returns its object key, which is
// what video and notification records reference.
func (c *Controller) UploadAttachment(
	ctx context.Context,
	req *s3.UploadFileRequest,
) (string, error) {
	const op = "files.UploadAttachment.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.s3.UploadFile(ctx, req)
}

// AttachmentURL returns a time-limited download URL for an object key.
func (c *Controller) AttachmentURL(ctx context.Context, object string) (string, error) {
	const op = "files.AttachmentURL.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.s3.PresignedURL(ctx, object, attachmentURLTTL)
}
