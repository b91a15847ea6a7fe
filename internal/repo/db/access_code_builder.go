package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type listQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildAccessCodeListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "accessCodes.buildAccessCodeListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("access_codes a").PlaceholderFormat(sq.Dollar)

	if isActive, ok := filters["is_active"].(bool); ok {
		query = query.Where(sq.Eq{"a.is_active": isActive})
	}

	if category, ok := filters["category"].(string); ok && category != "" {
		query = query.Where(sq.Eq{"a.category": category})
	}

	if bound, ok := filters["bound"].(bool); ok {
		if bound {
			query = query.Where(sq.NotEq{"a.device_id": nil})
		} else {
			query = query.Where(sq.Eq{"a.device_id": nil})
		}
	}

	if search, ok := filters["search"].(string); ok && search != "" {
		query = query.Where(
			sq.Or{
				sq.ILike{"a.student_name": "%" + search + "%"},
				sq.ILike{"a.code": "%" + search + "%"},
				sq.ILike{"a.phone_number": "%" + search + "%"},
			},
		)
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT a.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"a.id",
			"a.code",
			"a.student_name",
			"a.phone_number",
			"a.category",
			"a.allowed_sections",
			"a.is_active",
			"a.expiry_date",
			"a.device_id",
			"a.device_info",
			"a.session_token",
			"a.session_expiry",
			"a.force_reauth",
			"a.login_count",
			"a.reset_count",
			"a.last_login_at",
			"a.created_at",
			"a.updated_at",
		).
		OrderBy("a.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
