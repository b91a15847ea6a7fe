package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func buildSectionListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "content.buildSectionListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("sections s").PlaceholderFormat(sq.Dollar)

	if isActive, ok := filters["is_active"].(bool); ok {
		query = query.Where(sq.Eq{"s.is_active": isActive})
	}

	if category, ok := filters["category"].(string); ok && category != "" {
		query = query.Where(sq.Eq{"s.category": category})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT s.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"s.id",
			"s.title",
			"s.description",
			"s.category",
			"s.position",
			"s.is_active",
			"s.created_at",
			"s.updated_at",
		).
		OrderBy("s.position", "s.created_at").
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
