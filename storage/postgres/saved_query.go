package postgres

import (
	"context"
	"encoding/json"

	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/models"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	psqlpool "ucode/ucode_go_query_builder_service/pool"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type savedQueryRepo struct {
	db  *psqlpool.Pool
	log logger.LoggerI
	sb  squirrel.StatementBuilderType
}

func NewSavedQueryRepo(db *psqlpool.Pool, log logger.LoggerI) *savedQueryRepo {
	return &savedQueryRepo{
		db:  db,
		log: log,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *savedQueryRepo) Create(ctx context.Context, req *models.SavedQuery) (string, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "saved_query.Create", req)
	defer dbSpan.Finish()

	id := uuid.NewString()
	req.Query.Id = id

	body, err := json.Marshal(req.Query)
	if err != nil {
		return "", errors.Wrap(err, "marshal query model")
	}

	query, args, err := r.sb.Insert("saved_queries").
		Columns("id", "name", "query").
		Values(id, req.Name, body).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "build insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return "", errors.Wrap(err, "insert saved query")
	}

	return id, nil
}

func (r *savedQueryRepo) GetByID(ctx context.Context, id string) (*models.SavedQuery, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "saved_query.GetByID", id)
	defer dbSpan.Finish()

	query, args, err := r.sb.Select("id", "name", "query", "created_at::text", "updated_at::text").
		From("saved_queries").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}

	var (
		resp models.SavedQuery
		body []byte
	)

	err = r.db.QueryRow(ctx, query, args...).Scan(&resp.Id, &resp.Name, &body, &resp.CreatedAt, &resp.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "select saved query")
	}

	if err := json.Unmarshal(body, &resp.Query); err != nil {
		return nil, errors.Wrap(err, "unmarshal query model")
	}

	return &resp, nil
}

func (r *savedQueryRepo) GetAll(ctx context.Context, req *models.GetAllSavedQueriesRequest) (*models.GetAllSavedQueriesResponse, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "saved_query.GetAll", req)
	defer dbSpan.Finish()

	base := r.sb.Select("id", "name", "query", "created_at::text", "updated_at::text").
		From("saved_queries").
		Where("deleted_at IS NULL")

	countBase := r.sb.Select("count(1)").From("saved_queries").Where("deleted_at IS NULL")

	if len(req.Ids) > 0 {
		base = base.Where("id = ANY(?)", pq.Array(req.Ids))
		countBase = countBase.Where("id = ANY(?)", pq.Array(req.Ids))
	}

	if req.Search != "" {
		base = base.Where("name ILIKE ?", "%"+req.Search+"%")
		countBase = countBase.Where("name ILIKE ?", "%"+req.Search+"%")
	}

	limit := req.Limit
	if limit == 0 {
		limit = config.DefaultSavedQueryLimit
	}

	base = base.OrderBy("created_at DESC").Limit(limit).Offset(req.Offset)

	query, args, err := base.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select saved queries")
	}
	defer rows.Close()

	resp := &models.GetAllSavedQueriesResponse{SavedQueries: []models.SavedQuery{}}

	for rows.Next() {
		var (
			item models.SavedQuery
			body []byte
		)
		if err := rows.Scan(&item.Id, &item.Name, &body, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "scan saved query")
		}
		if err := json.Unmarshal(body, &item.Query); err != nil {
			return nil, errors.Wrap(err, "unmarshal query model")
		}
		resp.SavedQueries = append(resp.SavedQueries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}

	countQuery, countArgs, err := countBase.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build count")
	}

	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&resp.Count); err != nil {
		return nil, errors.Wrap(err, "count saved queries")
	}

	return resp, nil
}

func (r *savedQueryRepo) Update(ctx context.Context, req *models.SavedQuery) error {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "saved_query.Update", req)
	defer dbSpan.Finish()

	body, err := json.Marshal(req.Query)
	if err != nil {
		return errors.Wrap(err, "marshal query model")
	}

	query, args, err := r.sb.Update("saved_queries").
		Set("name", req.Name).
		Set("query", body).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": req.Id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build update")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update saved query")
	}

	if tag.RowsAffected() == 0 {
		return errors.New("saved query not found")
	}

	return nil
}

func (r *savedQueryRepo) Delete(ctx context.Context, id string) error {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "saved_query.Delete", id)
	defer dbSpan.Finish()

	query, args, err := r.sb.Update("saved_queries").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build delete")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete saved query")
	}

	return nil
}
