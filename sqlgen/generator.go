// Package sqlgen renders a query model to executable SQL. Generation is
// pure and deterministic: the same model always yields byte-identical text
// and the same bound argument list. User-supplied values are never
// concatenated into the statement text; they travel as bound parameters.
package sqlgen

import (
	"ucode/ucode_go_query_builder_service/models"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// Statement is the generator's output: the SQL text with $n placeholders,
// the values to bind, and the statement kind so the runner knows whether
// to expect rows or an affected-row count.
type Statement struct {
	Kind models.StatementKind `json:"kind"`
	SQL  string               `json:"sql"`
	Args []any                `json:"args"`
}

// Empty reports whether there is nothing to execute.
func (s Statement) Empty() bool {
	return s.SQL == ""
}

// Generate renders the model. A model with no tables yields an empty
// Statement and no error — the caller must treat it as nothing to execute.
func Generate(q *models.Query) (Statement, error) {
	if q == nil || len(q.Tables) == 0 {
		return Statement{}, nil
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	var (
		sql  string
		args []any
		err  error
	)

	switch q.StatementKind {
	case models.StatementSelect:
		sql, args, err = generateSelect(q, sb)
	case models.StatementInsert:
		sql, args, err = generateInsert(q, sb)
	case models.StatementUpdate:
		sql, args, err = generateUpdate(q, sb)
	case models.StatementDelete:
		sql, args, err = generateDelete(q, sb)
	default:
		return Statement{}, errors.Errorf("unsupported statement kind %q", q.StatementKind)
	}

	if err != nil {
		return Statement{}, err
	}

	return Statement{Kind: q.StatementKind, SQL: sql, Args: args}, nil
}

func generateSelect(q *models.Query, sb squirrel.StatementBuilderType) (string, []any, error) {
	columns := q.Columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	// only the first table is the FROM target; the rest are join fodder
	query := sb.Select(columns...).From(q.Tables[0])

	for _, join := range q.Joins {
		onClause := join.Table + " ON " + join.LeftColumn + " = " + join.RightColumn

		switch join.Type {
		case models.JoinLeft:
			query = query.LeftJoin(onClause)
		case models.JoinRight:
			query = query.RightJoin(onClause)
		case models.JoinInner:
			query = query.InnerJoin(onClause)
		case models.JoinFull:
			query = query.JoinClause("FULL JOIN " + onClause)
		default:
			return "", nil, errors.Errorf("unsupported join type %q", join.Type)
		}
	}

	where, whereArgs, err := buildPredicate(q.Conditions)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		query = query.Where(squirrel.Expr(where, whereArgs...))
	}

	if len(q.GroupBy) > 0 {
		query = query.GroupBy(q.GroupBy...)
	}

	having, havingArgs, err := buildPredicate(q.Having)
	if err != nil {
		return "", nil, err
	}
	if having != "" {
		query = query.Having(squirrel.Expr(having, havingArgs...))
	}

	for _, order := range q.OrderBy {
		if order.Column == "" {
			continue
		}
		query = query.OrderBy(order.Column + " " + string(order.Direction))
	}

	if q.Limit != nil {
		query = query.Limit(*q.Limit)
		if q.Offset != nil {
			query = query.Offset(*q.Offset)
		}
	}

	return query.ToSql()
}

func generateInsert(q *models.Query, sb squirrel.StatementBuilderType) (string, []any, error) {
	if len(q.Assignments) == 0 {
		return "", nil, errors.New("no assignments provided for insert")
	}

	columns := make([]string, 0, len(q.Assignments))
	values := make([]any, 0, len(q.Assignments))
	for _, a := range q.Assignments {
		columns = append(columns, a.Column)
		values = append(values, a.Value)
	}

	return sb.Insert(q.Tables[0]).Columns(columns...).Values(values...).ToSql()
}

func generateUpdate(q *models.Query, sb squirrel.StatementBuilderType) (string, []any, error) {
	if len(q.Assignments) == 0 {
		return "", nil, errors.New("no assignments provided for update")
	}

	query := sb.Update(q.Tables[0])
	for _, a := range q.Assignments {
		query = query.Set(a.Column, a.Value)
	}

	where, whereArgs, err := buildPredicate(q.Conditions)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		query = query.Where(squirrel.Expr(where, whereArgs...))
	}

	return query.ToSql()
}

func generateDelete(q *models.Query, sb squirrel.StatementBuilderType) (string, []any, error) {
	query := sb.Delete(q.Tables[0])

	where, whereArgs, err := buildPredicate(q.Conditions)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		query = query.Where(squirrel.Expr(where, whereArgs...))
	}

	return query.ToSql()
}
