package sqlgen

import (
	"strings"

	"ucode/ucode_go_query_builder_service/models"

	"github.com/pkg/errors"
)

// renderCondition maps one condition to its SQL fragment with "?"
// placeholders and the values to bind. The mapping is exhaustive over the
// operator enum; anything else is an error so a new operator can never
// slip through as a dropped predicate.
func renderCondition(cond models.Condition) (string, []any, error) {
	col := cond.Column

	switch cond.Operator {
	case models.OperatorEquals:
		return col + " = ?", []any{cond.Value}, nil
	case models.OperatorNotEquals:
		return col + " != ?", []any{cond.Value}, nil
	case models.OperatorGreaterThan:
		return col + " > ?", []any{cond.Value}, nil
	case models.OperatorLessThan:
		return col + " < ?", []any{cond.Value}, nil
	case models.OperatorContains:
		return col + " LIKE ?", []any{"%" + cond.Value + "%"}, nil
	case models.OperatorStartsWith:
		return col + " LIKE ?", []any{cond.Value + "%"}, nil
	case models.OperatorEndsWith:
		return col + " LIKE ?", []any{"%" + cond.Value}, nil
	case models.OperatorIsNull:
		return col + " IS NULL", nil, nil
	case models.OperatorIsNotNull:
		return col + " IS NOT NULL", nil, nil
	default:
		return "", nil, errors.Errorf("unsupported operator %q", cond.Operator)
	}
}

// buildPredicate folds an ordered condition list into one expression.
// A condition with an empty column is skipped (the user has not finished
// the row yet); the connector of the first rendered condition is dropped.
func buildPredicate(conds []models.Condition) (string, []any, error) {
	var (
		sb       strings.Builder
		args     []any
		rendered int
	)

	for _, cond := range conds {
		if cond.Column == "" {
			continue
		}

		fragment, condArgs, err := renderCondition(cond)
		if err != nil {
			return "", nil, err
		}

		if rendered > 0 {
			connector := cond.Connector
			if connector == "" {
				connector = models.ConnectorAnd
			}
			sb.WriteString(" " + string(connector) + " ")
		}

		sb.WriteString(fragment)
		args = append(args, condArgs...)
		rendered++
	}

	return sb.String(), args, nil
}
