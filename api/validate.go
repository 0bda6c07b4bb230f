package api

import (
	"ucode/ucode_go_query_builder_service/models"
	"ucode/ucode_go_query_builder_service/pkg/util"
)

// validateQuery gates every identifier in the model before generation.
// Values are bound as parameters by the generator, but identifiers end up
// in the statement text, so a bad reference is a validation error here,
// not an execution error later.
func validateQuery(q *models.Query) error {
	for _, table := range q.Tables {
		if err := util.ValidIdentifier(table); err != nil {
			return err
		}
	}

	for _, column := range q.Columns {
		if err := util.ValidColumnRef(column); err != nil {
			return err
		}
	}

	for _, cond := range append(append([]models.Condition{}, q.Conditions...), q.Having...) {
		if cond.Column == "" {
			continue
		}
		if err := util.ValidColumnRef(cond.Column); err != nil {
			return err
		}
	}

	for _, join := range q.Joins {
		if join.Table == "" {
			continue
		}
		if err := util.ValidIdentifier(join.Table); err != nil {
			return err
		}
		if err := util.ValidColumnRef(join.LeftColumn); err != nil {
			return err
		}
		if err := util.ValidColumnRef(join.RightColumn); err != nil {
			return err
		}
	}

	for _, order := range q.OrderBy {
		if order.Column == "" {
			continue
		}
		if err := util.ValidColumnRef(order.Column); err != nil {
			return err
		}
	}

	for _, group := range q.GroupBy {
		if err := util.ValidColumnRef(group); err != nil {
			return err
		}
	}

	for _, assignment := range q.Assignments {
		if err := util.ValidColumnRef(assignment.Column); err != nil {
			return err
		}
	}

	return nil
}
