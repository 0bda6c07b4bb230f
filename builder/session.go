// Package builder holds the clause builders: atomic, total mutations over a
// single query model. Every operation applies cleanly — an unknown id or a
// duplicate add is a no-op, never an error — mirroring a form-editing flow
// where each keystroke must land.
package builder

import (
	"strings"

	"ucode/ucode_go_query_builder_service/models"

	"github.com/google/uuid"
)

// Session owns one query model for the lifetime of an editing session.
// It is not safe for concurrent use; each editor gets its own Session.
type Session struct {
	query *models.Query
}

func NewSession(kind models.StatementKind) *Session {
	return &Session{
		query: &models.Query{
			Id:            uuid.NewString(),
			StatementKind: kind,
			Tables:        []string{},
		},
	}
}

// NewSessionFrom resumes editing a loaded query model.
func NewSessionFrom(q *models.Query) *Session {
	if q == nil {
		return NewSession(models.StatementSelect)
	}
	if q.Id == "" {
		q.Id = uuid.NewString()
	}
	return &Session{query: q}
}

// Query exposes the model for generation and persistence.
func (s *Session) Query() *models.Query {
	return s.query
}

func (s *Session) SetName(name string) {
	s.query.Name = name
}

func (s *Session) SetStatementKind(kind models.StatementKind) {
	s.query.StatementKind = kind
}

func (s *Session) AddTable(name string) {
	for _, t := range s.query.Tables {
		if t == name {
			return
		}
	}
	s.query.Tables = append(s.query.Tables, name)
}

// RemoveTable cascades: columns qualified by the table and joins targeting
// it go with it.
func (s *Session) RemoveTable(name string) {
	tables := s.query.Tables[:0]
	for _, t := range s.query.Tables {
		if t != name {
			tables = append(tables, t)
		}
	}
	s.query.Tables = tables

	columns := s.query.Columns[:0]
	for _, c := range s.query.Columns {
		if !strings.HasPrefix(c, name+".") {
			columns = append(columns, c)
		}
	}
	s.query.Columns = columns

	joins := s.query.Joins[:0]
	for _, j := range s.query.Joins {
		if j.Table != name {
			joins = append(joins, j)
		}
	}
	s.query.Joins = joins
}

func (s *Session) AddColumn(ref string) {
	for _, c := range s.query.Columns {
		if c == ref {
			return
		}
	}
	s.query.Columns = append(s.query.Columns, ref)
}

func (s *Session) RemoveColumn(ref string) {
	columns := s.query.Columns[:0]
	for _, c := range s.query.Columns {
		if c != ref {
			columns = append(columns, c)
		}
	}
	s.query.Columns = columns
}

// ConditionPatch is a partial update; nil fields are left untouched.
type ConditionPatch struct {
	Column    *string           `json:"column,omitempty"`
	Operator  *models.Operator  `json:"operator,omitempty"`
	Value     *string           `json:"value,omitempty"`
	Connector *models.Connector `json:"connector,omitempty"`
}

// AddCondition appends a default condition and returns its id for editing.
func (s *Session) AddCondition() string {
	cond := models.Condition{
		Id:        uuid.NewString(),
		Operator:  models.OperatorEquals,
		Connector: models.ConnectorAnd,
	}
	s.query.Conditions = append(s.query.Conditions, cond)
	return cond.Id
}

func (s *Session) UpdateCondition(id string, patch ConditionPatch) {
	s.query.Conditions = patchConditions(s.query.Conditions, id, patch)
}

func (s *Session) RemoveCondition(id string) {
	s.query.Conditions = removeCondition(s.query.Conditions, id)
}

// AddHaving mirrors AddCondition for the HAVING list.
func (s *Session) AddHaving() string {
	cond := models.Condition{
		Id:        uuid.NewString(),
		Operator:  models.OperatorEquals,
		Connector: models.ConnectorAnd,
	}
	s.query.Having = append(s.query.Having, cond)
	return cond.Id
}

func (s *Session) UpdateHaving(id string, patch ConditionPatch) {
	s.query.Having = patchConditions(s.query.Having, id, patch)
}

func (s *Session) RemoveHaving(id string) {
	s.query.Having = removeCondition(s.query.Having, id)
}

func patchConditions(conds []models.Condition, id string, patch ConditionPatch) []models.Condition {
	for i := range conds {
		if conds[i].Id != id {
			continue
		}
		if patch.Column != nil {
			conds[i].Column = *patch.Column
		}
		if patch.Operator != nil {
			conds[i].Operator = *patch.Operator
		}
		if patch.Value != nil {
			conds[i].Value = *patch.Value
		}
		if patch.Connector != nil {
			conds[i].Connector = *patch.Connector
		}
		// null-check operators never carry a value
		if !conds[i].Operator.HasValue() {
			conds[i].Value = ""
		}
		break
	}
	return conds
}

func removeCondition(conds []models.Condition, id string) []models.Condition {
	out := conds[:0]
	for _, c := range conds {
		if c.Id != id {
			out = append(out, c)
		}
	}
	return out
}

type JoinPatch struct {
	Type        *models.JoinType `json:"type,omitempty"`
	Table       *string          `json:"table,omitempty"`
	LeftColumn  *string          `json:"left_column,omitempty"`
	RightColumn *string          `json:"right_column,omitempty"`
}

// AddJoin appends an inner join defaulting to the second selected table,
// or an empty target when only one table is present. The caller fills the
// equality columns afterwards.
func (s *Session) AddJoin() string {
	join := models.Join{
		Id:   uuid.NewString(),
		Type: models.JoinInner,
	}
	if len(s.query.Tables) > 1 {
		join.Table = s.query.Tables[1]
	}
	s.query.Joins = append(s.query.Joins, join)
	return join.Id
}

func (s *Session) UpdateJoin(id string, patch JoinPatch) {
	for i := range s.query.Joins {
		if s.query.Joins[i].Id != id {
			continue
		}
		if patch.Type != nil {
			s.query.Joins[i].Type = *patch.Type
		}
		if patch.Table != nil {
			s.query.Joins[i].Table = *patch.Table
		}
		if patch.LeftColumn != nil {
			s.query.Joins[i].LeftColumn = *patch.LeftColumn
		}
		if patch.RightColumn != nil {
			s.query.Joins[i].RightColumn = *patch.RightColumn
		}
		break
	}
}

func (s *Session) RemoveJoin(id string) {
	joins := s.query.Joins[:0]
	for _, j := range s.query.Joins {
		if j.Id != id {
			joins = append(joins, j)
		}
	}
	s.query.Joins = joins
}

type OrderPatch struct {
	Column    *string               `json:"column,omitempty"`
	Direction *models.SortDirection `json:"direction,omitempty"`
}

func (s *Session) AddOrder() string {
	order := models.Order{
		Id:        uuid.NewString(),
		Direction: models.SortAsc,
	}
	s.query.OrderBy = append(s.query.OrderBy, order)
	return order.Id
}

func (s *Session) UpdateOrder(id string, patch OrderPatch) {
	for i := range s.query.OrderBy {
		if s.query.OrderBy[i].Id != id {
			continue
		}
		if patch.Column != nil {
			s.query.OrderBy[i].Column = *patch.Column
		}
		if patch.Direction != nil {
			s.query.OrderBy[i].Direction = *patch.Direction
		}
		break
	}
}

func (s *Session) RemoveOrder(id string) {
	orders := s.query.OrderBy[:0]
	for _, o := range s.query.OrderBy {
		if o.Id != id {
			orders = append(orders, o)
		}
	}
	s.query.OrderBy = orders
}

func (s *Session) AddGroupBy(column string) {
	for _, g := range s.query.GroupBy {
		if g == column {
			return
		}
	}
	s.query.GroupBy = append(s.query.GroupBy, column)
}

func (s *Session) RemoveGroupBy(column string) {
	groups := s.query.GroupBy[:0]
	for _, g := range s.query.GroupBy {
		if g != column {
			groups = append(groups, g)
		}
	}
	s.query.GroupBy = groups
}

type AssignmentPatch struct {
	Column *string `json:"column,omitempty"`
	Value  *string `json:"value,omitempty"`
}

// AddAssignment appends a column/value binding used by INSERT and UPDATE.
func (s *Session) AddAssignment() string {
	assignment := models.Assignment{
		Id: uuid.NewString(),
	}
	s.query.Assignments = append(s.query.Assignments, assignment)
	return assignment.Id
}

func (s *Session) UpdateAssignment(id string, patch AssignmentPatch) {
	for i := range s.query.Assignments {
		if s.query.Assignments[i].Id != id {
			continue
		}
		if patch.Column != nil {
			s.query.Assignments[i].Column = *patch.Column
		}
		if patch.Value != nil {
			s.query.Assignments[i].Value = *patch.Value
		}
		break
	}
}

func (s *Session) RemoveAssignment(id string) {
	assignments := s.query.Assignments[:0]
	for _, a := range s.query.Assignments {
		if a.Id != id {
			assignments = append(assignments, a)
		}
	}
	s.query.Assignments = assignments
}

func (s *Session) SetLimit(n uint64) {
	s.query.Limit = &n
}

func (s *Session) ClearLimit() {
	s.query.Limit = nil
}

func (s *Session) SetOffset(n uint64) {
	s.query.Offset = &n
}

func (s *Session) ClearOffset() {
	s.query.Offset = nil
}
