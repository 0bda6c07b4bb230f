package builder_test

import (
	"testing"

	"ucode/ucode_go_query_builder_service/builder"
	"ucode/ucode_go_query_builder_service/models"

	"github.com/jaswdr/faker/v2"
	"github.com/stretchr/testify/assert"
)

var fakeData = faker.New()

func strPtr(s string) *string { return &s }

func opPtr(o models.Operator) *models.Operator { return &o }

func TestAddTableUnique(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddTable("users")
	s.AddTable("users")
	s.AddTable("files")

	assert.Equal(t, []string{"users", "files"}, s.Query().Tables)
}

func TestRemoveTableCascades(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddTable("users")
	s.AddTable("files")
	s.AddColumn("users.id")
	s.AddColumn("files.name")
	s.AddColumn("files.size")

	joinId := s.AddJoin()
	s.UpdateJoin(joinId, builder.JoinPatch{
		LeftColumn:  strPtr("users.id"),
		RightColumn: strPtr("files.user_id"),
	})

	s.RemoveTable("files")

	q := s.Query()
	assert.Equal(t, []string{"users"}, q.Tables)
	assert.Equal(t, []string{"users.id"}, q.Columns)
	assert.Empty(t, q.Joins)
}

func TestAddColumnIdempotent(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddTable("users")
	s.AddColumn("users.id")
	s.AddColumn("users.id")

	assert.Equal(t, []string{"users.id"}, s.Query().Columns)

	s.RemoveColumn("users.name") // absent, no-op
	s.RemoveColumn("users.id")
	assert.Empty(t, s.Query().Columns)
}

func TestAddConditionDefaults(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	id := s.AddCondition()

	assert.NotEmpty(t, id)
	assert.Len(t, s.Query().Conditions, 1)

	cond := s.Query().Conditions[0]
	assert.Equal(t, models.OperatorEquals, cond.Operator)
	assert.Equal(t, models.ConnectorAnd, cond.Connector)
	assert.Empty(t, cond.Column)
	assert.Empty(t, cond.Value)
}

func TestUpdateConditionUnknownIdIsNoop(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddCondition()
	before := s.Query().Conditions[0]

	s.UpdateCondition("no-such-id", builder.ConditionPatch{Column: strPtr("users.role")})
	s.RemoveCondition("no-such-id")

	assert.Len(t, s.Query().Conditions, 1)
	assert.Equal(t, before, s.Query().Conditions[0])
}

func TestUpdateConditionNullOperatorDropsValue(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	id := s.AddCondition()
	s.UpdateCondition(id, builder.ConditionPatch{
		Column: strPtr("users.deleted_at"),
		Value:  strPtr("something"),
	})
	s.UpdateCondition(id, builder.ConditionPatch{Operator: opPtr(models.OperatorIsNull)})

	cond := s.Query().Conditions[0]
	assert.Equal(t, models.OperatorIsNull, cond.Operator)
	assert.Empty(t, cond.Value)
}

func TestAddJoinDefaultsToSecondTable(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddTable("users")
	id := s.AddJoin()
	assert.Equal(t, "", s.Query().Joins[0].Table)
	assert.Equal(t, models.JoinInner, s.Query().Joins[0].Type)
	s.RemoveJoin(id)

	s.AddTable("files")
	s.AddJoin()
	assert.Equal(t, "files", s.Query().Joins[0].Table)
}

func TestOrderLifecycle(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	id := s.AddOrder()
	assert.Equal(t, models.SortAsc, s.Query().OrderBy[0].Direction)

	direction := models.SortDesc
	s.UpdateOrder(id, builder.OrderPatch{
		Column:    strPtr("created_at"),
		Direction: &direction,
	})

	assert.Equal(t, "created_at", s.Query().OrderBy[0].Column)
	assert.Equal(t, models.SortDesc, s.Query().OrderBy[0].Direction)

	s.RemoveOrder(id)
	assert.Empty(t, s.Query().OrderBy)
}

func TestGroupByUnique(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.AddGroupBy("users.role")
	s.AddGroupBy("users.role")

	assert.Equal(t, []string{"users.role"}, s.Query().GroupBy)

	s.RemoveGroupBy("users.role")
	assert.Empty(t, s.Query().GroupBy)
}

func TestAssignmentLifecycle(t *testing.T) {
	s := builder.NewSession(models.StatementInsert)

	s.AddTable("users")
	id := s.AddAssignment()
	s.UpdateAssignment(id, builder.AssignmentPatch{
		Column: strPtr("name"),
		Value:  strPtr(fakeData.Person().Name()),
	})

	assert.Len(t, s.Query().Assignments, 1)
	assert.Equal(t, "name", s.Query().Assignments[0].Column)
	assert.NotEmpty(t, s.Query().Assignments[0].Value)

	s.RemoveAssignment(id)
	assert.Empty(t, s.Query().Assignments)
}

func TestLimitOffset(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)

	s.SetLimit(25)
	s.SetOffset(50)

	assert.Equal(t, uint64(25), *s.Query().Limit)
	assert.Equal(t, uint64(50), *s.Query().Offset)

	s.ClearLimit()
	s.ClearOffset()

	assert.Nil(t, s.Query().Limit)
	assert.Nil(t, s.Query().Offset)
}

func TestNewSessionFrom(t *testing.T) {
	s := builder.NewSession(models.StatementSelect)
	s.SetName(fakeData.Lorem().Word())
	s.AddTable("users")

	resumed := builder.NewSessionFrom(s.Query())
	resumed.AddTable("files")

	assert.Equal(t, []string{"users", "files"}, resumed.Query().Tables)
	assert.Equal(t, s.Query().Id, resumed.Query().Id)
}
