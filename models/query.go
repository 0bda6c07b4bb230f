package models

// StatementKind tags a query with the SQL statement it renders to.
type StatementKind string

const (
	StatementSelect StatementKind = "SELECT"
	StatementInsert StatementKind = "INSERT"
	StatementUpdate StatementKind = "UPDATE"
	StatementDelete StatementKind = "DELETE"
)

// Operator is a closed set of condition operators. The sqlgen package
// renders every member explicitly; an unknown operator is an error there,
// never a silent fallthrough.
type Operator string

const (
	OperatorEquals      Operator = "eq"
	OperatorNotEquals   Operator = "neq"
	OperatorGreaterThan Operator = "gt"
	OperatorLessThan    Operator = "lt"
	OperatorContains    Operator = "contains"
	OperatorStartsWith  Operator = "startswith"
	OperatorEndsWith    Operator = "endswith"
	OperatorIsNull      Operator = "isnull"
	OperatorIsNotNull   Operator = "isnotnull"
)

// HasValue reports whether the operator takes a comparison value.
func (o Operator) HasValue() bool {
	return o != OperatorIsNull && o != OperatorIsNotNull
}

// Connector glues a condition to the previous one in the same list.
// It is meaningless for the first condition and is not rendered for it.
type Connector string

const (
	ConnectorAnd Connector = "AND"
	ConnectorOr  Connector = "OR"
)

type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Condition is a single WHERE/HAVING predicate.
type Condition struct {
	Id        string    `json:"id"`
	Column    string    `json:"column"`
	Operator  Operator  `json:"operator"`
	Value     string    `json:"value,omitempty"`
	Connector Connector `json:"connector"`
}

// Join describes one table join with an equality predicate.
type Join struct {
	Id          string   `json:"id"`
	Type        JoinType `json:"type"`
	Table       string   `json:"table"`
	LeftColumn  string   `json:"left_column"`
	RightColumn string   `json:"right_column"`
}

// Order is a single sort key.
type Order struct {
	Id        string        `json:"id"`
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// Assignment binds a value to a column for INSERT and UPDATE statements.
type Assignment struct {
	Id     string `json:"id"`
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Query is the structured description of one query under construction.
// The first entry of Tables is the FROM target; the remaining entries are
// only meaningful when referenced by a Join. Columns hold qualified
// "table.column" references; an empty Columns means "all columns" for
// SELECT. Limit and Offset are optional; Offset is never rendered without
// Limit.
type Query struct {
	Id            string        `json:"id"`
	Name          string        `json:"name"`
	StatementKind StatementKind `json:"statement_kind"`
	Tables        []string      `json:"tables"`
	Columns       []string      `json:"columns,omitempty"`
	Conditions    []Condition   `json:"conditions,omitempty"`
	Joins         []Join        `json:"joins,omitempty"`
	OrderBy       []Order       `json:"order_by,omitempty"`
	GroupBy       []string      `json:"group_by,omitempty"`
	Having        []Condition   `json:"having,omitempty"`
	Assignments   []Assignment  `json:"assignments,omitempty"`
	Limit         *uint64       `json:"limit,omitempty"`
	Offset        *uint64       `json:"offset,omitempty"`
}

// SavedQuery is a persisted query model with its bookkeeping columns.
type SavedQuery struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Query     Query  `json:"query"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type GetAllSavedQueriesRequest struct {
	Ids    []string `json:"ids,omitempty"`
	Search string   `json:"search,omitempty"`
	Limit  uint64   `json:"limit,omitempty"`
	Offset uint64   `json:"offset,omitempty"`
}

type GetAllSavedQueriesResponse struct {
	SavedQueries []SavedQuery `json:"saved_queries"`
	Count        int64        `json:"count"`
}
