package postgres_test

import (
	"context"
	"testing"

	"ucode/ucode_go_query_builder_service/models"

	"github.com/stretchr/testify/assert"
)

func createSavedQuery(t *testing.T) string {
	req := &models.SavedQuery{
		Name: fakeData.Lorem().Sentence(3),
		Query: models.Query{
			StatementKind: models.StatementSelect,
			Tables:        []string{"users"},
			Columns:       []string{"users.id", "users.name"},
			Conditions: []models.Condition{
				{Column: "users.role", Operator: models.OperatorEquals, Value: "admin", Connector: models.ConnectorAnd},
			},
		},
	}

	id, err := strg.SavedQuery().Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	return id
}

func TestCreateSavedQuery(t *testing.T) {
	createSavedQuery(t)
}

func TestGetSavedQueryByID(t *testing.T) {
	id := createSavedQuery(t)

	resp, err := strg.SavedQuery().GetByID(context.Background(), id)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, id, resp.Id)
	assert.Equal(t, models.StatementSelect, resp.Query.StatementKind)
	assert.Equal(t, []string{"users"}, resp.Query.Tables)
}

func TestGetAllSavedQueries(t *testing.T) {
	id := createSavedQuery(t)

	resp, err := strg.SavedQuery().GetAll(context.Background(), &models.GetAllSavedQueriesRequest{
		Ids: []string{id},
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.Count)
	assert.Len(t, resp.SavedQueries, 1)
	assert.Equal(t, id, resp.SavedQueries[0].Id)
}

func TestUpdateSavedQuery(t *testing.T) {
	id := createSavedQuery(t)

	resp, err := strg.SavedQuery().GetByID(context.Background(), id)
	assert.NoError(t, err)

	resp.Name = "renamed"
	resp.Query.Tables = append(resp.Query.Tables, "files")

	err = strg.SavedQuery().Update(context.Background(), resp)
	assert.NoError(t, err)

	updated, err := strg.SavedQuery().GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, []string{"users", "files"}, updated.Query.Tables)
}

func TestUpdateMissingSavedQuery(t *testing.T) {
	err := strg.SavedQuery().Update(context.Background(), &models.SavedQuery{
		Id:   "5381a752-0652-4da2-acfc-0dea5082a21e",
		Name: "ghost",
	})

	assert.Error(t, err)
}

func TestDeleteSavedQuery(t *testing.T) {
	id := createSavedQuery(t)

	err := strg.SavedQuery().Delete(context.Background(), id)
	assert.NoError(t, err)

	_, err = strg.SavedQuery().GetByID(context.Background(), id)
	assert.Error(t, err)
}
