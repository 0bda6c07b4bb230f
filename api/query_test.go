package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ucode/ucode_go_query_builder_service/api"
	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/models"
	"ucode/ucode_go_query_builder_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger("query_builder_test", logger.LevelError)
	// preview needs no storage
	return api.SetUpRouter(api.NewHandler(config.Config{}, log, nil))
}

func postPreview(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/queries/preview", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPreviewRendersSelect(t *testing.T) {
	router := setupRouter()

	w := postPreview(t, router, models.Query{
		StatementKind: models.StatementSelect,
		Tables:        []string{"users"},
		Columns:       []string{"users.id"},
		Conditions: []models.Condition{
			{Column: "users.role", Operator: models.OperatorEquals, Value: "admin"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SQL  string `json:"sql"`
		Args []any  `json:"args"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SELECT users.id FROM users WHERE users.role = $1", resp.SQL)
	assert.Equal(t, []any{"admin"}, resp.Args)
}

func TestPreviewEmptyModel(t *testing.T) {
	router := setupRouter()

	w := postPreview(t, router, models.Query{StatementKind: models.StatementSelect})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SQL string `json:"sql"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.SQL)
}

func TestPreviewRejectsBadIdentifier(t *testing.T) {
	router := setupRouter()

	w := postPreview(t, router, models.Query{
		StatementKind: models.StatementSelect,
		Tables:        []string{"users; DROP TABLE users"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
