package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mrlokans/lifebook/internal/database/books"
	"github.com/mrlokans/lifebook/internal/gql"
	"github.com/mrlokans/lifebook/internal/services"
	"github.com/mrlokans/lifebook/internal/settingsstore"
)

type graphqlResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func setupTestRouter(t *testing.T, origins ...string) http.Handler {
	t.Helper()
	log := zaptest.NewLogger(t)
	fsys := afero.NewMemMapFs()

	bookService := services.NewBookService(books.NewMemoryRepository(), log)
	settingsService := services.NewSettingsService(
		settingsstore.New(fsys, "/config", "/config/databases"), fsys, log,
	)
	schema, err := gql.NewSchema(bookService, settingsService, log)
	require.NoError(t, err)

	return NewRouter(RouterConfig{
		Executor:       gql.NewExecutor(schema, log),
		AllowedOrigins: origins,
		Version:        "test",
		Logger:         log,
	})
}

func postGraphQL(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, graphqlResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/graphql", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp graphqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGraphQLController_Post(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("executes a mutation and a query", func(t *testing.T) {
		w, resp := postGraphQL(t, router, `{"query":"mutation($t: String!) { createBook(title: $t) { id title } }","variables":{"t":"Dune"}}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp.Errors)
		created := resp.Data["createBook"].(map[string]interface{})
		assert.Equal(t, float64(1), created["id"])
		assert.Equal(t, "Dune", created["title"])

		w, resp = postGraphQL(t, router, `{"query":"{ books { title } }"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data["books"], 1)
	})

	t.Run("domain errors keep status 200", func(t *testing.T) {
		w, resp := postGraphQL(t, router, `{"query":"mutation { deleteBook(id: 999) }"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
	})

	t.Run("malformed body is a parse error", func(t *testing.T) {
		w, resp := postGraphQL(t, router, `{"query": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "PARSE_ERROR", resp.Errors[0].Extensions["code"])
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		w, resp := postGraphQL(t, router, `{"query":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "Must provide query string", resp.Errors[0].Message)
	})

	t.Run("syntax errors are parse errors", func(t *testing.T) {
		w, resp := postGraphQL(t, router, `{"query":"{ books { "}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "PARSE_ERROR", resp.Errors[0].Extensions["code"])
	})
}

func TestGraphQLController_Get(t *testing.T) {
	router := setupTestRouter(t)

	get := func(t *testing.T, params url.Values) (*httptest.ResponseRecorder, graphqlResponse) {
		t.Helper()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/graphql?"+params.Encode(), nil)
		router.ServeHTTP(w, req)

		var resp graphqlResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return w, resp
	}

	t.Run("runs a query with variables", func(t *testing.T) {
		w, resp := get(t, url.Values{
			"query":     {"query($id: Int!) { book(id: $id) { id } }"},
			"variables": {`{"id": 7}`},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp.Errors)
		assert.Contains(t, resp.Data, "book")
		assert.Nil(t, resp.Data["book"])
	})

	t.Run("reads settings", func(t *testing.T) {
		w, resp := get(t, url.Values{"query": {"{ appearanceSettings { theme } }"}})
		assert.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp.Errors)
		appearance := resp.Data["appearanceSettings"].(map[string]interface{})
		assert.Equal(t, "system", appearance["theme"])
	})

	t.Run("bad variables are rejected", func(t *testing.T) {
		w, resp := get(t, url.Values{"query": {"{ books { id } }"}, "variables": {"{nope"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "PARSE_ERROR", resp.Errors[0].Extensions["code"])
	})

	t.Run("missing query is rejected", func(t *testing.T) {
		w, _ := get(t, url.Values{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
