package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/phonebook/internal/logging"
	"github.com/dmitrijs2005/phonebook/internal/server/config"
	"github.com/dmitrijs2005/phonebook/internal/server/docstore"
	"github.com/dmitrijs2005/phonebook/internal/server/graph"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/persons"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/users"
	"github.com/dmitrijs2005/phonebook/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	personColl := docstore.NewMemoryCollection(func() *models.Person { return &models.Person{} })
	userColl := docstore.NewMemoryCollection(func() *models.User { return &models.User{} }, "username")

	identity := services.NewIdentityService(users.NewStoreRepository(userColl), cfg)
	directory := services.NewDirectoryService(persons.NewStoreRepository(personColl), users.NewStoreRepository(userColl))

	schema, err := graph.ParseSchema(graph.NewResolver(identity, directory, nopLogger{}))
	require.NoError(t, err)

	return NewServer(":0", schema, identity, nopLogger{})
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func post(t *testing.T, s *Server, query, authorization string) (int, *gqlResponse) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	resp := &gqlResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), resp))
	return w.Code, resp
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER   abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
}

func TestRequest_NoTokenIsAnonymous(t *testing.T) {
	s := newTestServer(t)

	code, resp := post(t, s, `{ me { username } }`, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "null", string(resp.Data["me"]))
}

func TestRequest_InvalidTokenRejected(t *testing.T) {
	s := newTestServer(t)

	code, resp := post(t, s, `{ me { username } }`, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, graph.CodeInvalidToken, resp.Errors[0].Extensions["code"])
}

func TestRequest_AuthenticatedFlow(t *testing.T) {
	s := newTestServer(t)

	code, resp := post(t, s, `mutation { createUser(username: "ada") { username } }`, "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Errors)

	code, resp = post(t, s, `mutation { login(username: "ada", password: "secret") { value } }`, "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Errors)

	var login struct {
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["login"], &login))
	require.NotEmpty(t, login.Value)

	code, resp = post(t, s,
		`mutation { addPerson(name: "Grace", street: "Main St", city: "Metropolis") { name } }`,
		"Bearer "+login.Value)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Errors)

	code, resp = post(t, s, `{ me { username friends { name } } }`, "bearer "+login.Value)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Errors)

	var me struct {
		Username string `json:"username"`
		Friends  []struct {
			Name string `json:"name"`
		} `json:"friends"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["me"], &me))
	assert.Equal(t, "ada", me.Username)
	require.Len(t, me.Friends, 1)
	assert.Equal(t, "Grace", me.Friends[0].Name)
}

func TestRequest_AnonymousMutationRejectedByResolver(t *testing.T) {
	s := newTestServer(t)

	code, resp := post(t, s, `mutation { addPerson(name: "Grace", street: "s", city: "c") { name } }`, "")
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, graph.CodeUnauthenticated, resp.Errors[0].Extensions["code"])
}
