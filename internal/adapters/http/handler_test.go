package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/internal/adapters/storage/memory"
	"github.com/ib-77/results/internal/tenant"
	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/httpx"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), tenant.SeedUsers()))
	svc := tenant.NewUsers(tenant.Dependencies{Store: store, Logger: quiet})
	return NewRouter(NewHandler(svc, quiet))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestGetUser(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/users/0", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"John"`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error { Code = UserNotFound, Message = User 2 not found }", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUsersAtAddress(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/addresses/1234A/1aa/users", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem struct {
		Title  string              `json:"title"`
		Status int                 `json:"status"`
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, httpx.ValidationTitle, problem.Title)
	assert.Equal(t, 400, problem.Status)
	assert.Equal(t, []string{"Zip code 1234A is not valid - must be 4 digits plus 2 capital letters"}, problem.Errors["InvalidZipCode"])
	assert.Len(t, problem.Errors["InvalidHouseNr"], 1)
	assert.Less(t, strings.Index(rec.Body.String(), "InvalidZipCode"), strings.Index(rec.Body.String(), "InvalidHouseNr"))

	rec = do(t, h, http.MethodGet, "/addresses/1234AB/2/users", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No users found at address 1234AB 2")

	rec = do(t, h, http.MethodGet, "/addresses/1234AB/3/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[1]`, rec.Body.String())
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec := do(t, h, http.MethodPut, "/users/1", `{"name":"Vince"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/1", "")
	assert.JSONEq(t, `"Vince"`, rec.Body.String())

	rec = do(t, h, http.MethodPut, "/users/1", `{"name":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidUserName")

	rec = do(t, h, http.MethodPut, "/users/8", `{"name":"Nobody"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/users/1", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUsers(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/users?ids=1,2,0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var results []tenant.Result[string]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "Vincent", results[0].Value())
	assert.Equal(t, tenant.CodeUserNotFound, results[1].Code())
	assert.Equal(t, "John", results[2].Value())

	rec = do(t, h, http.MethodGet, "/users?ids=1,x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

type stubService struct {
	tenant.Service
	user func(id int) (tenant.Result[string], error)
}

func (s stubService) GetUser(_ context.Context, id int) (tenant.Result[string], error) {
	return s.user(id)
}

func TestGetUser_InternalErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]func(int) (tenant.Result[string], error){
		"infrastructure": func(int) (tenant.Result[string], error) {
			return tenant.Result[string]{}, errors.New("store down")
		},
		"unhandled tag": func(id int) (tenant.Result[string], error) {
			return rop.FailError[string](tenant.NoUsersAtAddress("x")).With(tenant.UserNotFound(id)), nil
		},
		"panic": func(id int) (tenant.Result[string], error) {
			return tenant.Result[string]{}, errors.New(rop.FailError[string](tenant.UserNotFound(id)).Value())
		},
	}

	for name, user := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := NewRouter(NewHandler(stubService{user: user}, quiet))
			rec := do(t, h, http.MethodGet, "/users/1", "")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "internal server error", rec.Body.String())
		})
	}
}
