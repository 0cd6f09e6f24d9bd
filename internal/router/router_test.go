package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"la-cave/internal/api"
	"la-cave/internal/cache"
	"la-cave/internal/model"
	"la-cave/internal/service"
	"la-cave/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var adminRoutes = []string{
	http.MethodPost + " /api/menu",
	http.MethodPut + " /api/menu/:id",
	http.MethodDelete + " /api/menu/:id",
	http.MethodGet + " /api/reservations",
	http.MethodGet + " /api/reservations/:id",
	http.MethodPut + " /api/reservations/:id",
	http.MethodGet + " /api/reviews/admin",
	http.MethodPut + " /api/reviews/:id",
	http.MethodDelete + " /api/reviews/:id",
}

func newEcho(st store.Store) *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(false)
	Setup(e, Deps{Store: st, Cache: &cache.FakeCache{}, Mailer: &service.FakeMailer{}, Started: time.Now(), Version: "test"})
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := newEcho(&store.Fake{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := append([]string{
		http.MethodGet + " /",
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodPut + " /api/auth/profile",
		http.MethodPost + " /api/auth/forgotpassword",
		http.MethodPut + " /api/auth/resetpassword/:token",
		http.MethodGet + " /api/menu",
		http.MethodGet + " /api/menu/category/:category",
		http.MethodGet + " /api/menu/popular/items",
		http.MethodGet + " /api/menu/:id",
		http.MethodPost + " /api/reservations",
		http.MethodGet + " /api/reviews",
		http.MethodPost + " /api/reviews",
	}, adminRoutes...)

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-secret")
	accounts := map[string]*model.Account{
		"u1": {ID: "u1", Name: "Joe", Role: model.RoleUser},
	}
	st := &store.Fake{
		GetAccountByIDFn: func(_ context.Context, id string) (*model.Account, error) {
			if a, ok := accounts[id]; ok {
				return a, nil
			}
			return nil, store.ErrNotFound
		},
	}
	e := newEcho(st)

	userToken, err := service.IssueAccessToken(*accounts["u1"], time.Hour)
	require.NoError(t, err)

	for _, route := range adminRoutes {
		parts := strings.SplitN(route, " ", 2)
		path := strings.ReplaceAll(parts[1], ":id", "abc")

		req := httptest.NewRequest(parts[0], path, strings.NewReader("{}"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, route)
		require.Contains(t, rec.Body.String(), "Not authorized to access this route")

		req = httptest.NewRequest(parts[0], path, strings.NewReader("{}"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code, route)
		require.Contains(t, rec.Body.String(), "User role user is not authorized to access this route")
	}
}

func TestUnknownRoute(t *testing.T) {
	e := newEcho(&store.Fake{})
	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Route not found")
}
