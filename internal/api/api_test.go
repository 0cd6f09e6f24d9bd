package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"la-cave/internal/filter"
	"la-cave/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func fieldMap(errs []FieldError) map[string]string {
	m := map[string]string{}
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidatorUsesJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&RegisterRequest{Email: "bad", Password: "123"})
	require.Error(t, err)

	got := fieldMap(ValidationFailed(err).Errors)
	require.Equal(t, "name is required", got["name"])
	require.Equal(t, "Please include a valid email", got["email"])
	require.Equal(t, "password must be at least 6 characters", got["password"])
}

func TestValidatorMenuItem(t *testing.T) {
	v := NewValidator()
	m := model.NewMenuItem()
	m.Name = "Tiramisu"
	m.Description = "Classic"
	m.Price = 12
	m.Category = "desserts"
	require.NoError(t, v.Validate(&m))

	m.Price = 0
	m.Category = "drinks"
	m.Dietary = []string{"vegan", "keto"}
	m.Rating = 6
	got := fieldMap(FieldErrors(v.Validate(&m)))
	require.Equal(t, "price is required", got["price"])
	require.Equal(t, "category must be one of: appetizers, soups, mains, sides, desserts, wines", got["category"])
	require.Contains(t, got, "dietary[1]")
	require.Equal(t, "rating must be less than or equal to 5", got["rating"])
}

func TestValidatorReservation(t *testing.T) {
	v := NewValidator()
	r := model.Reservation{
		Name: "Ann", Email: "ann@example.com", Phone: "1", Date: "2025-06-01", Time: "19:00",
		Guests: 2, Status: model.StatusPending,
	}
	require.NoError(t, v.Validate(&r))

	for _, email := range []string{"ann", "ann@", "ann@example", "ann@example.toolong"} {
		r.Email = email
		got := fieldMap(FieldErrors(v.Validate(&r)))
		require.Equal(t, "Please include a valid email", got["email"], email)
	}
	r.Email = "ann.lee@mail.example.com"
	r.Guests = 21
	r.Status = "seated"
	got := fieldMap(FieldErrors(v.Validate(&r)))
	require.Equal(t, "guests cannot be more than 20", got["guests"])
	require.Contains(t, got, "status")
	require.NotContains(t, got, "email")
}

func TestValidatorLongFreeText(t *testing.T) {
	v := NewValidator()
	r := model.Reservation{
		Name: strings.Repeat("n", 150), Email: "ann@example.com", Phone: strings.Repeat("9", 60),
		Date: "2025-06-01T00:00:00.000Z", Time: "7:00 PM", Guests: 2, Status: model.StatusPending,
	}
	require.NoError(t, v.Validate(&r))

	rv := model.Review{Name: strings.Repeat("n", 150), Email: "j@x.com", Rating: 5, Comment: "ok"}
	require.NoError(t, v.Validate(&rv))

	rv.Comment = strings.Repeat("c", 501)
	got := fieldMap(FieldErrors(v.Validate(&rv)))
	require.Contains(t, got, "comment")

	m := model.NewMenuItem()
	m.Name, m.Description, m.Price, m.Category = strings.Repeat("m", 51), "d", 1, "soups"
	got = fieldMap(FieldErrors(v.Validate(&m)))
	require.Contains(t, got, "name")
}

func TestReviewStatusRequestRequiresExplicitBool(t *testing.T) {
	v := NewValidator()
	require.Error(t, v.Validate(&ReviewStatusRequest{}))
	f := false
	require.NoError(t, v.Validate(&ReviewStatusRequest{IsApproved: &f}))
}

func TestFieldErrorsFromFilter(t *testing.T) {
	errs := FieldErrors(filter.Errors{{Field: "secret", Message: "unknown filter field"}})
	require.Equal(t, []FieldError{{Field: "secret", Message: "unknown filter field"}}, errs)

	errs = FieldErrors(errors.New("boom"))
	require.Equal(t, "boom", errs[0].Message)
}

func TestList(t *testing.T) {
	b, err := json.Marshal(List[model.MenuItem](nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"count":0,"data":[]}`, string(b))

	b, err = json.Marshal(Message("done", nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"message":"done"}`, string(b))
}

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name       string
		production bool
		err        error
		code       int
		message    string
		stack      bool
	}{
		{"http error", false, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route"), 401, "Not authorized to access this route", false},
		{"route not found", false, echo.ErrNotFound, 404, "Route not found", false},
		{"non string message", false, echo.NewHTTPError(http.StatusBadRequest, 42), 400, "42", false},
		{"internal dev", false, fmt.Errorf("ListMenuItems: %w", errors.New("db down")), 500, "Server Error", true},
		{"internal prod", true, errors.New("db down"), 500, "Server Error", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			NewHTTPErrorHandler(tc.production)(tc.err, ctx)

			require.Equal(t, tc.code, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.False(t, resp.Success)
			require.Equal(t, tc.message, resp.Message)
			if tc.stack {
				require.Contains(t, resp.Stack, "db down")
			} else {
				require.Empty(t, resp.Stack)
			}
		})
	}
}

func TestHTTPErrorHandlerCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, ctx.String(http.StatusOK, "ok"))
	NewHTTPErrorHandler(false)(errors.New("late"), ctx)
	require.Equal(t, "ok", rec.Body.String())
}
