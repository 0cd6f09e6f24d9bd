package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLooseInt(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    LooseInt
		wantErr bool
	}{
		"number":       {in: `{"guests":4}`, want: 4},
		"string":       {in: `{"guests":"2"}`, want: 2},
		"empty string": {in: `{"guests":""}`, want: 0},
		"null":         {in: `{"guests":null}`, want: 7},
		"garbage":      {in: `{"guests":"two"}`, wantErr: true},
		"float":        {in: `{"guests":2.5}`, wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := Reservation{Guests: 7}
			err := json.Unmarshal([]byte(tc.in), &r)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, r.Guests)
		})
	}
}

func TestReviewSetApproval(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	var r Review

	r.SetApproval(true, "admin1", now)
	require.True(t, r.IsApproved)
	require.Equal(t, "admin1", r.ApprovedBy)
	require.NotNil(t, r.ApprovedAt)
	require.True(t, r.ApprovedAt.Equal(now))

	r.SetApproval(false, "admin2", now.Add(time.Hour))
	require.False(t, r.IsApproved)
	require.Equal(t, "admin2", r.ApprovedBy)
	require.Nil(t, r.ApprovedAt)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(b), `"approvedAt":null`)
}

func TestMenuItemDefaults(t *testing.T) {
	m := NewMenuItem()
	require.NoError(t, json.Unmarshal([]byte(`{"name":"  Coq au vin ","price":24}`), &m))
	m.Normalize()
	require.Equal(t, "Coq au vin", m.Name)
	require.Equal(t, DefaultMenuImage, m.Image)
	require.Equal(t, []string{}, m.Dietary)
	require.True(t, m.IsAvailable)

	m.Image = ""
	m.Dietary = nil
	m.Normalize()
	require.Equal(t, DefaultMenuImage, m.Image)
	require.NotNil(t, m.Dietary)
}

func TestAccountJSONHidesPassword(t *testing.T) {
	b, err := json.Marshal(Account{ID: "1", Email: "a@b.com", PasswordHash: "secret", Role: RoleAdmin})
	require.NoError(t, err)
	require.NotContains(t, string(b), "secret")
	require.True(t, Account{Role: RoleAdmin}.IsAdmin())
	require.False(t, Account{Role: RoleUser}.IsAdmin())
}

func TestMenuEnumsMatchValidateTags(t *testing.T) {
	oneof := func(field string) []string {
		f, ok := reflect.TypeOf(MenuItem{}).FieldByName(field)
		require.True(t, ok, field)
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if v, ok := strings.CutPrefix(rule, "oneof="); ok {
				return strings.Fields(v)
			}
		}
		t.Fatalf("%s has no oneof rule", field)
		return nil
	}
	require.Equal(t, MenuCategories, oneof("Category"))
	require.Equal(t, DietaryTags, oneof("Dietary"))
}
