package filter

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	"name":      KindString,
	"price":     KindNumber,
	"isPopular": KindBool,
	"createdAt": KindTime,
	"dietary":   KindStringArray,
}

var defaultSort = []SortKey{{Field: "createdAt", Desc: true}}

func TestParseDefaults(t *testing.T) {
	q, err := Parse(url.Values{}, testSchema, defaultSort)
	require.NoError(t, err)
	require.Empty(t, q.Conditions)
	require.Equal(t, defaultSort, q.Sort)
	require.Zero(t, q.Limit)
	require.Zero(t, q.Skip)
}

func TestParseConditions(t *testing.T) {
	v, _ := url.ParseQuery("price[gte]=10&price[lt]=30.5&isPopular=true&dietary[in]=vegan,vegetarian&name=Soup&createdAt[gt]=2024-01-02")
	q, err := Parse(v, testSchema, defaultSort)
	require.NoError(t, err)

	got := map[string]Condition{}
	for _, c := range q.Conditions {
		got[c.Field+":"+string(c.Op)] = c
	}
	require.Len(t, got, 6)
	require.Equal(t, 10.0, got["price:gte"].Value)
	require.Equal(t, 30.5, got["price:lt"].Value)
	require.Equal(t, true, got["isPopular:eq"].Value)
	require.Equal(t, []any{"vegan", "vegetarian"}, got["dietary:in"].Value)
	require.Equal(t, "Soup", got["name:eq"].Value)
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got["createdAt:gt"].Value)
}

func TestParseRepeatedEqualityBecomesIn(t *testing.T) {
	v := url.Values{"name": {"a", "b"}}
	q, err := Parse(v, testSchema, defaultSort)
	require.NoError(t, err)
	require.Len(t, q.Conditions, 1)
	require.Equal(t, OpIn, q.Conditions[0].Op)
	require.Equal(t, []any{"a", "b"}, q.Conditions[0].Value)
}

func TestParseReservedKeysAreNotFilters(t *testing.T) {
	v, _ := url.ParseQuery("select=name,price&sort=price,-name&limit=10&page=3")
	q, err := Parse(v, testSchema, defaultSort)
	require.NoError(t, err)
	require.Empty(t, q.Conditions)
	require.Equal(t, []string{"name", "price"}, q.Select)
	require.True(t, q.Projected)
	require.Equal(t, []SortKey{{Field: "price"}, {Field: "name", Desc: true}}, q.Sort)
	require.EqualValues(t, 10, q.Limit)
	require.EqualValues(t, 20, q.Skip)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field":    "secret=1",
		"unknown operator": "price[ne]=1",
		"malformed key":    "price[gte=1",
		"bad number":       "price[gt]=abc",
		"bad bool":         "isPopular=maybe",
		"bool comparison":  "isPopular[gt]=true",
		"array comparison": "dietary[lt]=vegan",
		"bad date":         "createdAt[gt]=yesterday",
		"bad sort":         "sort=secret",
		"bad select":       "select=secret",
		"bad limit":        "limit=1000",
		"bad page":         "limit=5&page=0",
		"empty in":         "price[in]=,",
		"page overflow":    "limit=100&page=184467440737095517",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := url.ParseQuery(raw)
			require.NoError(t, err)
			_, err = Parse(v, testSchema, defaultSort)
			require.Error(t, err)
			var fe Errors
			require.True(t, errors.As(err, &fe))
			require.NotEmpty(t, fe)
		})
	}
}

func TestSelectOnlyID(t *testing.T) {
	q, err := Parse(url.Values{"select": {"_id"}}, testSchema, defaultSort)
	require.NoError(t, err)
	require.True(t, q.Projected)
	require.Empty(t, q.Select)

	q, err = Parse(url.Values{}, testSchema, defaultSort)
	require.NoError(t, err)
	require.False(t, q.Projected)
}

func TestLargestPageInRange(t *testing.T) {
	q, err := Parse(url.Values{"limit": {"100"}, "page": {"92233720368547758"}}, testSchema, defaultSort)
	require.NoError(t, err)
	require.EqualValues(t, int64(92233720368547757)*100, q.Skip)
	require.Positive(t, q.Skip)
}

func TestPageWithoutLimitIgnored(t *testing.T) {
	q, err := Parse(url.Values{"page": {"4"}}, testSchema, defaultSort)
	require.NoError(t, err)
	require.Zero(t, q.Skip)
}

func TestProject(t *testing.T) {
	type item struct {
		ID    string  `json:"_id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	out, err := Project([]item{{ID: "1", Name: "Soup", Price: 9}}, []string{"name"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, map[string]any{"_id": "1", "name": "Soup"}, out[0])

	out, err = Project([]item{{ID: "1", Name: "Soup", Price: 9}}, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"_id": "1"}, out[0])
}
