package database

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"la-cave/internal/model"
)

var (
	tableRe   = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	varcharRe = regexp.MustCompile(`(?m)^\s+(\w+)\s+VARCHAR\((\d+)\)`)
)

// 有長度上限的欄位都必須由驗證規則先擋下，否則 postgres 會回 22001 變成 500
func TestVarcharColumnsBoundedByValidation(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)

	models := map[string]reflect.Type{
		"accounts":     reflect.TypeOf(model.Account{}),
		"menu_items":   reflect.TypeOf(model.MenuItem{}),
		"reservations": reflect.TypeOf(model.Reservation{}),
		"reviews":      reflect.TypeOf(model.Review{}),
	}
	enums := map[string][]string{
		"accounts.role": {string(model.RoleUser), string(model.RoleAdmin)},
	}

	tables := tableRe.FindAllStringSubmatch(string(raw), -1)
	require.Len(t, tables, len(models))
	for _, tbl := range tables {
		typ, ok := models[tbl[1]]
		require.True(t, ok, tbl[1])

		for _, col := range varcharRe.FindAllStringSubmatch(tbl[2], -1) {
			key := tbl[1] + "." + col[1]
			limit, err := strconv.Atoi(col[2])
			require.NoError(t, err)

			values, isEnum := enums[key]
			if !isEnum {
				field, ok := fieldByJSON(typ, camel(col[1]))
				require.True(t, ok, "no model field for %s", key)
				maxLen, oneof := ruleOf(field.Tag.Get("validate"))
				require.True(t, maxLen > 0 || len(oneof) > 0, "%s is VARCHAR(%d) but unbounded by validation", key, limit)
				require.LessOrEqual(t, maxLen, limit, key)
				values = oneof
			}
			for _, v := range values {
				require.LessOrEqual(t, len(v), limit, key)
			}
		}
	}
}

func TestFreeTextColumnsAreText(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)

	for _, tbl := range tableRe.FindAllStringSubmatch(string(raw), -1) {
		for _, col := range varcharRe.FindAllStringSubmatch(tbl[2], -1) {
			switch tbl[1] + "." + col[1] {
			case "reservations.date", "reservations.time", "reservations.name", "reservations.phone",
				"reviews.name", "reviews.email", "accounts.name", "accounts.email":
				t.Errorf("%s.%s should be TEXT", tbl[1], col[1])
			}
		}
	}
}

func camel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func fieldByJSON(typ reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if strings.Split(f.Tag.Get("json"), ",")[0] == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func ruleOf(tag string) (int, []string) {
	var (
		maxLen int
		oneof  []string
	)
	for _, rule := range strings.Split(tag, ",") {
		switch {
		case strings.HasPrefix(rule, "max="):
			maxLen, _ = strconv.Atoi(strings.TrimPrefix(rule, "max="))
		case strings.HasPrefix(rule, "oneof="):
			oneof = strings.Fields(strings.TrimPrefix(rule, "oneof="))
		}
	}
	return maxLen, oneof
}
