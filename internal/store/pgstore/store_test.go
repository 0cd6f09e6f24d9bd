package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"la-cave/internal/database"
	"la-cave/internal/filter"
	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// assign 依序把 values 寫進 Scan 的目的指標
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: want %d values, got %d", len(dest), len(values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = values[i].(string)
		case *int:
			*p = values[i].(int)
		case *int64:
			*p = values[i].(int64)
		case *float64:
			*p = values[i].(float64)
		case *bool:
			*p = values[i].(bool)
		case *time.Time:
			*p = values[i].(time.Time)
		case **time.Time:
			*p, _ = values[i].(*time.Time)
		case *[]string:
			*p, _ = values[i].([]string)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

type fakeRow struct {
	values  []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	data [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	v := r.data[r.idx]
	r.idx++
	return assign(dest, v)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func tag(s string) pgconn.CommandTag { return pgconn.NewCommandTag(s) }

var (
	idA = uuid.NewString()
	idB = uuid.NewString()
	now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func restore() {
	newID = uuid.NewString
	timeNow = time.Now
}

/* ---------- 完整測試 ---------- */

func TestBuildWhere(t *testing.T) {
	conds := []filter.Condition{
		{Field: "price", Op: filter.OpGte, Value: 10.0},
		{Field: "category", Op: filter.OpIn, Value: []any{"mains", "soups"}},
		{Field: "dietary", Op: filter.OpEq, Value: "vegan"},
		{Field: "dietary", Op: filter.OpIn, Value: []any{"vegan", "dairy-free"}},
		{Field: "isPopular", Op: filter.OpEq, Value: true},
	}
	where, args, err := buildWhere(conds, menuColumns, menuArrays)
	require.NoError(t, err)
	require.Equal(t, " WHERE price >= $1 AND category = ANY($2) AND $3 = ANY(dietary) AND dietary && $4 AND is_popular = $5", where)
	require.Equal(t, []any{10.0, []string{"mains", "soups"}, "vegan", []string{"vegan", "dairy-free"}, true}, args)

	where, args, err = buildWhere(nil, menuColumns, menuArrays)
	require.NoError(t, err)
	require.Empty(t, where)
	require.Empty(t, args)

	_, _, err = buildWhere([]filter.Condition{{Field: "password", Op: filter.OpEq, Value: "x"}}, menuColumns, menuArrays)
	require.Error(t, err)
}

func TestSQLValue(t *testing.T) {
	require.Equal(t, []float64{1, 2}, sqlValue([]any{1.0, 2.0}))
	require.Equal(t, []bool{true}, sqlValue([]any{true}))
	require.Equal(t, []time.Time{now}, sqlValue([]any{now}))
	require.Equal(t, "x", sqlValue("x"))
}

func TestBuildOrder(t *testing.T) {
	order, err := buildOrder([]filter.SortKey{{Field: "price"}, {Field: "createdAt", Desc: true}}, menuColumns)
	require.NoError(t, err)
	require.Equal(t, " ORDER BY price ASC, created_at DESC", order)

	_, err = buildOrder([]filter.SortKey{{Field: "nope"}}, menuColumns)
	require.Error(t, err)
}

func TestTranslate(t *testing.T) {
	require.ErrorIs(t, translate("Op", pgx.ErrNoRows), store.ErrNotFound)
	require.ErrorIs(t, translate("Op", &pgconn.PgError{Code: "23505"}), store.ErrDuplicate)
	err := translate("Op", errors.New("boom"))
	require.EqualError(t, err, "Op: boom")
}

func menuRow(id, name string) []any {
	return []any{id, name, "desc", 12.5, "mains", "no-photo.jpg", []string{"vegan"}, 4.5, true, true, now}
}

func TestMenuStore(t *testing.T) {
	t.Cleanup(restore)
	ctx := context.Background()

	t.Run("List builds query", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL, gotArgs = sql, args
				return &fakeRows{data: [][]any{menuRow(idA, "Soup"), menuRow(idB, "Steak")}}, nil
			},
		}
		q := filter.Query{
			Conditions: []filter.Condition{{Field: "price", Op: filter.OpLt, Value: 30.0}},
			Sort:       []filter.SortKey{{Field: "createdAt", Desc: true}},
			Limit:      10,
			Skip:       20,
		}
		items, err := New(db).ListMenuItems(ctx, q)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, "Steak", items[1].Name)
		require.Equal(t, []string{"vegan"}, items[0].Dietary)
		require.True(t, strings.HasSuffix(gotSQL, " WHERE price < $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"))
		require.Equal(t, []any{30.0, int64(10), int64(20)}, gotArgs)
	})

	t.Run("List error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("down") },
		}
		_, err := New(db).ListMenuItems(ctx, filter.Query{})
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{err: errors.New("iter")}, nil
		}
		_, err = New(db).ListMenuItems(ctx, filter.Query{})
		require.Error(t, err)
	})

	t.Run("Get", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				if args[0] == idA {
					return &fakeRow{values: menuRow(idA, "Soup")}
				}
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		s := New(db)
		m, err := s.GetMenuItem(ctx, idA)
		require.NoError(t, err)
		require.Equal(t, "Soup", m.Name)

		_, err = s.GetMenuItem(ctx, idB)
		require.ErrorIs(t, err, store.ErrNotFound)

		// 非 UUID 不會查詢資料庫
		_, err = s.GetMenuItem(ctx, "not-a-uuid")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Create", func(t *testing.T) {
		newID = func() string { return idA }
		timeNow = func() time.Time { return now }
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return tag("INSERT 0 1"), nil
			},
		}
		created, err := New(db).CreateMenuItem(ctx, &model.MenuItem{Name: "Soup", Price: 9, Category: "soups"})
		require.NoError(t, err)
		require.Equal(t, idA, created.ID)
		require.Equal(t, now, created.CreatedAt)
		require.Equal(t, []string{}, created.Dietary)
		require.Equal(t, idA, gotArgs[0])
	})

	t.Run("Replace and delete", func(t *testing.T) {
		affected := "UPDATE 1"
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) { return tag(affected), nil },
		}
		s := New(db)
		require.NoError(t, s.ReplaceMenuItem(ctx, &model.MenuItem{ID: idA}))
		affected = "UPDATE 0"
		require.ErrorIs(t, s.ReplaceMenuItem(ctx, &model.MenuItem{ID: idA}), store.ErrNotFound)

		affected = "DELETE 1"
		require.NoError(t, s.DeleteMenuItem(ctx, idA))
		affected = "DELETE 0"
		require.ErrorIs(t, s.DeleteMenuItem(ctx, idA), store.ErrNotFound)
		require.ErrorIs(t, s.DeleteMenuItem(ctx, "x"), store.ErrNotFound)
	})

	t.Run("Count", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{values: []any{int64(3)}} },
		}
		n, err := New(db).CountMenuItems(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
	})
}

func TestAccountStore(t *testing.T) {
	t.Cleanup(restore)
	ctx := context.Background()

	t.Run("Create lowercases email", func(t *testing.T) {
		newID = func() string { return idA }
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return tag("INSERT 0 1"), nil
			},
		}
		a, err := New(db).CreateAccount(ctx, &model.Account{Name: "Jane", Email: "Jane@X.com", PasswordHash: "h"})
		require.NoError(t, err)
		require.Equal(t, "jane@x.com", a.Email)
		require.Equal(t, model.RoleUser, a.Role)
		require.Equal(t, "jane@x.com", gotArgs[2])
	})

	t.Run("Create duplicate", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}
			},
		}
		_, err := New(db).CreateAccount(ctx, &model.Account{Email: "a@b.com"})
		require.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("Get by email", func(t *testing.T) {
		var gotArg any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArg = args[0]
				return &fakeRow{values: []any{idA, "Jane", "jane@x.com", "hash", "admin", "", now}}
			},
		}
		a, err := New(db).GetAccountByEmail(ctx, "JANE@x.com")
		require.NoError(t, err)
		require.Equal(t, "jane@x.com", gotArg)
		require.Equal(t, model.RoleAdmin, a.Role)
		require.Equal(t, "hash", a.PasswordHash)
	})

	t.Run("Get by id", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} },
		}
		_, err := New(db).GetAccountByID(ctx, idA)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = New(db).GetAccountByID(ctx, "bad")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		affected := "UPDATE 1"
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) { return tag(affected), nil },
		}
		s := New(db)
		require.NoError(t, s.UpdateAccount(ctx, &model.Account{ID: idA, Email: "a@b.com"}))
		require.NoError(t, s.UpdateAccountPassword(ctx, idA, "h"))
		affected = "UPDATE 0"
		require.ErrorIs(t, s.UpdateAccountPassword(ctx, idA, "h"), store.ErrNotFound)
	})
}

func TestReservationStore(t *testing.T) {
	t.Cleanup(restore)
	ctx := context.Background()

	row := []any{idA, "", "Ann", "ann@x.com", "555", "2025-06-01", "19:00", 4, "", "pending", now}

	t.Run("List orders by date then time", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				gotSQL = sql
				return &fakeRows{data: [][]any{row}}, nil
			},
		}
		list, err := New(db).ListReservations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.EqualValues(t, 4, list[0].Guests)
		require.Equal(t, model.StatusPending, list[0].Status)
		require.True(t, strings.HasSuffix(gotSQL, "ORDER BY date DESC, time ASC"))
	})

	t.Run("Create stores null user", func(t *testing.T) {
		newID = func() string { return idB }
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return tag("INSERT 0 1"), nil
			},
		}
		created, err := New(db).CreateReservation(ctx, &model.Reservation{Name: "Ann", Guests: 2})
		require.NoError(t, err)
		require.Equal(t, idB, created.ID)
		require.Equal(t, model.StatusPending, created.Status)
		require.Nil(t, gotArgs[1])

		_, err = New(db).CreateReservation(ctx, &model.Reservation{User: idA})
		require.NoError(t, err)
		require.Equal(t, idA, gotArgs[1])
	})

	t.Run("Get and replace", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{values: row} },
			ExecFn:     func(context.Context, string, ...any) (pgconn.CommandTag, error) { return tag("UPDATE 0"), nil },
		}
		r, err := New(db).GetReservation(ctx, idA)
		require.NoError(t, err)
		require.Equal(t, "Ann", r.Name)
		require.ErrorIs(t, New(db).ReplaceReservation(ctx, r), store.ErrNotFound)
	})
}

func TestReviewStore(t *testing.T) {
	t.Cleanup(restore)
	ctx := context.Background()
	approvedAt := now

	t.Run("List approved only", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				gotSQL = sql
				return &fakeRows{data: [][]any{
					{idA, "", "Jane", "j@x.com", 5, "Great", true, idB, &approvedAt, now},
					{idB, "", "Joe", "joe@x.com", 3, "Ok", false, "", (*time.Time)(nil), now},
				}}, nil
			},
		}
		list, err := New(db).ListReviews(ctx, true)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Contains(t, gotSQL, "WHERE is_approved = TRUE ORDER BY created_at DESC")
		require.Equal(t, idB, list[0].ApprovedBy)
		require.NotNil(t, list[0].ApprovedAt)
		require.Nil(t, list[1].ApprovedAt)

		_, err = New(db).ListReviews(ctx, false)
		require.NoError(t, err)
		require.NotContains(t, gotSQL, "WHERE")
	})

	t.Run("Replace keeps approval", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return tag("UPDATE 1"), nil
			},
		}
		r := &model.Review{ID: idA, Name: "Jane"}
		r.SetApproval(true, idB, now)
		require.NoError(t, New(db).ReplaceReview(ctx, r))
		require.Equal(t, true, gotArgs[5])
		require.Equal(t, idB, gotArgs[6])
		require.Equal(t, r.ApprovedAt, gotArgs[7])
	})

	t.Run("Delete", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) { return tag("DELETE 0"), nil },
		}
		require.ErrorIs(t, New(db).DeleteReview(ctx, idA), store.ErrNotFound)
	})

	t.Run("Create", func(t *testing.T) {
		newID = func() string { return idA }
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) { return tag("INSERT 0 1"), nil },
		}
		r, err := New(db).CreateReview(ctx, &model.Review{Name: "Jane", Rating: 5})
		require.NoError(t, err)
		require.Equal(t, idA, r.ID)
		require.False(t, r.IsApproved)
	})
}

func TestPingAndClose(t *testing.T) {
	closed := false
	db := &database.FakeDB{
		PingFn:  func(context.Context) error { return nil },
		CloseFn: func() { closed = true },
	}
	s := New(db)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close(context.Background()))
	require.True(t, closed)
}
