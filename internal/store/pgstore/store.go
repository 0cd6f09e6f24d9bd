// Package pgstore 以 PostgreSQL 實作 store；資料表由 database 的 migration 建立
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"la-cave/internal/database"
	"la-cave/internal/filter"
	"la-cave/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Store struct {
	db database.DB
}

var _ store.Store = (*Store)(nil)

var (
	newID   = uuid.NewString
	timeNow = time.Now
)

func New(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close(context.Context) error {
	s.db.Close()
	return nil
}

// validID 非 UUID 的 ID 不送進資料庫，直接視為查無資料
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrNotFound
	}
	return nil
}

// nullableID 空字串或非 UUID 的參照寫入 NULL
func nullableID(id string) any {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	return id
}

func translate(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, store.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// menuColumns JSON 欄位對應的資料表欄位
var menuColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"price":       "price",
	"category":    "category",
	"image":       "image",
	"dietary":     "dietary",
	"rating":      "rating",
	"isPopular":   "is_popular",
	"isAvailable": "is_available",
	"createdAt":   "created_at",
}

var sqlOps = map[filter.Op]string{
	filter.OpEq:  "=",
	filter.OpGt:  ">",
	filter.OpGte: ">=",
	filter.OpLt:  "<",
	filter.OpLte: "<=",
}

// buildWhere 條件一律以參數傳遞，欄位名稱只來自 columns 白名單
func buildWhere(conds []filter.Condition, columns map[string]string, arrays map[string]bool) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, nil
	}
	var (
		parts []string
		args  []any
	)
	for _, c := range conds {
		col, ok := columns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown column %q", c.Field)
		}
		args = append(args, sqlValue(c.Value))
		n := len(args)
		switch {
		case arrays[c.Field] && c.Op == filter.OpIn:
			parts = append(parts, fmt.Sprintf("%s && $%d", col, n))
		case arrays[c.Field]:
			parts = append(parts, fmt.Sprintf("$%d = ANY(%s)", n, col))
		case c.Op == filter.OpIn:
			parts = append(parts, fmt.Sprintf("%s = ANY($%d)", col, n))
		default:
			op, ok := sqlOps[c.Op]
			if !ok {
				return "", nil, fmt.Errorf("unsupported operator %q", c.Op)
			}
			parts = append(parts, fmt.Sprintf("%s %s $%d", col, op, n))
		}
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

// sqlValue 把 []any 轉成 pgx 可編碼的同型別 slice
func sqlValue(v any) any {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return v
	}
	switch list[0].(type) {
	case string:
		out := make([]string, 0, len(list))
		for _, x := range list {
			out = append(out, x.(string))
		}
		return out
	case float64:
		out := make([]float64, 0, len(list))
		for _, x := range list {
			out = append(out, x.(float64))
		}
		return out
	case bool:
		out := make([]bool, 0, len(list))
		for _, x := range list {
			out = append(out, x.(bool))
		}
		return out
	case time.Time:
		out := make([]time.Time, 0, len(list))
		for _, x := range list {
			out = append(out, x.(time.Time))
		}
		return out
	}
	return v
}

func buildOrder(keys []filter.SortKey, columns map[string]string) (string, error) {
	if len(keys) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		col, ok := columns[k.Field]
		if !ok {
			return "", fmt.Errorf("unknown column %q", k.Field)
		}
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}
