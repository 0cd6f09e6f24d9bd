// Package filter 把查詢字串轉成有型別的 欄位/運算子/值 條件，
// 由各個 store 後端自行翻譯成原生查詢語法，不做任何字串替換。
package filter

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Op 比較運算子
type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

// Kind 欄位型別，決定字串值如何轉換以及允許哪些運算子
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindTime
	KindStringArray
)

// Schema 允許查詢的欄位（JSON 名稱）與型別
type Schema map[string]Kind

// 保留參數，不會被當成過濾條件
var reserved = map[string]bool{"select": true, "sort": true, "page": true, "limit": true}

const MaxLimit = 100

type Condition struct {
	Field string
	Op    Op
	// Value 依 Kind 為 string、float64、bool、time.Time；OpIn 時為同型別的 []any
	Value any
}

type SortKey struct {
	Field string
	Desc  bool
}

// Query 解析結果；Projected 表示有 select 參數，此時 Select 為空代表只輸出 _id
type Query struct {
	Conditions []Condition
	Sort       []SortKey
	Select     []string
	Projected  bool
	Limit      int64
	Skip       int64
}

// FieldError 單一欄位的錯誤訊息
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors 解析過程收集到的所有欄位錯誤
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Parse 依 schema 解析查詢參數；沒有 sort 參數時使用 defaultSort
func Parse(values url.Values, schema Schema, defaultSort []SortKey) (Query, error) {
	var (
		q    Query
		errs Errors
	)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if reserved[key] {
			continue
		}
		field, op, err := splitKey(key)
		if err != nil {
			errs = append(errs, FieldError{Field: key, Message: err.Error()})
			continue
		}
		kind, ok := schema[field]
		if !ok {
			errs = append(errs, FieldError{Field: field, Message: "unknown filter field"})
			continue
		}
		if !opAllowed(kind, op) {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("operator %q not supported", op)})
			continue
		}

		raw := values[key]
		if op == OpEq && len(raw) > 1 {
			op = OpIn
		}
		cond, err := buildCondition(field, kind, op, raw)
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: err.Error()})
			continue
		}
		q.Conditions = append(q.Conditions, cond)
	}

	if s := values.Get("sort"); s != "" {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			key := SortKey{Field: part}
			if strings.HasPrefix(part, "-") {
				key = SortKey{Field: part[1:], Desc: true}
			}
			if _, ok := schema[key.Field]; !ok {
				errs = append(errs, FieldError{Field: "sort", Message: fmt.Sprintf("cannot sort by %q", key.Field)})
				continue
			}
			q.Sort = append(q.Sort, key)
		}
	}
	if len(q.Sort) == 0 {
		q.Sort = append(q.Sort, defaultSort...)
	}

	if s := values.Get("select"); s != "" {
		q.Projected = true
		for _, f := range strings.Split(s, ",") {
			f = strings.TrimSpace(f)
			if f == "" || f == "_id" {
				continue
			}
			if _, ok := schema[f]; !ok {
				errs = append(errs, FieldError{Field: "select", Message: fmt.Sprintf("cannot select %q", f)})
				continue
			}
			q.Select = append(q.Select, f)
		}
	}

	if s := values.Get("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 || n > MaxLimit {
			errs = append(errs, FieldError{Field: "limit", Message: fmt.Sprintf("must be an integer between 1 and %d", MaxLimit)})
		} else {
			q.Limit = n
		}
	}
	if s := values.Get("page"); s != "" && q.Limit > 0 {
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err != nil || n < 1:
			errs = append(errs, FieldError{Field: "page", Message: "must be a positive integer"})
		case n-1 > math.MaxInt64/q.Limit:
			errs = append(errs, FieldError{Field: "page", Message: "page is out of range"})
		default:
			q.Skip = (n - 1) * q.Limit
		}
	}

	if len(errs) > 0 {
		return Query{}, errs
	}
	return q, nil
}

// splitKey 拆解 "price[gte]" 形式的參數名稱
func splitKey(key string) (string, Op, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, OpEq, nil
	}
	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", "", fmt.Errorf("malformed filter key")
	}
	op := Op(key[open+1 : len(key)-1])
	switch op {
	case OpGt, OpGte, OpLt, OpLte, OpIn:
		return key[:open], op, nil
	}
	return "", "", fmt.Errorf("unknown operator %q", op)
}

func opAllowed(kind Kind, op Op) bool {
	switch kind {
	case KindBool, KindStringArray:
		return op == OpEq || op == OpIn
	}
	return true
}

func buildCondition(field string, kind Kind, op Op, raw []string) (Condition, error) {
	if op != OpIn {
		v, err := convert(kind, raw[0])
		if err != nil {
			return Condition{}, err
		}
		return Condition{Field: field, Op: op, Value: v}, nil
	}

	var list []any
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := convert(kind, part)
			if err != nil {
				return Condition{}, err
			}
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		return Condition{}, fmt.Errorf("empty value list")
	}
	return Condition{Field: field, Op: OpIn, Value: list}, nil
}

func convert(kind Kind, s string) (any, error) {
	switch kind {
	case KindNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return f, nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", s)
		}
		return b, nil
	case KindTime:
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a date", s)
		}
		return t, nil
	}
	return s, nil
}
