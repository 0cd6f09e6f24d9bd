// Package store 定義持久層介面；實作位於 mongostore 與 pgstore
package store

import (
	"context"
	"errors"

	"la-cave/internal/filter"
	"la-cave/internal/model"
)

var (
	// ErrNotFound 查無資料（包含格式錯誤的 ID）
	ErrNotFound = errors.New("not found")
	// ErrDuplicate 違反唯一索引（帳號 Email）
	ErrDuplicate = errors.New("duplicate key")
)

type AccountStore interface {
	CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error)
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	UpdateAccount(ctx context.Context, a *model.Account) error
	UpdateAccountPassword(ctx context.Context, id, passwordHash string) error
}

type MenuStore interface {
	ListMenuItems(ctx context.Context, q filter.Query) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, m *model.MenuItem) (*model.MenuItem, error)
	ReplaceMenuItem(ctx context.Context, m *model.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	CountMenuItems(ctx context.Context) (int64, error)
}

type ReservationStore interface {
	// ListReservations 依日期新到舊、時間早到晚排序
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	GetReservation(ctx context.Context, id string) (*model.Reservation, error)
	CreateReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	ReplaceReservation(ctx context.Context, r *model.Reservation) error
}

type ReviewStore interface {
	// ListReviews 依建立時間新到舊；approvedOnly 只回傳已核准
	ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error)
	GetReview(ctx context.Context, id string) (*model.Review, error)
	CreateReview(ctx context.Context, r *model.Review) (*model.Review, error)
	ReplaceReview(ctx context.Context, r *model.Review) error
	DeleteReview(ctx context.Context, id string) error
}

// Store 完整的後端實作
type Store interface {
	AccountStore
	MenuStore
	ReservationStore
	ReviewStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// 菜單可查詢欄位
var MenuSchema = filter.Schema{
	"name":        filter.KindString,
	"description": filter.KindString,
	"price":       filter.KindNumber,
	"category":    filter.KindString,
	"image":       filter.KindString,
	"dietary":     filter.KindStringArray,
	"rating":      filter.KindNumber,
	"isPopular":   filter.KindBool,
	"isAvailable": filter.KindBool,
	"createdAt":   filter.KindTime,
}
