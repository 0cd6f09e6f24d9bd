package store

import (
	"context"

	"la-cave/internal/filter"
	"la-cave/internal/model"
)

// Fake 以函式欄位實作 Store，未設定的方法會 panic，方便測試時只注入需要的行為
type Fake struct {
	CreateAccountFn         func(ctx context.Context, a *model.Account) (*model.Account, error)
	GetAccountByIDFn        func(ctx context.Context, id string) (*model.Account, error)
	GetAccountByEmailFn     func(ctx context.Context, email string) (*model.Account, error)
	UpdateAccountFn         func(ctx context.Context, a *model.Account) error
	UpdateAccountPasswordFn func(ctx context.Context, id, passwordHash string) error
	ListMenuItemsFn         func(ctx context.Context, q filter.Query) ([]model.MenuItem, error)
	GetMenuItemFn           func(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItemFn        func(ctx context.Context, m *model.MenuItem) (*model.MenuItem, error)
	ReplaceMenuItemFn       func(ctx context.Context, m *model.MenuItem) error
	DeleteMenuItemFn        func(ctx context.Context, id string) error
	CountMenuItemsFn        func(ctx context.Context) (int64, error)
	ListReservationsFn      func(ctx context.Context) ([]model.Reservation, error)
	GetReservationFn        func(ctx context.Context, id string) (*model.Reservation, error)
	CreateReservationFn     func(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	ReplaceReservationFn    func(ctx context.Context, r *model.Reservation) error
	ListReviewsFn           func(ctx context.Context, approvedOnly bool) ([]model.Review, error)
	GetReviewFn             func(ctx context.Context, id string) (*model.Review, error)
	CreateReviewFn          func(ctx context.Context, r *model.Review) (*model.Review, error)
	ReplaceReviewFn         func(ctx context.Context, r *model.Review) error
	DeleteReviewFn          func(ctx context.Context, id string) error
	PingFn                  func(ctx context.Context) error
	CloseFn                 func(ctx context.Context) error
}

var _ Store = (*Fake)(nil)

func (f *Fake) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	if f.CreateAccountFn != nil {
		return f.CreateAccountFn(ctx, a)
	}
	panic("unexpected CreateAccount")
}

func (f *Fake) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	if f.GetAccountByIDFn != nil {
		return f.GetAccountByIDFn(ctx, id)
	}
	panic("unexpected GetAccountByID")
}

func (f *Fake) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	if f.GetAccountByEmailFn != nil {
		return f.GetAccountByEmailFn(ctx, email)
	}
	panic("unexpected GetAccountByEmail")
}

func (f *Fake) UpdateAccount(ctx context.Context, a *model.Account) error {
	if f.UpdateAccountFn != nil {
		return f.UpdateAccountFn(ctx, a)
	}
	panic("unexpected UpdateAccount")
}

func (f *Fake) UpdateAccountPassword(ctx context.Context, id, passwordHash string) error {
	if f.UpdateAccountPasswordFn != nil {
		return f.UpdateAccountPasswordFn(ctx, id, passwordHash)
	}
	panic("unexpected UpdateAccountPassword")
}

func (f *Fake) ListMenuItems(ctx context.Context, q filter.Query) ([]model.MenuItem, error) {
	if f.ListMenuItemsFn != nil {
		return f.ListMenuItemsFn(ctx, q)
	}
	panic("unexpected ListMenuItems")
}

func (f *Fake) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	if f.GetMenuItemFn != nil {
		return f.GetMenuItemFn(ctx, id)
	}
	panic("unexpected GetMenuItem")
}

func (f *Fake) CreateMenuItem(ctx context.Context, m *model.MenuItem) (*model.MenuItem, error) {
	if f.CreateMenuItemFn != nil {
		return f.CreateMenuItemFn(ctx, m)
	}
	panic("unexpected CreateMenuItem")
}

func (f *Fake) ReplaceMenuItem(ctx context.Context, m *model.MenuItem) error {
	if f.ReplaceMenuItemFn != nil {
		return f.ReplaceMenuItemFn(ctx, m)
	}
	panic("unexpected ReplaceMenuItem")
}

func (f *Fake) DeleteMenuItem(ctx context.Context, id string) error {
	if f.DeleteMenuItemFn != nil {
		return f.DeleteMenuItemFn(ctx, id)
	}
	panic("unexpected DeleteMenuItem")
}

func (f *Fake) CountMenuItems(ctx context.Context) (int64, error) {
	if f.CountMenuItemsFn != nil {
		return f.CountMenuItemsFn(ctx)
	}
	panic("unexpected CountMenuItems")
}

func (f *Fake) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	if f.ListReservationsFn != nil {
		return f.ListReservationsFn(ctx)
	}
	panic("unexpected ListReservations")
}

func (f *Fake) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	if f.GetReservationFn != nil {
		return f.GetReservationFn(ctx, id)
	}
	panic("unexpected GetReservation")
}

func (f *Fake) CreateReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	if f.CreateReservationFn != nil {
		return f.CreateReservationFn(ctx, r)
	}
	panic("unexpected CreateReservation")
}

func (f *Fake) ReplaceReservation(ctx context.Context, r *model.Reservation) error {
	if f.ReplaceReservationFn != nil {
		return f.ReplaceReservationFn(ctx, r)
	}
	panic("unexpected ReplaceReservation")
}

func (f *Fake) ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error) {
	if f.ListReviewsFn != nil {
		return f.ListReviewsFn(ctx, approvedOnly)
	}
	panic("unexpected ListReviews")
}

func (f *Fake) GetReview(ctx context.Context, id string) (*model.Review, error) {
	if f.GetReviewFn != nil {
		return f.GetReviewFn(ctx, id)
	}
	panic("unexpected GetReview")
}

func (f *Fake) CreateReview(ctx context.Context, r *model.Review) (*model.Review, error) {
	if f.CreateReviewFn != nil {
		return f.CreateReviewFn(ctx, r)
	}
	panic("unexpected CreateReview")
}

func (f *Fake) ReplaceReview(ctx context.Context, r *model.Review) error {
	if f.ReplaceReviewFn != nil {
		return f.ReplaceReviewFn(ctx, r)
	}
	panic("unexpected ReplaceReview")
}

func (f *Fake) DeleteReview(ctx context.Context, id string) error {
	if f.DeleteReviewFn != nil {
		return f.DeleteReviewFn(ctx, id)
	}
	panic("unexpected DeleteReview")
}

func (f *Fake) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *Fake) Close(ctx context.Context) error {
	if f.CloseFn != nil {
		return f.CloseFn(ctx)
	}
	return nil
}
