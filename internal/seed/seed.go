// Package seed 建立預設管理員帳號與範例菜單
package seed

import (
	"context"
	"errors"
	"fmt"

	"la-cave/internal/model"
	"la-cave/internal/service"
	"la-cave/internal/store"
	"la-cave/internal/worker"
)

const (
	DefaultAdminEmail    = "admin@bistro.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin User"
	DefaultAdminPhone    = "1234567890"
)

var hashPassword = service.HashPassword

type AdminOptions struct {
	Name     string
	Email    string
	Password string
	Phone    string
	// Reset 帳號已存在時重設密碼並確保為管理員
	Reset bool
}

func (o *AdminOptions) defaults() {
	if o.Name == "" {
		o.Name = DefaultAdminName
	}
	if o.Email == "" {
		o.Email = DefaultAdminEmail
	}
	if o.Password == "" {
		o.Password = DefaultAdminPassword
	}
	if o.Phone == "" {
		o.Phone = DefaultAdminPhone
	}
}

// AdminResult Admin 的執行結果
type AdminResult string

const (
	AdminCreated AdminResult = "created"
	AdminExists  AdminResult = "exists"
	AdminReset   AdminResult = "reset"
)

func Admin(ctx context.Context, accounts store.AccountStore, opts AdminOptions) (AdminResult, error) {
	opts.defaults()

	existing, err := accounts.GetAccountByEmail(ctx, opts.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(opts.Password)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if !opts.Reset {
			return AdminExists, nil
		}
		if err := accounts.UpdateAccountPassword(ctx, existing.ID, hash); err != nil {
			return "", err
		}
		if !existing.IsAdmin() {
			existing.Role = model.RoleAdmin
			if err := accounts.UpdateAccount(ctx, existing); err != nil {
				return "", err
			}
		}
		return AdminReset, nil
	}

	if _, err := accounts.CreateAccount(ctx, &model.Account{
		Name:         opts.Name,
		Email:        opts.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Phone:        opts.Phone,
	}); err != nil {
		return "", err
	}
	return AdminCreated, nil
}

// Menu 菜單為空時才寫入範例項目，回傳寫入筆數
func Menu(ctx context.Context, items store.MenuStore, workers int, sample []model.MenuItem) (int, error) {
	n, err := items.CountMenuItems(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	pool := worker.NewPool(ctx, workers)
	for i := range sample {
		item := sample[i]
		item.Normalize()
		pool.Submit(func(ctx context.Context) error {
			if _, err := items.CreateMenuItem(ctx, &item); err != nil {
				return fmt.Errorf("%s: %w", item.Name, err)
			}
			return nil
		})
	}
	if err := pool.Stop(); err != nil {
		return 0, err
	}
	return len(sample), nil
}
