package pgstore

import (
	"context"
	"strings"

	"la-cave/internal/model"
	"la-cave/internal/store"
)

const accountColumns = `id::text, name, email, password_hash, role, phone, created_at`

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	created := *a
	created.ID = newID()
	created.Email = strings.ToLower(a.Email)
	if created.Role == "" {
		created.Role = model.RoleUser
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = timeNow().UTC()
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		created.ID,
		created.Name,
		created.Email,
		created.PasswordHash,
		string(created.Role),
		created.Phone,
		created.CreatedAt,
	)
	if err != nil {
		return nil, translate("CreateAccount", err)
	}
	return &created, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return s.findAccount(ctx, "GetAccountByID", `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return s.findAccount(ctx, "GetAccountByEmail", `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, strings.ToLower(email))
}

func (s *Store) findAccount(ctx context.Context, op, query string, arg any) (*model.Account, error) {
	a := &model.Account{}
	var role string
	if err := s.db.QueryRow(ctx, query, arg).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&role,
		&a.Phone,
		&a.CreatedAt,
	); err != nil {
		return nil, translate(op, err)
	}
	a.Role = model.Role(role)
	return a, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *model.Account) error {
	if err := validID(a.ID); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE accounts SET name = $1, email = $2, phone = $3, role = $4
		 WHERE id = $5`,
		a.Name,
		strings.ToLower(a.Email),
		a.Phone,
		string(a.Role),
		a.ID,
	)
	if err != nil {
		return translate("UpdateAccount", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateAccountPassword(ctx context.Context, id, passwordHash string) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `UPDATE accounts SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return translate("UpdateAccountPassword", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
