package pgstore

import (
	"context"
	"fmt"

	"la-cave/internal/filter"
	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/jackc/pgx/v5"
)

const menuSelect = `SELECT id::text, name, description, price, category, image, dietary,
	rating, is_popular, is_available, created_at FROM menu_items`

var menuArrays = map[string]bool{"dietary": true}

func scanMenuItem(row pgx.Row) (model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Category,
		&m.Image,
		&m.Dietary,
		&m.Rating,
		&m.IsPopular,
		&m.IsAvailable,
		&m.CreatedAt,
	)
	if m.Dietary == nil {
		m.Dietary = []string{}
	}
	return m, err
}

func (s *Store) ListMenuItems(ctx context.Context, q filter.Query) ([]model.MenuItem, error) {
	where, args, err := buildWhere(q.Conditions, menuColumns, menuArrays)
	if err != nil {
		return nil, fmt.Errorf("ListMenuItems: %w", err)
	}
	order, err := buildOrder(q.Sort, menuColumns)
	if err != nil {
		return nil, fmt.Errorf("ListMenuItems: %w", err)
	}
	query := menuSelect + where + order
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Skip > 0 {
		args = append(args, q.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("ListMenuItems", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, translate("ListMenuItems", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListMenuItems", err)
	}
	return items, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	m, err := scanMenuItem(s.db.QueryRow(ctx, menuSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translate("GetMenuItem", err)
	}
	return &m, nil
}

func (s *Store) CreateMenuItem(ctx context.Context, m *model.MenuItem) (*model.MenuItem, error) {
	created := *m
	created.ID = newID()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = timeNow().UTC()
	}
	if created.Dietary == nil {
		created.Dietary = []string{}
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO menu_items (id, name, description, price, category, image, dietary,
		 rating, is_popular, is_available, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		created.ID,
		created.Name,
		created.Description,
		created.Price,
		created.Category,
		created.Image,
		created.Dietary,
		created.Rating,
		created.IsPopular,
		created.IsAvailable,
		created.CreatedAt,
	)
	if err != nil {
		return nil, translate("CreateMenuItem", err)
	}
	return &created, nil
}

func (s *Store) ReplaceMenuItem(ctx context.Context, m *model.MenuItem) error {
	if err := validID(m.ID); err != nil {
		return err
	}
	dietary := m.Dietary
	if dietary == nil {
		dietary = []string{}
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE menu_items SET name = $1, description = $2, price = $3, category = $4,
		 image = $5, dietary = $6, rating = $7, is_popular = $8, is_available = $9
		 WHERE id = $10`,
		m.Name,
		m.Description,
		m.Price,
		m.Category,
		m.Image,
		dietary,
		m.Rating,
		m.IsPopular,
		m.IsAvailable,
		m.ID,
	)
	if err != nil {
		return translate("ReplaceMenuItem", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return translate("DeleteMenuItem", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountMenuItems(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, translate("CountMenuItems", err)
	}
	return n, nil
}
