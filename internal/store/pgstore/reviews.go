package pgstore

import (
	"context"

	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/jackc/pgx/v5"
)

const reviewSelect = `SELECT id::text, COALESCE(user_id::text, ''), name, email, rating, comment,
	is_approved, COALESCE(approved_by::text, ''), approved_at, created_at FROM reviews`

func scanReview(row pgx.Row) (model.Review, error) {
	var r model.Review
	err := row.Scan(
		&r.ID,
		&r.User,
		&r.Name,
		&r.Email,
		&r.Rating,
		&r.Comment,
		&r.IsApproved,
		&r.ApprovedBy,
		&r.ApprovedAt,
		&r.CreatedAt,
	)
	return r, err
}

func (s *Store) ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error) {
	query := reviewSelect
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	rows, err := s.db.Query(ctx, query+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate("ListReviews", err)
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, translate("ListReviews", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListReviews", err)
	}
	return out, nil
}

func (s *Store) GetReview(ctx context.Context, id string) (*model.Review, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	r, err := scanReview(s.db.QueryRow(ctx, reviewSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translate("GetReview", err)
	}
	return &r, nil
}

func (s *Store) CreateReview(ctx context.Context, r *model.Review) (*model.Review, error) {
	created := *r
	created.ID = newID()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = timeNow().UTC()
	}
	if nullableID(created.User) == nil {
		created.User = ""
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO reviews (id, user_id, name, email, rating, comment, is_approved,
		 approved_by, approved_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		created.ID,
		nullableID(created.User),
		created.Name,
		created.Email,
		created.Rating,
		created.Comment,
		created.IsApproved,
		nullableID(created.ApprovedBy),
		created.ApprovedAt,
		created.CreatedAt,
	)
	if err != nil {
		return nil, translate("CreateReview", err)
	}
	return &created, nil
}

func (s *Store) ReplaceReview(ctx context.Context, r *model.Review) error {
	if err := validID(r.ID); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE reviews SET user_id = $1, name = $2, email = $3, rating = $4, comment = $5,
		 is_approved = $6, approved_by = $7, approved_at = $8
		 WHERE id = $9`,
		nullableID(r.User),
		r.Name,
		r.Email,
		r.Rating,
		r.Comment,
		r.IsApproved,
		nullableID(r.ApprovedBy),
		r.ApprovedAt,
		r.ID,
	)
	if err != nil {
		return translate("ReplaceReview", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return translate("DeleteReview", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
