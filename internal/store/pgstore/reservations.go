package pgstore

import (
	"context"

	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/jackc/pgx/v5"
)

const reservationSelect = `SELECT id::text, COALESCE(user_id::text, ''), name, email, phone,
	date, time, guests, special_requests, status, created_at FROM reservations`

func scanReservation(row pgx.Row) (model.Reservation, error) {
	var (
		r      model.Reservation
		guests int
		status string
	)
	err := row.Scan(
		&r.ID,
		&r.User,
		&r.Name,
		&r.Email,
		&r.Phone,
		&r.Date,
		&r.Time,
		&guests,
		&r.SpecialRequests,
		&status,
		&r.CreatedAt,
	)
	r.Guests = model.LooseInt(guests)
	r.Status = model.ReservationStatus(status)
	return r, err
}

func (s *Store) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	rows, err := s.db.Query(ctx, reservationSelect+` ORDER BY date DESC, time ASC`)
	if err != nil {
		return nil, translate("ListReservations", err)
	}
	defer rows.Close()

	out := []model.Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, translate("ListReservations", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListReservations", err)
	}
	return out, nil
}

func (s *Store) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	r, err := scanReservation(s.db.QueryRow(ctx, reservationSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translate("GetReservation", err)
	}
	return &r, nil
}

func (s *Store) CreateReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	created := *r
	created.ID = newID()
	if created.Status == "" {
		created.Status = model.StatusPending
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = timeNow().UTC()
	}
	if nullableID(created.User) == nil {
		created.User = ""
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO reservations (id, user_id, name, email, phone, date, time, guests,
		 special_requests, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		created.ID,
		nullableID(created.User),
		created.Name,
		created.Email,
		created.Phone,
		created.Date,
		created.Time,
		int(created.Guests),
		created.SpecialRequests,
		string(created.Status),
		created.CreatedAt,
	)
	if err != nil {
		return nil, translate("CreateReservation", err)
	}
	return &created, nil
}

func (s *Store) ReplaceReservation(ctx context.Context, r *model.Reservation) error {
	if err := validID(r.ID); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE reservations SET user_id = $1, name = $2, email = $3, phone = $4, date = $5,
		 time = $6, guests = $7, special_requests = $8, status = $9
		 WHERE id = $10`,
		nullableID(r.User),
		r.Name,
		r.Email,
		r.Phone,
		r.Date,
		r.Time,
		int(r.Guests),
		r.SpecialRequests,
		string(r.Status),
		r.ID,
	)
	if err != nil {
		return translate("ReplaceReservation", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
