package client

import (
	"context"
	"net/http"
	"net/url"

	"la-cave/internal/model"
)

type ReservationService struct {
	c *Client
}

func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	var out envelope[[]model.Reservation]
	if err := s.c.do(ctx, http.MethodGet, "/reservations", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create 回傳建立的訂位與伺服器訊息
func (s *ReservationService) Create(ctx context.Context, r *model.Reservation) (*model.Reservation, string, error) {
	var out envelope[*model.Reservation]
	if err := s.c.do(ctx, http.MethodPost, "/reservations", r, &out); err != nil {
		return nil, "", err
	}
	return out.Data, out.Message, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*model.Reservation, error) {
	var out envelope[*model.Reservation]
	if err := s.c.do(ctx, http.MethodGet, "/reservations/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *ReservationService) Update(ctx context.Context, id string, fields map[string]any) (*model.Reservation, error) {
	var out envelope[*model.Reservation]
	if err := s.c.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (*model.Reservation, error) {
	return s.Update(ctx, id, map[string]any{"status": status})
}
