package client

import (
	"context"
	"net/http"
	"net/url"

	"la-cave/internal/model"
)

type ReviewService struct {
	c *Client
}

// ListPublic 失敗時回傳空 slice
func (s *ReviewService) ListPublic(ctx context.Context) []model.Review {
	var out envelope[[]model.Review]
	if err := s.c.do(ctx, http.MethodGet, "/reviews", nil, &out); err != nil {
		s.c.logf("reviews: GET /reviews failed: %v", err)
		return []model.Review{}
	}
	if out.Data == nil {
		return []model.Review{}
	}
	return out.Data
}

func (s *ReviewService) ListAll(ctx context.Context) ([]model.Review, error) {
	var out envelope[[]model.Review]
	if err := s.c.do(ctx, http.MethodGet, "/reviews/admin", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *ReviewService) Create(ctx context.Context, r *model.Review) (*model.Review, string, error) {
	var out envelope[*model.Review]
	if err := s.c.do(ctx, http.MethodPost, "/reviews", r, &out); err != nil {
		return nil, "", err
	}
	return out.Data, out.Message, nil
}

func (s *ReviewService) SetApproval(ctx context.Context, id string, approved bool) (*model.Review, error) {
	var out envelope[*model.Review]
	body := map[string]bool{"isApproved": approved}
	if err := s.c.do(ctx, http.MethodPut, "/reviews/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil)
}
