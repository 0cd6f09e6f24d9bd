package client

import (
	"context"
	"net/http"
	"net/url"

	"la-cave/internal/model"
)

type MenuService struct {
	c *Client
}

// list 讀取失敗時回傳空 slice，錯誤只記錄不往外傳
func (s *MenuService) list(ctx context.Context, path string) []model.MenuItem {
	var out envelope[[]model.MenuItem]
	if err := s.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		s.c.logf("menu: GET %s failed: %v", path, err)
		return []model.MenuItem{}
	}
	if out.Data == nil {
		return []model.MenuItem{}
	}
	return out.Data
}

// List query 為過濾條件，例如 price[lte]=20、sort=-price
func (s *MenuService) List(ctx context.Context, query url.Values) []model.MenuItem {
	path := "/menu"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return s.list(ctx, path)
}

func (s *MenuService) Popular(ctx context.Context) []model.MenuItem {
	return s.list(ctx, "/menu/popular/items")
}

func (s *MenuService) ByCategory(ctx context.Context, category string) []model.MenuItem {
	return s.list(ctx, "/menu/category/"+url.PathEscape(category))
}

// Get 查無或失敗時回傳 nil
func (s *MenuService) Get(ctx context.Context, id string) *model.MenuItem {
	var out envelope[*model.MenuItem]
	if err := s.c.do(ctx, http.MethodGet, "/menu/"+url.PathEscape(id), nil, &out); err != nil {
		s.c.logf("menu: GET item %s failed: %v", id, err)
		return nil
	}
	return out.Data
}

func (s *MenuService) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	var out envelope[*model.MenuItem]
	if err := s.c.do(ctx, http.MethodPost, "/menu", item, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Update fields 只需包含要修改的欄位
func (s *MenuService) Update(ctx context.Context, id string, fields map[string]any) (*model.MenuItem, error) {
	var out envelope[*model.MenuItem]
	if err := s.c.do(ctx, http.MethodPut, "/menu/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id), nil, nil)
}
