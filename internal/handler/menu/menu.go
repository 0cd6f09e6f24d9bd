package menu

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"la-cave/internal/api"
	"la-cave/internal/filter"
	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgNotFound    = "Menu item not found"
	msgInvalidBody = "Invalid request body"
	popularLimit   = 6
)

var defaultSort = []filter.SortKey{{Field: "createdAt", Desc: true}}

// ListMenuHandler 依查詢參數過濾、排序並分頁列出菜單
// @Summary     菜單列表
// @Description 任何非保留參數都會成為過濾條件，格式為 field=value 或 field[op]=value (op: gt, gte, lt, lte, in)；
// @Description select 選擇欄位，sort 排序 (預設 -createdAt)，limit/page 分頁 (limit 上限 100)
// @Tags        menu
// @Produce     json
// @Param       select   query    string false "例如 name,price"
// @Param       sort     query    string false "例如 price,-rating"
// @Param       limit    query    int    false "每頁筆數"
// @Param       page     query    int    false "頁數，需搭配 limit"
// @Param       category query    string false "分類"
// @Success     200      {object} api.Response{data=[]model.MenuItem}
// @Failure     400      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /menu [get]
func ListMenuHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		q, err := filter.Parse(c.QueryParams(), store.MenuSchema, defaultSort)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		list, err := items.ListMenuItems(c.Request().Context(), q)
		if err != nil {
			return err
		}
		if !q.Projected {
			return c.JSON(http.StatusOK, api.List(list))
		}

		projected, err := filter.Project(list, q.Select)
		if err != nil {
			return fmt.Errorf("project menu items: %w", err)
		}
		return c.JSON(http.StatusOK, api.List(projected))
	}
}

// GetMenuItemHandler 透過 ID 取得單一菜單項目
// @Summary     取得單一菜單項目
// @Tags        menu
// @Produce     json
// @Param       id  path     string true "菜單 ID"
// @Success     200 {object} api.Response{data=model.MenuItem}
// @Failure     404 {object} api.ErrorResponse
// @Router      /menu/{id} [get]
func GetMenuItemHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		item, err := items.GetMenuItem(c.Request().Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(item))
	}
}

// ListByCategoryHandler 列出指定分類中供應中的項目
// @Summary     依分類列出供應中的菜單
// @Tags        menu
// @Produce     json
// @Param       category path     string true "分類"
// @Success     200      {object} api.Response{data=[]model.MenuItem}
// @Router      /menu/category/{category} [get]
func ListByCategoryHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := items.ListMenuItems(c.Request().Context(), filter.Query{
			Conditions: []filter.Condition{
				{Field: "category", Op: filter.OpEq, Value: c.Param("category")},
				{Field: "isAvailable", Op: filter.OpEq, Value: true},
			},
			Sort: defaultSort,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.List(list))
	}
}

// ListPopularHandler 列出熱門且供應中的項目
// @Summary     熱門菜單
// @Description 最多回傳 6 筆熱門且供應中的項目
// @Tags        menu
// @Produce     json
// @Success     200 {object} api.Response{data=[]model.MenuItem}
// @Router      /menu/popular/items [get]
func ListPopularHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := items.ListMenuItems(c.Request().Context(), filter.Query{
			Conditions: []filter.Condition{
				{Field: "isPopular", Op: filter.OpEq, Value: true},
				{Field: "isAvailable", Op: filter.OpEq, Value: true},
			},
			Sort:  defaultSort,
			Limit: popularLimit,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.List(list))
	}
}

// CreateMenuItemHandler 新增菜單項目（需管理員）
// @Summary     新增菜單項目
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body     model.MenuItem true "菜單項目"
// @Success     201  {object} api.Response{data=model.MenuItem}
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /menu [post]
func CreateMenuItemHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		item := model.NewMenuItem()
		if err := c.Bind(&item); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		item.ID = ""
		item.CreatedAt = time.Time{}
		item.Normalize()
		if err := c.Validate(&item); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		created, err := items.CreateMenuItem(c.Request().Context(), &item)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.Data(created))
	}
}

// UpdateMenuItemHandler 部分更新菜單項目後重新驗證
// @Summary     更新菜單項目
// @Description 送出的欄位覆寫現有資料後重新驗證
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id   path     string         true "菜單 ID"
// @Param       body body     model.MenuItem true "要更新的欄位"
// @Success     200  {object} api.Response{data=model.MenuItem}
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /menu/{id} [put]
func UpdateMenuItemHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		existing, err := items.GetMenuItem(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}

		updated := *existing
		if err := c.Bind(&updated); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		updated.Normalize()
		if err := c.Validate(&updated); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		err = items.ReplaceMenuItem(ctx, &updated)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(&updated))
	}
}

// DeleteMenuItemHandler 刪除指定 ID 的菜單項目
// @Summary     刪除菜單項目
// @Tags        menu
// @Produce     json
// @Param       id  path     string true "菜單 ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /menu/{id} [delete]
func DeleteMenuItemHandler(items store.MenuStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := items.DeleteMenuItem(c.Request().Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(struct{}{}))
	}
}
