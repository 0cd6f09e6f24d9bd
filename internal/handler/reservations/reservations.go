package reservations

import (
	"errors"
	"net/http"
	"time"

	"la-cave/internal/api"
	"la-cave/internal/middleware"
	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgNotFound    = "Reservation not found"
	msgInvalidBody = "Invalid request body"
	msgSubmitted   = "Reservation request submitted successfully"
)

// ListReservationsHandler 列出所有訂位（需管理員）
// @Summary     訂位列表
// @Description 依日期新到舊、時間早到晚排序
// @Tags        reservations
// @Produce     json
// @Success     200 {object} api.Response{data=[]model.Reservation}
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations [get]
func ListReservationsHandler(reservations store.ReservationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := reservations.ListReservations(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.List(list))
	}
}

// CreateReservationHandler 建立新訂位，狀態一律為 pending
// @Summary     送出訂位
// @Description 不檢查時段衝突；狀態一律為 pending，帶合法 token 時記錄帳號
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       body body     model.Reservation true "訂位資料"
// @Success     201  {object} api.Response{data=model.Reservation}
// @Failure     400  {object} api.ErrorResponse
// @Router      /reservations [post]
func CreateReservationHandler(reservations store.ReservationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var r model.Reservation
		if err := c.Bind(&r); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		r.ID = ""
		r.User = ""
		r.CreatedAt = time.Time{}
		r.Status = model.StatusPending
		if account, ok := middleware.CurrentAccount(c); ok {
			r.User = account.ID
		}
		if err := c.Validate(&r); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		created, err := reservations.CreateReservation(c.Request().Context(), &r)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.Message(msgSubmitted, created))
	}
}

// GetReservationHandler 透過 ID 取得訂位
// @Summary     取得訂位
// @Tags        reservations
// @Produce     json
// @Param       id  path     string true "訂位 ID"
// @Success     200 {object} api.Response{data=model.Reservation}
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations/{id} [get]
func GetReservationHandler(reservations store.ReservationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		r, err := reservations.GetReservation(c.Request().Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(r))
	}
}

// UpdateReservationHandler 部分更新訂位後重新驗證
// @Summary     更新訂位
// @Description 送出的欄位覆寫現有資料後重新驗證；狀態可任意變更
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       id   path     string            true "訂位 ID"
// @Param       body body     model.Reservation true "要更新的欄位"
// @Success     200  {object} api.Response{data=model.Reservation}
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations/{id} [put]
func UpdateReservationHandler(reservations store.ReservationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		existing, err := reservations.GetReservation(ctx, c.Param("id"))
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
		updated.User = existing.User
		updated.CreatedAt = existing.CreatedAt
		if err := c.Validate(&updated); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		err = reservations.ReplaceReservation(ctx, &updated)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(&updated))
	}
}
