package reviews

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
	msgNotFound    = "Review not found"
	msgInvalidBody = "Invalid request body"
	msgSubmitted   = "Review submitted successfully and is pending approval"
	msgApproved    = "Review approved"
	msgRejected    = "Review rejected"
	msgDeleted     = "Review deleted"
)

var timeNow = time.Now

func listHandler(reviews store.ReviewStore, approvedOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := reviews.ListReviews(c.Request().Context(), approvedOnly)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.List(list))
	}
}

// ListApprovedReviewsHandler 列出已核准的評論
// @Summary     已核准的評論
// @Tags        reviews
// @Produce     json
// @Success     200 {object} api.Response{data=[]model.Review}
// @Router      /reviews [get]
func ListApprovedReviewsHandler(reviews store.ReviewStore) echo.HandlerFunc {
	return listHandler(reviews, true)
}

// ListAllReviewsHandler 列出所有評論（需管理員）
// @Summary     所有評論 (管理員)
// @Tags        reviews
// @Produce     json
// @Success     200 {object} api.Response{data=[]model.Review}
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/admin [get]
func ListAllReviewsHandler(reviews store.ReviewStore) echo.HandlerFunc {
	return listHandler(reviews, false)
}

// CreateReviewHandler 送出待審核的評論
// @Summary     送出評論
// @Description 新評論一律為未核准，需管理員審核後才會公開
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       body body     model.Review true "評論內容"
// @Success     201  {object} api.Response{data=model.Review}
// @Failure     400  {object} api.ErrorResponse
// @Router      /reviews [post]
func CreateReviewHandler(reviews store.ReviewStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var r model.Review
		if err := c.Bind(&r); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		r.ID = ""
		r.User = ""
		r.IsApproved = false
		r.ApprovedBy = ""
		r.ApprovedAt = nil
		r.CreatedAt = time.Time{}
		if account, ok := middleware.CurrentAccount(c); ok {
			r.User = account.ID
		}
		if err := c.Validate(&r); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		created, err := reviews.CreateReview(c.Request().Context(), &r)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.Message(msgSubmitted, created))
	}
}

// UpdateReviewStatusHandler 核准或退回評論並記錄操作的管理員
// @Summary     核准或退回評論
// @Description 不論核准與否都記錄操作的管理員；退回時清除核准時間
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       id   path     string                  true "評論 ID"
// @Param       body body     api.ReviewStatusRequest true "審核結果"
// @Success     200  {object} api.Response{data=model.Review}
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{id} [put]
func UpdateReviewStatusHandler(reviews store.ReviewStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := middleware.CurrentAccount(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
		}

		var req api.ReviewStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		ctx := c.Request().Context()
		r, err := reviews.GetReview(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}

		r.SetApproval(*req.IsApproved, actor.ID, timeNow().UTC())
		err = reviews.ReplaceReview(ctx, r)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		msg := msgRejected
		if r.IsApproved {
			msg = msgApproved
		}
		return c.JSON(http.StatusOK, api.Message(msg, r))
	}
}

// DeleteReviewHandler 刪除指定 ID 的評論
// @Summary     刪除評論
// @Tags        reviews
// @Produce     json
// @Param       id  path     string true "評論 ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{id} [delete]
func DeleteReviewHandler(reviews store.ReviewStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := reviews.DeleteReview(c.Request().Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Error(msgNotFound))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Message(msgDeleted, struct{}{}))
	}
}
