package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"la-cave/internal/api"
	"la-cave/internal/cache"
	"la-cave/internal/middleware"
	"la-cave/internal/model"
	"la-cave/internal/service"
	"la-cave/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword        = service.HashPassword
	authenticateAccount = service.AuthenticateAccount
	issueAccessToken    = service.IssueAccessToken
	issueResetToken     = service.IssueResetToken
	consumeResetToken   = service.ConsumeResetToken
	revokeResetToken    = service.RevokeResetToken
)

const (
	msgInvalidBody        = "Invalid request body"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidResetToken  = "Invalid or expired token"
	msgResetSent          = "If an account exists for that email, a reset link has been sent"
)

func respondWithToken(c echo.Context, code int, account *model.Account) error {
	token, err := issueAccessToken(*account, service.TokenTTL)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	return c.JSON(code, api.AuthResponse{Success: true, Token: token, User: account})
}

// RegisterHandler 註冊一般使用者並回傳存取令牌
// @Summary     註冊帳號
// @Description 建立一般使用者帳號並直接回傳存取令牌；Email 重複時回 400
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(accounts store.AccountStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		req.Name = strings.TrimSpace(req.Name)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		ctx := c.Request().Context()
		if _, err := accounts.GetAccountByEmail(ctx, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgUserExists))
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		account, err := accounts.CreateAccount(ctx, &model.Account{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         model.RoleUser,
			Phone:        req.Phone,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, api.Error(msgUserExists))
		}
		if err != nil {
			return err
		}
		return respondWithToken(c, http.StatusCreated, account)
	}
}

// LoginHandler 驗證帳號密碼並回傳存取令牌
// @Summary     登入
// @Description 使用 Email 與密碼驗證，回傳 30 天有效的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(accounts store.AccountStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		account, err := authenticateAccount(c.Request().Context(), accounts, req.Email, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, api.Error(msgInvalidCredentials))
		}
		if err != nil {
			return err
		}
		return respondWithToken(c, http.StatusOK, account)
	}
}

// GetMeHandler 取得當前登入的帳號
// @Summary     取得目前帳號
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response{data=model.Account}
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := middleware.CurrentAccount(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
		}
		return c.JSON(http.StatusOK, api.Data(account))
	}
}

// UpdateProfileHandler 更新當前帳號的個人資料
// @Summary     更新個人資料
// @Description 只更新有送出的欄位 (name、email、phone)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateProfileRequest true "個人資料"
// @Success     200  {object} api.Response{data=model.Account}
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(accounts store.AccountStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, ok := middleware.CurrentAccount(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		req.Name = strings.TrimSpace(req.Name)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		updated := *current
		if req.Name != "" {
			updated.Name = req.Name
		}
		if req.Email != "" {
			updated.Email = strings.ToLower(req.Email)
		}
		if req.Phone != "" {
			updated.Phone = req.Phone
		}

		err := accounts.UpdateAccount(c.Request().Context(), &updated)
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, api.Error("Email already in use"))
		}
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(&updated))
	}
}

// ForgotPasswordHandler 寄送重設密碼連結
// @Summary     忘記密碼
// @Description 寄出 10 分鐘內有效的重設連結；不論 Email 是否存在都回相同訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.ForgotPasswordRequest true "Email"
// @Success     200  {object} api.Response
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/forgotpassword [post]
func ForgotPasswordHandler(accounts store.AccountStore, cch cache.Cache, mailer service.Mailer, frontendURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		ctx := c.Request().Context()
		account, err := accounts.GetAccountByEmail(ctx, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusOK, api.Message(msgResetSent, nil))
		}
		if err != nil {
			return err
		}

		token, err := issueResetToken(ctx, cch, account.ID)
		if err != nil {
			return err
		}

		link := strings.TrimRight(frontendURL, "/") + "/auth/reset-password/" + token
		body := fmt.Sprintf("You are receiving this email because you (or someone else) requested a password reset.\n\n"+
			"Open the link below within 10 minutes to choose a new password:\n\n%s\n", link)
		if err := mailer.Send(ctx, account.Email, "Password reset", body); err != nil {
			c.Logger().Errorf("send reset mail: %v", err)
			if err := revokeResetToken(ctx, cch, token); err != nil {
				c.Logger().Errorf("revoke reset token: %v", err)
			}
			return c.JSON(http.StatusInternalServerError, api.Error("Email could not be sent"))
		}
		return c.JSON(http.StatusOK, api.Message(msgResetSent, nil))
	}
}

// ResetPasswordHandler 以重設 token 設定新密碼並回傳存取令牌
// @Summary     重設密碼
// @Description 使用信件中的 token 設定新密碼，token 只能使用一次
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       token path     string                   true "重設 token"
// @Param       body  body     api.ResetPasswordRequest true "新密碼"
// @Success     200   {object} api.AuthResponse
// @Failure     400   {object} api.ErrorResponse
// @Failure     500   {object} api.ErrorResponse
// @Router      /auth/resetpassword/{token} [put]
func ResetPasswordHandler(accounts store.AccountStore, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationFailed(err))
		}

		ctx := c.Request().Context()
		accountID, err := consumeResetToken(ctx, cch, c.Param("token"))
		if errors.Is(err, service.ErrInvalidResetToken) {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidResetToken))
		}
		if err != nil {
			return err
		}

		account, err := accounts.GetAccountByID(ctx, accountID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, api.Error(msgInvalidResetToken))
		}
		if err != nil {
			return err
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := accounts.UpdateAccountPassword(ctx, account.ID, hash); err != nil {
			return err
		}
		account.PasswordHash = hash
		return respondWithToken(c, http.StatusOK, account)
	}
}
