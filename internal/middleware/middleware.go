package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"la-cave/internal/model"
	"la-cave/internal/service"
	"la-cave/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextAccountKey = "account"

const notAuthorized = "Not authorized to access this route"

var errNoToken = errors.New("missing token")

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}

// loadAccount 驗證 token 後從資料庫讀出帳號，角色以資料庫為準
func loadAccount(c echo.Context, accounts store.AccountStore) (*model.Account, error) {
	tok, err := bearerToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := service.VerifyAccessToken(tok)
	if err != nil {
		return nil, err
	}
	account, err := accounts.GetAccountByID(c.Request().Context(), claims.ID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// RequireAuth 必須帶有效的 Bearer token，且帳號仍存在
func RequireAuth(accounts store.AccountStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := loadAccount(c, accounts)
			if err != nil {
				if !errors.Is(err, errNoToken) && !errors.Is(err, store.ErrNotFound) {
					c.Logger().Debugf("auth rejected: %v", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorized)
			}
			c.Set(ContextAccountKey, account)
			return next(c)
		}
	}
}

// OptionalAuth 有合法 token 就帶入帳號，否則以訪客身分繼續
func OptionalAuth(accounts store.AccountStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if account, err := loadAccount(c, accounts); err == nil {
				c.Set(ContextAccountKey, account)
			}
			return next(c)
		}
	}
}

// RequireRole 必須放在 RequireAuth 之後
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := CurrentAccount(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorized)
			}
			for _, r := range roles {
				if account.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("User role %s is not authorized to access this route", account.Role))
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(model.RoleAdmin)
}

// CurrentAccount 取出目前請求的帳號
func CurrentAccount(c echo.Context) (*model.Account, bool) {
	account, ok := c.Get(ContextAccountKey).(*model.Account)
	return account, ok && account != nil
}
