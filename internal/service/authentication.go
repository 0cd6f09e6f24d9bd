// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"la-cave/internal/model"
	"la-cave/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL access token 有效期間
const TokenTTL = 30 * 24 * time.Hour

// ErrInvalidCredentials 帳號不存在或密碼錯誤，兩者不做區分
var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容；角色每次請求都從資料庫重新讀取
type CustomClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// AuthenticateAccount 依 Email 查詢帳號並比對密碼，成功回傳帳號
func AuthenticateAccount(ctx context.Context, accounts store.AccountStore, email, password string) (*model.Account, error) {
	account, err := accounts.GetAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := ComparePassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// IssueAccessToken 依據帳號與 TTL 產生 JWT
func IssueAccessToken(account model.Account, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}
	if account.ID == "" {
		return "", fmt.Errorf("account id is empty")
	}

	now := timeNow()
	claims := CustomClaims{
		ID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
