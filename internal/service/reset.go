package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"la-cave/internal/cache"

	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL 重設密碼連結有效時間
const ResetTokenTTL = 10 * time.Minute

var ErrInvalidResetToken = errors.New("invalid or expired token")

var randRead = rand.Read

// resetKey 快取只保存 token 的 SHA-256，明文只出現在寄出的連結裡
func resetKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "reset:" + hex.EncodeToString(sum[:])
}

// IssueResetToken 產生一次性重設 token 並記錄對應的帳號
func IssueResetToken(ctx context.Context, c cache.Cache, accountID string) (string, error) {
	b := make([]byte, 20)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(b)
	if err := c.Set(ctx, resetKey(token), accountID, ResetTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// ConsumeResetToken 取出並刪除 token，回傳帳號 ID；同一個 token 只能用一次
func ConsumeResetToken(ctx context.Context, c cache.Cache, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidResetToken
	}
	id, err := c.GetDel(ctx, resetKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidResetToken
	}
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrInvalidResetToken
	}
	return id, nil
}

// RevokeResetToken 寄信失敗時作廢剛產生的 token
func RevokeResetToken(ctx context.Context, c cache.Cache, token string) error {
	return c.Del(ctx, resetKey(token)).Err()
}
