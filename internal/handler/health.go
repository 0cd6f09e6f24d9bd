package handler

import (
	"context"
	"net/http"
	"time"

	"la-cave/internal/cache"

	"github.com/labstack/echo/v4"
)

// Pinger 可做健康檢查的後端
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// OK 或 DEGRADED
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
	// 服務已啟動秒數
	Uptime   float64 `json:"uptime" example:"12.5"`
	Database string  `json:"database" example:"up"`
	Cache    string  `json:"cache" example:"up"`
}

// WelcomeResponse 根路徑回應
// swagger:model WelcomeResponse
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to La Cave API"`
	Version string `json:"version" example:"1.0.0"`
}

var timeNow = time.Now

func state(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線，任一失敗回 503
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health [get]
func HealthHandler(db Pinger, cch cache.Cache, started time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbErr := db.Ping(ctx)
		cacheErr := cch.Ping(ctx).Err()

		now := timeNow()
		resp := HealthResponse{
			Status:    "OK",
			Timestamp: now.UTC(),
			Uptime:    now.Sub(started).Seconds(),
			Database:  state(dbErr),
			Cache:     state(cacheErr),
		}
		if dbErr != nil || cacheErr != nil {
			c.Logger().Warnf("health degraded: db=%v cache=%v", dbErr, cacheErr)
			resp.Status = "DEGRADED"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// WelcomeHandler 根路徑回傳服務名稱與版本
// @Summary     API 說明
// @Tags        health
// @Produce     json
// @Success     200 {object} WelcomeResponse
// @Router      / [get]
func WelcomeHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, WelcomeResponse{Message: "Welcome to La Cave API", Version: version})
	}
}
