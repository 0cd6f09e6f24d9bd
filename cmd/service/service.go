package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"la-cave/internal/api"
	"la-cave/internal/cache"
	"la-cave/internal/config"
	"la-cave/internal/router"
	"la-cave/internal/service"
	"la-cave/internal/store/backend"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "la-cave/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const version = "1.0.0"

var (
	loadConfig     = config.Load
	openStore      = backend.Open
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	notifyContext  = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = os.Exit
)

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(cfg.Production())
	e.Debug = !cfg.Production()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// service 的 JWT 函式直接讀取環境變數，.env 中的值也要帶進來
	if err := os.Setenv("JWT_SECRET", cfg.JWTSecret); err != nil {
		return err
	}

	ctx, stop := notifyContext()
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Printf("關閉資料庫連線失敗: %v", err)
		}
	}()

	rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("關閉 Redis 連線失敗: %v", err)
		}
	}()

	if cfg.SMTPHost == "" {
		log.Print("SMTP_HOST 未設定，忘記密碼信件將無法寄出")
	}
	mailer := service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	e := newEcho(cfg)
	router.Setup(e, router.Deps{
		Store:       st,
		Cache:       rdb,
		Mailer:      mailer,
		FrontendURL: cfg.FrontendURL,
		Started:     time.Now(),
		Version:     version,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, ":"+cfg.Port) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("伺服器啟動失敗: %v", err)
		}
		return nil
	case <-ctx.Done():
		log.Print("收到停止訊號，關閉伺服器")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
