// seed 建立預設管理員與範例菜單
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"la-cave/internal/config"
	"la-cave/internal/database"
	"la-cave/internal/seed"
	"la-cave/internal/store/backend"
)

var (
	loadConfig  = config.LoadDatabase
	openStore   = backend.Open
	rollbackAll = database.RollbackAll
	exitFunc    = os.Exit
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type options struct {
	resetAdmin    bool
	adminEmail    string
	adminPassword string
	skipMenu      bool
	fresh         bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "建立預設管理員帳號與範例菜單",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.resetAdmin, "reset-admin", false, "管理員已存在時重設密碼")
	cmd.Flags().StringVar(&opts.adminEmail, "admin-email", envOr("ADMIN_EMAIL", seed.DefaultAdminEmail), "管理員 Email")
	cmd.Flags().StringVar(&opts.adminPassword, "admin-password", envOr("ADMIN_PASSWORD", seed.DefaultAdminPassword), "管理員密碼")
	cmd.Flags().BoolVar(&opts.skipMenu, "skip-menu", false, "不寫入範例菜單")
	cmd.Flags().BoolVar(&opts.fresh, "fresh", false, "先退回所有 migration 再重建資料表（僅 postgres）")
	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.fresh {
		if cfg.DBDriver != config.DriverPostgres {
			return errors.New("--fresh 只支援 DB_DRIVER=postgres")
		}
		if err := rollbackAll(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("退回 migration 失敗: %w", err)
		}
		log.Print("已退回所有 migration")
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("資料庫連線失敗: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Printf("關閉資料庫連線失敗: %v", err)
		}
	}()

	res, err := seed.Admin(ctx, st, seed.AdminOptions{
		Email:    opts.adminEmail,
		Password: opts.adminPassword,
		Reset:    opts.resetAdmin,
	})
	if err != nil {
		return fmt.Errorf("建立管理員失敗: %w", err)
	}
	switch res {
	case seed.AdminCreated:
		log.Printf("已建立管理員 %s", opts.adminEmail)
	case seed.AdminReset:
		log.Printf("已重設管理員 %s 的密碼", opts.adminEmail)
	default:
		log.Printf("管理員 %s 已存在，略過（可使用 --reset-admin 重設）", opts.adminEmail)
	}

	if opts.skipMenu {
		return nil
	}
	n, err := seed.Menu(ctx, st, cfg.WorkerCount, seed.SampleMenu)
	if err != nil {
		return fmt.Errorf("寫入範例菜單失敗: %w", err)
	}
	if n == 0 {
		log.Print("菜單已有資料，略過範例菜單")
	} else {
		log.Printf("已寫入 %d 筆範例菜單", n)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
