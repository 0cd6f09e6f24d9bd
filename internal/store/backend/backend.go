// Package backend 依 DB_DRIVER 開啟對應的 store 實作
package backend

import (
	"context"
	"fmt"

	"la-cave/internal/config"
	"la-cave/internal/database"
	"la-cave/internal/store"
	"la-cave/internal/store/mongostore"
	"la-cave/internal/store/pgstore"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	openMongo       = func(ctx context.Context, uri, dbName string) (store.Store, error) {
		client, err := database.NewMongoClient(ctx, uri)
		if err != nil {
			return nil, err
		}
		st := mongostore.New(client, dbName)
		if err := st.EnsureIndexes(ctx); err != nil {
			_ = st.Close(context.Background())
			return nil, err
		}
		return st, nil
	}
)

// Open postgres 會先跑 migration 再建立連線池
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DBDriver == config.DriverPostgres {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("Migration 執行失敗: %v", err)
		}
		db, err := newPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("DB 連線失敗: %v", err)
		}
		return pgstore.New(db), nil
	}
	st, err := openMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	return st, nil
}
