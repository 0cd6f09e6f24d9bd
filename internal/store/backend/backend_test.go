package backend

import (
	"context"
	"errors"
	"testing"

	"la-cave/internal/config"
	"la-cave/internal/database"
	"la-cave/internal/store"
	"la-cave/internal/store/pgstore"

	"github.com/stretchr/testify/require"
)

func restore() {
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
}

func TestOpenPostgres(t *testing.T) {
	t.Cleanup(restore)
	var order []string
	runMigrationsFn = func(url string) error {
		order = append(order, "migrate")
		require.Equal(t, "postgres://db", url)
		return nil
	}
	newPgxPool = func(_ context.Context, url string) (database.DB, error) {
		order = append(order, "pool")
		return &database.FakeDB{}, nil
	}

	st, err := Open(context.Background(), &config.Config{DBDriver: config.DriverPostgres, DatabaseURL: "postgres://db"})
	require.NoError(t, err)
	require.IsType(t, &pgstore.Store{}, st)
	require.Equal(t, []string{"migrate", "pool"}, order)
}

func TestOpenPostgresErrors(t *testing.T) {
	t.Cleanup(restore)
	cfg := &config.Config{DBDriver: config.DriverPostgres, DatabaseURL: "x"}

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	_, err := Open(context.Background(), cfg)
	require.ErrorContains(t, err, "Migration")

	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("pool") }
	_, err = Open(context.Background(), cfg)
	require.ErrorContains(t, err, "DB 連線失敗")
}

func TestOpenMongo(t *testing.T) {
	orig := openMongo
	t.Cleanup(func() { openMongo = orig })

	fake := &store.Fake{}
	openMongo = func(_ context.Context, uri, db string) (store.Store, error) {
		require.Equal(t, "mongodb://x", uri)
		require.Equal(t, "lacave", db)
		return fake, nil
	}
	st, err := Open(context.Background(), &config.Config{DBDriver: config.DriverMongo, MongoURI: "mongodb://x", MongoDB: "lacave"})
	require.NoError(t, err)
	require.Same(t, fake, st)

	openMongo = func(context.Context, string, string) (store.Store, error) { return nil, errors.New("down") }
	_, err = Open(context.Background(), &config.Config{DBDriver: config.DriverMongo})
	require.ErrorContains(t, err, "MongoDB")
}
