// Package mongostore 以 MongoDB 作為文件資料庫的 store 實作
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"la-cave/internal/filter"
	"la-cave/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 集合名稱沿用既有資料庫
const (
	accountsCollection     = "users"
	menuCollection         = "menuitems"
	reservationsCollection = "reservations"
	reviewsCollection      = "reviews"
)

const opTimeout = 5 * time.Second

type Store struct {
	client       *mongo.Client
	accounts     *mongo.Collection
	menu         *mongo.Collection
	reservations *mongo.Collection
	reviews      *mongo.Collection
}

var _ store.Store = (*Store)(nil)

func New(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:       client,
		accounts:     db.Collection(accountsCollection),
		menu:         db.Collection(menuCollection),
		reservations: db.Collection(reservationsCollection),
		reviews:      db.Collection(reviewsCollection),
	}
}

// EnsureIndexes 建立帳號 Email 唯一索引與菜單查詢索引
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("EnsureIndexes: %w", err)
	}
	if _, err := s.menu.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "isPopular", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("EnsureIndexes: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// parseID 無法解析的 ID 一律視為查無資料
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrNotFound
	}
	return oid, nil
}

// refID 選填的帳號參照；空字串或格式錯誤時不寫入
func refID(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func translate(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, store.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var mongoOps = map[filter.Op]string{
	filter.OpEq:  "$eq",
	filter.OpGt:  "$gt",
	filter.OpGte: "$gte",
	filter.OpLt:  "$lt",
	filter.OpLte: "$lte",
	filter.OpIn:  "$in",
}

// buildFilter 把有型別的條件轉成 {field: {$op: value}}；欄位名稱與 JSON 相同
func buildFilter(conds []filter.Condition) bson.M {
	m := bson.M{}
	for _, c := range conds {
		ops, ok := m[c.Field].(bson.M)
		if !ok {
			ops = bson.M{}
			m[c.Field] = ops
		}
		ops[mongoOps[c.Op]] = c.Value
	}
	return m
}

func buildSort(keys []filter.SortKey) bson.D {
	d := bson.D{}
	for _, k := range keys {
		dir := 1
		if k.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: k.Field, Value: dir})
	}
	return d
}
