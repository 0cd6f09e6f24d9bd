package mongostore

import (
	"context"
	"strings"
	"time"

	"la-cave/internal/model"
	"la-cave/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type accountDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Phone     string             `bson:"phone,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d accountDoc) model() *model.Account {
	return &model.Account{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         model.Role(d.Role),
		Phone:        d.Phone,
		CreatedAt:    d.CreatedAt,
	}
}

func (s *Store) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Role == "" {
		a.Role = model.RoleUser
	}
	doc := accountDoc{
		ID:        primitive.NewObjectID(),
		Name:      a.Name,
		Email:     strings.ToLower(a.Email),
		Password:  a.PasswordHash,
		Role:      string(a.Role),
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
	if _, err := s.accounts.InsertOne(ctx, doc); err != nil {
		return nil, translate("CreateAccount", err)
	}
	return doc.model(), nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.findAccount(ctx, "GetAccountByID", bson.M{"_id": oid})
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return s.findAccount(ctx, "GetAccountByEmail", bson.M{"email": strings.ToLower(email)})
}

func (s *Store) findAccount(ctx context.Context, op string, f bson.M) (*model.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc accountDoc
	if err := s.accounts.FindOne(ctx, f).Decode(&doc); err != nil {
		return nil, translate(op, err)
	}
	return doc.model(), nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *model.Account) error {
	oid, err := parseID(a.ID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.accounts.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":  a.Name,
		"email": strings.ToLower(a.Email),
		"phone": a.Phone,
		"role":  string(a.Role),
	}})
	if err != nil {
		return translate("UpdateAccount", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateAccountPassword(ctx context.Context, id, passwordHash string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.accounts.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return translate("UpdateAccountPassword", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
