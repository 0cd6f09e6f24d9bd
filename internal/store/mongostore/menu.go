package mongostore

import (
	"context"
	"time"

	"la-cave/internal/filter"
	"la-cave/internal/model"
	"la-cave/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type menuItemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	Dietary     []string           `bson:"dietary"`
	Rating      float64            `bson:"rating"`
	IsPopular   bool               `bson:"isPopular"`
	IsAvailable bool               `bson:"isAvailable"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func newMenuItemDoc(m *model.MenuItem) menuItemDoc {
	dietary := m.Dietary
	if dietary == nil {
		dietary = []string{}
	}
	return menuItemDoc{
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Image:       m.Image,
		Dietary:     dietary,
		Rating:      m.Rating,
		IsPopular:   m.IsPopular,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
	}
}

func (d menuItemDoc) model() model.MenuItem {
	dietary := d.Dietary
	if dietary == nil {
		dietary = []string{}
	}
	return model.MenuItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Image:       d.Image,
		Dietary:     dietary,
		Rating:      d.Rating,
		IsPopular:   d.IsPopular,
		IsAvailable: d.IsAvailable,
		CreatedAt:   d.CreatedAt,
	}
}

func (s *Store) ListMenuItems(ctx context.Context, q filter.Query) ([]model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(buildSort(q.Sort))
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}

	cursor, err := s.menu.Find(ctx, buildFilter(q.Conditions), opts)
	if err != nil {
		return nil, translate("ListMenuItems", err)
	}
	var docs []menuItemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate("ListMenuItems", err)
	}

	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.model())
	}
	return items, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc menuItemDoc
	if err := s.menu.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate("GetMenuItem", err)
	}
	m := doc.model()
	return &m, nil
}

func (s *Store) CreateMenuItem(ctx context.Context, m *model.MenuItem) (*model.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	doc := newMenuItemDoc(m)
	doc.ID = primitive.NewObjectID()
	if _, err := s.menu.InsertOne(ctx, doc); err != nil {
		return nil, translate("CreateMenuItem", err)
	}
	created := doc.model()
	return &created, nil
}

func (s *Store) ReplaceMenuItem(ctx context.Context, m *model.MenuItem) error {
	oid, err := parseID(m.ID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := newMenuItemDoc(m)
	doc.ID = oid
	res, err := s.menu.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return translate("ReplaceMenuItem", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.menu.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translate("DeleteMenuItem", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountMenuItems(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translate("CountMenuItems", err)
	}
	return n, nil
}
