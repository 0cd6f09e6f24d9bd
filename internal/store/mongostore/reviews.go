package mongostore

import (
	"context"
	"time"

	"la-cave/internal/model"
	"la-cave/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User       primitive.ObjectID `bson:"user,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Rating     int                `bson:"rating"`
	Comment    string             `bson:"comment"`
	IsApproved bool               `bson:"isApproved"`
	ApprovedBy primitive.ObjectID `bson:"approvedBy,omitempty"`
	ApprovedAt *time.Time         `bson:"approvedAt"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func newReviewDoc(r *model.Review) reviewDoc {
	return reviewDoc{
		User:       refID(r.User),
		Name:       r.Name,
		Email:      r.Email,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IsApproved: r.IsApproved,
		ApprovedBy: refID(r.ApprovedBy),
		ApprovedAt: r.ApprovedAt,
		CreatedAt:  r.CreatedAt,
	}
}

func (d reviewDoc) model() model.Review {
	return model.Review{
		ID:         d.ID.Hex(),
		User:       hexOrEmpty(d.User),
		Name:       d.Name,
		Email:      d.Email,
		Rating:     d.Rating,
		Comment:    d.Comment,
		IsApproved: d.IsApproved,
		ApprovedBy: hexOrEmpty(d.ApprovedBy),
		ApprovedAt: d.ApprovedAt,
		CreatedAt:  d.CreatedAt,
	}
}

func (s *Store) ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	f := bson.M{}
	if approvedOnly {
		f["isApproved"] = true
	}
	cursor, err := s.reviews.Find(ctx, f, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, translate("ListReviews", err)
	}
	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate("ListReviews", err)
	}

	out := make([]model.Review, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *Store) GetReview(ctx context.Context, id string) (*model.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc reviewDoc
	if err := s.reviews.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate("GetReview", err)
	}
	r := doc.model()
	return &r, nil
}

func (s *Store) CreateReview(ctx context.Context, r *model.Review) (*model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	doc := newReviewDoc(r)
	doc.ID = primitive.NewObjectID()
	if _, err := s.reviews.InsertOne(ctx, doc); err != nil {
		return nil, translate("CreateReview", err)
	}
	created := doc.model()
	return &created, nil
}

func (s *Store) ReplaceReview(ctx context.Context, r *model.Review) error {
	oid, err := parseID(r.ID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := newReviewDoc(r)
	doc.ID = oid
	res, err := s.reviews.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return translate("ReplaceReview", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.reviews.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translate("DeleteReview", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
