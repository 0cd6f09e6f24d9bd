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

type reservationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	User            primitive.ObjectID `bson:"user,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	Date            string             `bson:"date"`
	Time            string             `bson:"time"`
	Guests          int                `bson:"guests"`
	SpecialRequests string             `bson:"specialRequests,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func newReservationDoc(r *model.Reservation) reservationDoc {
	return reservationDoc{
		User:            refID(r.User),
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          int(r.Guests),
		SpecialRequests: r.SpecialRequests,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

func (d reservationDoc) model() model.Reservation {
	return model.Reservation{
		ID:              d.ID.Hex(),
		User:            hexOrEmpty(d.User),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Date:            d.Date,
		Time:            d.Time,
		Guests:          model.LooseInt(d.Guests),
		SpecialRequests: d.SpecialRequests,
		Status:          model.ReservationStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
}

func (s *Store) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}})
	cursor, err := s.reservations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate("ListReservations", err)
	}
	var docs []reservationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate("ListReservations", err)
	}

	out := make([]model.Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *Store) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc reservationDoc
	if err := s.reservations.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate("GetReservation", err)
	}
	r := doc.model()
	return &r, nil
}

func (s *Store) CreateReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	doc := newReservationDoc(r)
	doc.ID = primitive.NewObjectID()
	if _, err := s.reservations.InsertOne(ctx, doc); err != nil {
		return nil, translate("CreateReservation", err)
	}
	created := doc.model()
	return &created, nil
}

func (s *Store) ReplaceReservation(ctx context.Context, r *model.Reservation) error {
	oid, err := parseID(r.ID)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := newReservationDoc(r)
	doc.ID = oid
	res, err := s.reservations.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return translate("ReplaceReservation", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
